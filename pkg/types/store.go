package types

// Store loads and saves a TodoList at a storage path. Implementations wrap
// I/O failures in ErrStorage.
type Store interface {
	// Load reads every todo at path, in stored order, and returns them as a
	// list with freshly assigned ids.
	Load(path string) (*TodoList, error)

	// Save replaces the contents at path with list. A failed Save leaves
	// the previous contents intact.
	Save(path string, list *TodoList) error
}
