// Command todo adds, completes, and displays todos stored in a CSV file.
package main

import "github.com/mesh-intelligence/todo/internal/cli"

func main() {
	cli.Execute()
}
