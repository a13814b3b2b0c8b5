package types

import (
	"errors"
	"strings"
)

// Config holds backend, output, and logging selection for one invocation.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	Output   string `json:"output" yaml:"output"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Supported backend names.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrOutputUnknown  = errors.New("unknown output format")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendCSV:    true,
	BackendSQLite: true,
}

// knownOutputs lists the output formats that Validate accepts.
var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

// Validate checks that the Config is well-formed. An empty Output is
// treated as OutputText.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[strings.ToLower(c.Backend)] {
		return ErrBackendUnknown
	}
	if c.Output != "" && !knownOutputs[strings.ToLower(c.Output)] {
		return ErrOutputUnknown
	}
	return nil
}
