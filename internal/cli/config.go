package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/todo/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix makes TODO_BACKEND, TODO_OUTPUT, and TODO_LOG_LEVEL override
	// the file.
	envPrefix = "TODO"

	cfgKeyBackend  = "backend"
	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"

	defaultLogLevel = "warn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# todo configuration

# Storage backend for the --csv-file path: csv or sqlite
backend: csv

# Output format for --display: text or json
output: text

# Log level: debug, info, warn, or error
log_level: warn
`

func defaultConfig() types.Config {
	return types.Config{
		Backend:  types.BackendCSV,
		Output:   types.OutputText,
		LogLevel: defaultLogLevel,
	}
}

// loadConfig reads config.yaml from configDir using Viper, creating the
// directory and a default file on first run. A missing config.yaml is not
// an error. Environment variables take precedence over the file.
func loadConfig(configDir string) (types.Config, error) {
	def := defaultConfig()

	if err := ensureConfigDir(configDir); err != nil {
		return def, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return def, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return def, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend:  strings.ToLower(v.GetString(cfgKeyBackend)),
		Output:   strings.ToLower(v.GetString(cfgKeyOutput)),
		LogLevel: strings.ToLower(v.GetString(cfgKeyLogLevel)),
	}
	if err := cfg.Validate(); err != nil {
		return def, fmt.Errorf("invalid config in %s: %w", configDir, err)
	}
	return cfg, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates config.yaml if it does not exist.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
