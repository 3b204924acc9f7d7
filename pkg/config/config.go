/*
Package config manages the TOML config for wordcheck.

A missing file is created with defaults. A file that fails strict decoding is
recovered section by section so a single bad value does not discard the rest:

	[dict]
	path = "dictionary.txt"
	max_words = 0
	normalize = false

	[cli]
	exit_word = "exit"
	show_prefix = true
	max_prefix_results = 0
	fold_case = true

	[server]
	max_results = 0
	cache_size = 1024
*/
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the default config file name inside the config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig holds dictionary loading options.
type DictConfig struct {
	Path      string `toml:"path"`
	MaxWords  int    `toml:"max_words"`
	Normalize bool   `toml:"normalize"`
}

// CliConfig holds interactive shell options.
type CliConfig struct {
	ExitWord         string `toml:"exit_word"`
	ShowPrefix       bool   `toml:"show_prefix"`
	MaxPrefixResults int    `toml:"max_prefix_results"`
	FoldCase         bool   `toml:"fold_case"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxResults int `toml:"max_results"`
	CacheSize  int `toml:"cache_size"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:      "dictionary.txt",
			MaxWords:  0,
			Normalize: false,
		},
		CLI: CliConfig{
			ExitWord:         "exit",
			ShowPrefix:       true,
			MaxPrefixResults: 0,
			FoldCase:         true,
		},
		Server: ServerConfig{
			MaxResults: 0,
			CacheSize:  1024,
		},
	}
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Dict.MaxWords < 0 {
		errs = append(errs, fmt.Errorf("dict.max_words must be >= 0, got %d", c.Dict.MaxWords))
	}
	if c.CLI.MaxPrefixResults < 0 {
		errs = append(errs, fmt.Errorf("cli.max_prefix_results must be >= 0, got %d", c.CLI.MaxPrefixResults))
	}
	if c.CLI.ExitWord == "" {
		errs = append(errs, errors.New("cli.exit_word must not be empty"))
	}
	if c.Server.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("server.max_results must be >= 0, got %d", c.Server.MaxResults))
	}
	if c.Server.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("server.cache_size must be >= 0, got %d", c.Server.CacheSize))
	}
	return errors.Join(errs...)
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps the defaults for every key that cannot be read
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
	if val, ok := utils.ExtractBool(data, "normalize"); ok {
		dict.Normalize = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "exit_word"); ok {
		cli.ExitWord = val
	}
	if val, ok := utils.ExtractBool(data, "show_prefix"); ok {
		cli.ShowPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix_results"); ok {
		cli.MaxPrefixResults = val
	}
	if val, ok := utils.ExtractBool(data, "fold_case"); ok {
		cli.FoldCase = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		server.MaxResults = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		server.CacheSize = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
