package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultSortOrder    = "desc"
	DefaultLanguage     = "en"
	DefaultSearchMode   = "substring"
	DefaultPreviewWords = 10
	DefaultTimeFormat   = "2006-01-02 15:04:05"
)

// Config holds the unified application configuration
type Config struct {
	ImportDirs   []string `json:"import_dirs"`
	Recursive    bool     `json:"recursive"`
	SortOrder    string   `json:"sort_order"`
	Language     string   `json:"language"`
	SearchMode   string   `json:"search_mode"`
	PreviewWords int      `json:"preview_words"`
	TimeFormat   string   `json:"time_format"`
}

// Settings represents the config file structure
type Settings struct {
	ImportDirs   []string `json:"import_dirs"`
	Recursive    *bool    `json:"recursive,omitempty"`
	SortOrder    string   `json:"sort_order,omitempty"`
	Language     string   `json:"language,omitempty"`
	SearchMode   string   `json:"search_mode,omitempty"`
	PreviewWords int      `json:"preview_words,omitempty"`
	TimeFormat   string   `json:"time_format,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	ImportDirs []string
	SortOrder  string
	Language   string
}

var globalConfig *Config

// Load loads configuration with priority: CLI flags > env vars (.env included) > config file > default
func Load(flags CLIFlags) (*Config, error) {
	// A missing .env is the normal case
	_ = godotenv.Load()

	cfg := &Config{
		SortOrder:    DefaultSortOrder,
		Language:     DefaultLanguage,
		SearchMode:   DefaultSearchMode,
		PreviewWords: DefaultPreviewWords,
		TimeFormat:   DefaultTimeFormat,
	}

	configPath, err := GetConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			applySettings(cfg, fileConfig)
		}
	}

	if v := os.Getenv("NOTEBOARD_IMPORT_DIRS"); v != "" {
		cfg.ImportDirs = expandPaths(parseColonSeparated(v))
	}
	if v := os.Getenv("NOTEBOARD_RECURSIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Recursive = b
		}
	}
	if v := os.Getenv("NOTEBOARD_SORT"); v != "" {
		cfg.SortOrder = v
	}
	if v := os.Getenv("NOTEBOARD_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("NOTEBOARD_SEARCH_MODE"); v != "" {
		cfg.SearchMode = v
	}

	if len(flags.ImportDirs) > 0 {
		cfg.ImportDirs = expandPaths(flags.ImportDirs)
	}
	if flags.SortOrder != "" {
		cfg.SortOrder = flags.SortOrder
	}
	if flags.Language != "" {
		cfg.Language = flags.Language
	}

	globalConfig = cfg
	return cfg, nil
}

func applySettings(cfg *Config, s *Settings) {
	if len(s.ImportDirs) > 0 {
		cfg.ImportDirs = expandPaths(s.ImportDirs)
	}
	if s.Recursive != nil {
		cfg.Recursive = *s.Recursive
	}
	if s.SortOrder != "" {
		cfg.SortOrder = s.SortOrder
	}
	if s.Language != "" {
		cfg.Language = s.Language
	}
	if s.SearchMode != "" {
		cfg.SearchMode = s.SearchMode
	}
	if s.PreviewWords > 0 {
		cfg.PreviewWords = s.PreviewWords
	}
	if s.TimeFormat != "" {
		cfg.TimeFormat = s.TimeFormat
	}
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// GetConfigDir returns ~/.config/noteboard
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "noteboard"), nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	recursive := false
	settings := Settings{
		ImportDirs:   []string{},
		Recursive:    &recursive,
		SortOrder:    DefaultSortOrder,
		Language:     DefaultLanguage,
		SearchMode:   DefaultSearchMode,
		PreviewWords: DefaultPreviewWords,
		TimeFormat:   DefaultTimeFormat,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	return splitTrimmed(s, ",")
}

func parseColonSeparated(s string) []string {
	return splitTrimmed(s, ":")
}

func splitTrimmed(s, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

func expandPaths(paths []string) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = expandPath(p)
	}
	return result
}
