package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sarscrub/sarscrub/internal/redact"
)

// Config represents the sarscrub configuration.
type Config struct {
	Root            string   `json:"root"`
	AttachmentsDir  string   `json:"attachmentsDir"`
	TermsFile       string   `json:"termsFile"`
	Placeholder     string   `json:"placeholder"`
	MatchExtensions []string `json:"matchExtensions"`
	AlwaysDelete    []string `json:"alwaysDelete"`
	CleanupDirs     []string `json:"cleanupDirs"`
	HeaderFields    []string `json:"headerFields"`
}

// Default returns a Config matching the standard export workflow: a
// "output.export" tree in the current directory, a sibling term-list file,
// and the attachment noise rules for the usual export layout.
func Default() Config {
	return Config{
		Root:           "output.export",
		AttachmentsDir: "attachments",
		TermsFile:      "redact_words.txt",
		Placeholder:    redact.DefaultPlaceholder,
		MatchExtensions: []string{
			".xlsx", ".docx", ".pdf", ".csv", ".doc", ".xls", ".pptx", ".ppt",
		},
		AlwaysDelete: []string{
			"conversationindex.txt",
			"recipients.txt",
		},
		CleanupDirs: []string{
			"Search Root",
			"SPAM Search Folder 2",
			"Top of Personal Folders/Deleted Items",
		},
		HeaderFields: redact.DefaultHeaderFields,
	}
}

// ConfigDir returns the platform-appropriate config directory for sarscrub.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sarscrub"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "sarscrub"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "sarscrub"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "sarscrub"), nil
	default:
		return filepath.Join(home, ".config", "sarscrub"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Root != "" {
		dst.Root = src.Root
	}
	if src.AttachmentsDir != "" {
		dst.AttachmentsDir = src.AttachmentsDir
	}
	if src.TermsFile != "" {
		dst.TermsFile = src.TermsFile
	}
	if src.Placeholder != "" {
		dst.Placeholder = src.Placeholder
	}
	if len(src.MatchExtensions) > 0 {
		dst.MatchExtensions = src.MatchExtensions
	}
	if len(src.AlwaysDelete) > 0 {
		dst.AlwaysDelete = src.AlwaysDelete
	}
	if len(src.CleanupDirs) > 0 {
		dst.CleanupDirs = src.CleanupDirs
	}
	if len(src.HeaderFields) > 0 {
		dst.HeaderFields = src.HeaderFields
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("SARSCRUB_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("SARSCRUB_ATTACHMENTS_DIR"); v != "" {
		cfg.AttachmentsDir = v
	}
	if v := os.Getenv("SARSCRUB_TERMS_FILE"); v != "" {
		cfg.TermsFile = v
	}
	if v := os.Getenv("SARSCRUB_PLACEHOLDER"); v != "" {
		cfg.Placeholder = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v := overrides["root"]; v != "" {
		cfg.Root = v
	}
	if v := overrides["attachmentsDir"]; v != "" {
		cfg.AttachmentsDir = v
	}
	if v := overrides["termsFile"]; v != "" {
		cfg.TermsFile = v
	}
	if v := overrides["placeholder"]; v != "" {
		cfg.Placeholder = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "root":
		cfg.Root = value
	case "attachmentsDir":
		cfg.AttachmentsDir = value
	case "termsFile":
		cfg.TermsFile = value
	case "placeholder":
		cfg.Placeholder = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
