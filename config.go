package builder

import (
	"errors"
	"strings"
)

var (
	ErrStorageDriverUnknown = errors.New("builder: unknown storage driver")
	ErrStorageDSNRequired   = errors.New("builder: storage dsn is required")
	ErrLoggingLevelInvalid  = errors.New("builder: invalid logging level")
	ErrLoggingFormatInvalid = errors.New("builder: invalid logging format")
	ErrHistoryDepthInvalid  = errors.New("builder: history depth must not be negative")
)

// StorageDriver selects where project documents persist.
type StorageDriver string

const (
	StorageMemory StorageDriver = "memory"
	StorageSQLite StorageDriver = "sqlite"
)

// LoggingConfig controls the go-logger provider the module constructs when
// logging is enabled. Hosts that already run their own provider can pass it
// through WithLoggerProvider instead.
type LoggingConfig struct {
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	Level     string   `json:"level" yaml:"level"`
	Format    string   `json:"format" yaml:"format"`
	AddSource bool     `json:"add_source" yaml:"add_source"`
	Focus     []string `json:"focus" yaml:"focus"`
}

// StorageConfig controls project document persistence.
type StorageConfig struct {
	Driver StorageDriver `json:"driver" yaml:"driver"`
	DSN    string        `json:"dsn" yaml:"dsn"`
}

// HistoryConfig controls the undo log. A zero depth selects
// DefaultHistoryDepth.
type HistoryConfig struct {
	Depth int `json:"depth" yaml:"depth"`
}

// TemplatesConfig controls template pack loading. Dir points at a directory
// of frontmatter Markdown pack files layered on top of the built-ins.
type TemplatesConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// Features toggles optional module behaviour.
type Features struct {
	Autosave bool `json:"autosave" yaml:"autosave"`
}

// Config is the module configuration.
type Config struct {
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
	Storage   StorageConfig   `json:"storage" yaml:"storage"`
	History   HistoryConfig   `json:"history" yaml:"history"`
	Templates TemplatesConfig `json:"templates" yaml:"templates"`
	Features  Features        `json:"features" yaml:"features"`
}

// DefaultConfig returns the configuration used when the host supplies
// nothing: in-memory storage, autosave on, default history depth, logging
// off.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{Driver: StorageMemory},
		History: HistoryConfig{Depth: DefaultHistoryDepth},
		Features: Features{
			Autosave: true,
		},
	}
}

// Validate checks the configuration for contradictions before any wiring
// happens.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "", StorageMemory:
	case StorageSQLite:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return ErrStorageDriverUnknown
	}

	if c.History.Depth < 0 {
		return ErrHistoryDepthInvalid
	}

	if c.Logging.Enabled {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}
	return nil
}
