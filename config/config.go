// Package config holds the settings of the textcore demo host.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iw2rmb/textcore/buffer"
)

type Config struct {
	Backend         string `json:"backend"`
	PageSize        int    `json:"page_size"`
	TabWidth        int    `json:"tab_width"`
	ShowLineNumbers bool   `json:"show_line_numbers"`
	Language        string `json:"language"` // "go" or "" for plain text
	LogVerbosity    int    `json:"log_verbosity"`
	LogFile         string `json:"log_file"`
}

var defaultConfig = Config{
	Backend:         buffer.Contiguous.String(),
	PageSize:        20,
	TabWidth:        4,
	ShowLineNumbers: true,
	Language:        "go",
}

func Default() Config { return defaultConfig }

// Load builds a Config from any JSON-marshalable value; only fields present
// in v overwrite the defaults.
func Load(v any) (Config, error) {
	cfg := defaultConfig

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := defaultConfig

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromJSON(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrPageSize = errors.New("page_size must be positive")
	ErrTabWidth = errors.New("tab_width must be positive")
	ErrLanguage = errors.New("unsupported language")
)

func (c Config) Validate() error {
	if _, err := buffer.ParseBackend(c.Backend); err != nil {
		return err
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: %d", ErrPageSize, c.PageSize)
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrTabWidth, c.TabWidth)
	}
	switch c.Language {
	case "", "go":
	default:
		return fmt.Errorf("%w: %q", ErrLanguage, c.Language)
	}
	return nil
}

// BufferBackend returns the parsed backend. Validate first.
func (c Config) BufferBackend() buffer.Backend {
	kind, err := buffer.ParseBackend(c.Backend)
	if err != nil {
		return buffer.Contiguous
	}
	return kind
}
