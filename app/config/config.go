package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// DefaultDocumentPath is the document words are appended to unless configured
const DefaultDocumentPath = "English Words.md"

// Settings holds lookup configuration
type Settings struct {
	// Credentials is the GigaChat authorization key, sent as Basic auth as is
	Credentials  string `toml:"credentials"`
	DocumentPath string `toml:"document_path"`
}

// Default returns settings with defaults applied
func Default() Settings {
	return Settings{DocumentPath: DefaultDocumentPath}
}

// Override returns copy of s with non-empty fields of o applied on top
func (s Settings) Override(o Settings) Settings {
	if o.Credentials != "" {
		s.Credentials = o.Credentials
	}
	if o.DocumentPath != "" {
		s.DocumentPath = o.DocumentPath
	}
	return s
}

// DefaultPath returns settings file location.
// Uses $XDG_CONFIG_HOME/english-words if set, otherwise ~/.config/english-words
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "english-words", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "english-words", "config.toml")
}

// Load reads settings file merged over defaults. Missing file is not an error
func Load(path string) (Settings, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DocumentPath == "" {
		cfg.DocumentPath = DefaultDocumentPath
	}
	return cfg, nil
}

// Save writes settings replacing the file atomically
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(s); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp := path + ".tmp"
	// credentials are secret
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", tmp).Msg("failed to remove temporary config")
		}
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
