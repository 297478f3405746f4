// Package config persists nimbuscode settings as a JSON file in the user's
// config directory and resolves the OpenRouter API key from the environment
// or the persisted settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nimbuscode/nimbuscode/pkg/logger"
)

// EnvAPIKey is the environment variable that overrides the persisted API key.
const EnvAPIKey = "OPENROUTER_API_KEY"

// Defaults written on first access and used when the config file is corrupt.
const (
	DefaultModel       = "openrouter/auto"
	DefaultMaxTokens   = 1024
	DefaultTemperature = 0.7
)

const (
	dirName  = ".nimbuscode"
	fileName = "config.json"
)

// Settings holds the persisted configuration record.
type Settings struct {
	APIKey      string  `json:"api_key"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// DefaultSettings returns the baseline settings written on first access.
func DefaultSettings() Settings {
	return Settings{
		APIKey:      "",
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// Store reads and writes the settings file in a single directory.
type Store struct {
	dir string
	log logger.Logger
}

// NewStore builds a store rooted at dir. An empty dir selects the default
// per-user location (~/.nimbuscode). The directory is injectable so tests
// never touch the real user config.
func NewStore(dir string, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	if strings.TrimSpace(dir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locating home directory: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	return &Store{dir: dir, log: log}, nil
}

// Path returns the full path of the settings file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load returns the persisted settings, creating the directory and a default
// file on first access. A corrupt file is not fatal: it is reported and
// settings built from the environment key plus defaults are returned.
func (s *Store) Load() (Settings, error) {
	if err := s.ensure(); err != nil {
		return Settings{}, err
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		s.log.Warn("config read failed, using defaults", map[string]string{"path": s.Path(), "error": err.Error()})
		return s.fallback(), nil
	}

	// Start from defaults so keys missing from the file keep their default
	// values after unmarshalling.
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Warn("config parse failed, using defaults", map[string]string{"path": s.Path(), "error": err.Error()})
		return s.fallback(), nil
	}
	return settings, nil
}

// Save overwrites the settings file with the full current settings.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(s.Path(), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// ensure creates the config directory and a default settings file when absent.
func (s *Store) ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if _, err := os.Stat(s.Path()); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking settings file: %w", err)
	}
	if err := s.Save(DefaultSettings()); err != nil {
		return err
	}
	s.log.Info("config file created", map[string]string{"path": s.Path()})
	return nil
}

// fallback builds settings from the environment key and hard-coded defaults.
func (s *Store) fallback() Settings {
	settings := DefaultSettings()
	settings.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	return settings
}

// ResolveKey returns the API key to use for requests. A non-empty value of
// the OPENROUTER_API_KEY environment variable wins over the persisted key;
// whitespace-only values count as unset in both sources.
func ResolveKey(settings Settings) string {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key
	}
	return strings.TrimSpace(settings.APIKey)
}
