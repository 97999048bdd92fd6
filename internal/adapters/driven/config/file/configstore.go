package file

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// FileName is the name of the config file within the config directory.
const FileName = "config.toml"

// ConfigStore persists settings to a TOML file. Keys are held flat
// ("ttp.host") and written as nested tables ([ttp] host), so viper reads
// the same file.
type ConfigStore struct {
	*memory.ConfigStore

	// writeMu serialises writes to the file.
	writeMu  sync.Mutex
	filePath string
}

// DefaultDir returns ~/.synergos.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".synergos"), nil
}

// NewConfigStore opens configDir/config.toml, creating the directory when
// needed. An empty configDir means DefaultDir. A missing file is an empty
// store.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		ConfigStore: memory.NewConfigStore(),
		filePath:    filepath.Join(configDir, FileName),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Set stores a value and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = s.ConfigStore.Set(key, value)
	return s.save()
}

// Unset removes a value and rewrites the file. The file is left alone when
// the key was not stored.
func (s *ConfigStore) Unset(key string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, ok := s.Get(key); !ok {
		return nil
	}
	_ = s.ConfigStore.Unset(key)
	return s.save()
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// save writes the file (caller must hold writeMu).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(nestMap(s.Snapshot()))
	if err != nil {
		return err
	}
	// The file may hold a bearer token.
	return os.WriteFile(s.filePath, data, 0600)
}

func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.Replace(flattenMap(loaded, ""))
	return nil
}

// flattenMap converts nested tables to dotted keys:
// {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		nested, ok := value.(map[string]any)
		if !ok {
			result[key] = value
			continue
		}
		for k, v := range flattenMap(nested, key) {
			result[k] = v
		}
	}
	return result
}

// nestMap is the inverse of flattenMap.
func nestMap(flat map[string]any) map[string]any {
	result := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := result
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return result
}
