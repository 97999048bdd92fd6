package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/synergos-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyTTPHost        = "ttp.host"
	KeyTTPPort        = "ttp.port"
	KeyTTPSecure      = "ttp.secure"
	KeyTTPTimeout     = "ttp.timeout"
	KeyTTPToken       = "ttp.token"
	KeyTTPRateLimit   = "ttp.rate_limit"
	KeyTTPBurst       = "ttp.burst"
	KeyJournalBackend = "journal.backend"
)

// settingParsers convert text to the stored type of each key.
var settingParsers = map[string]func(string) (any, error){
	KeyTTPHost: func(v string) (any, error) {
		if v == "" {
			return nil, domain.Missing(KeyTTPHost)
		}
		return v, nil
	},
	KeyTTPPort: func(v string) (any, error) {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return nil, domain.Invalid(KeyTTPPort, "must be a number between 1 and 65535")
		}
		return port, nil
	},
	KeyTTPSecure: func(v string) (any, error) {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, domain.Invalid(KeyTTPSecure, "must be true or false")
		}
		return b, nil
	},
	KeyTTPTimeout: func(v string) (any, error) {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, domain.Invalid(KeyTTPTimeout, "must be a positive duration such as 30s or 2m")
		}
		return d.String(), nil
	},
	KeyTTPToken: func(v string) (any, error) {
		return v, nil
	},
	KeyTTPRateLimit: func(v string) (any, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return nil, domain.Invalid(KeyTTPRateLimit, "must be a non-negative number of requests per second")
		}
		return f, nil
	},
	KeyTTPBurst: func(v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, domain.Invalid(KeyTTPBurst, "must be a positive number")
		}
		return n, nil
	},
	KeyJournalBackend: func(v string) (any, error) {
		if !domain.JournalBackend(v).IsValid() {
			return nil, domain.Invalid(KeyJournalBackend, "must be off, memory or sqlite")
		}
		return v, nil
	},
}

// SettingsService manages CLI settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the stored settings merged over the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.Settings{
		TTP: domain.TTPSettings{
			Host:      s.getString(KeyTTPHost, defaults.TTP.Host),
			Port:      s.getInt(KeyTTPPort, defaults.TTP.Port),
			Secure:    s.getBool(KeyTTPSecure, defaults.TTP.Secure),
			Timeout:   s.getDuration(KeyTTPTimeout, defaults.TTP.Timeout),
			Token:     s.configStore.GetString(KeyTTPToken),
			RateLimit: s.getFloat(KeyTTPRateLimit, defaults.TTP.RateLimit),
			Burst:     s.getInt(KeyTTPBurst, defaults.TTP.Burst),
		},
		Journal: s.getJournal(defaults.Journal),
	}
	return settings, nil
}

// Set parses and stores one value by key.
func (s *SettingsService) Set(key, value string) error {
	parse, ok := settingParsers[key]
	if !ok {
		return domain.Invalid("key", fmt.Sprintf("%q is not a recognised setting", key))
	}
	v, err := parse(value)
	if err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("no config store: cannot set %s", key)
	}
	return s.configStore.Set(key, v)
}

// Unset removes a stored value so its default applies again.
func (s *SettingsService) Unset(key string) error {
	if _, ok := settingParsers[key]; !ok {
		return domain.Invalid("key", fmt.Sprintf("%q is not a recognised setting", key))
	}
	if s.configStore == nil {
		return nil
	}
	return s.configStore.Unset(key)
}

// Keys lists the recognised keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingParsers))
	for k := range settingParsers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the effective value of a key as text.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	switch key {
	case KeyTTPHost:
		return settings.TTP.Host, nil
	case KeyTTPPort:
		return strconv.Itoa(settings.TTP.Port), nil
	case KeyTTPSecure:
		return strconv.FormatBool(settings.TTP.Secure), nil
	case KeyTTPTimeout:
		return settings.TTP.Timeout.String(), nil
	case KeyTTPToken:
		return settings.TTP.Token, nil
	case KeyTTPRateLimit:
		return strconv.FormatFloat(settings.TTP.RateLimit, 'f', -1, 64), nil
	case KeyTTPBurst:
		return strconv.Itoa(settings.TTP.Burst), nil
	case KeyJournalBackend:
		return settings.Journal.String(), nil
	default:
		return "", domain.Invalid("key", fmt.Sprintf("%q is not a recognised setting", key))
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if d := s.configStore.GetDuration(key); d > 0 {
		return d
	}
	return defaultVal
}

func (s *SettingsService) getJournal(defaultVal domain.JournalBackend) domain.JournalBackend {
	val := domain.JournalBackend(s.configStore.GetString(KeyJournalBackend))
	if !val.IsValid() {
		return defaultVal
	}
	return val
}
