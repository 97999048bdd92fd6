package driving

import "github.com/custodia-labs/synergos-cli/internal/core/domain"

// SettingsService manages CLI settings.
type SettingsService interface {
	// Get returns the stored settings merged over the defaults.
	Get() (*domain.Settings, error)

	// Set parses and stores one value by key.
	Set(key, value string) error

	// Unset removes a stored value so its default applies again.
	Unset(key string) error

	// Keys lists the recognised keys.
	Keys() []string

	// Value returns the effective value of a key as text.
	Value(key string) (string, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
