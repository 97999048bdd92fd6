package driven

import "time"

// ConfigStore holds stored settings under flat dotted keys such as
// "ttp.host". Typed getters return the zero value for a missing key or a
// value of another type.
type ConfigStore interface {
	// Get returns the raw value and whether the key is stored.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int
	GetFloat(key string) float64
	GetBool(key string) bool

	// GetDuration parses a value stored as text, e.g. "30s".
	GetDuration(key string) time.Duration

	// Set stores a value. Persistent stores write it immediately.
	Set(key string, value any) error

	// Unset removes a value. Removing a missing key is not an error.
	Unset(key string) error

	// Keys returns the stored keys in sorted order.
	Keys() []string

	// Path locates the backing file, or ":memory:".
	Path() string
}
