package domain

import (
	"fmt"
	"time"
)

// JournalBackend selects where the CLI records TTP calls.
type JournalBackend string

// Available journal backends.
const (
	// JournalOff records nothing.
	JournalOff JournalBackend = "off"

	// JournalMemory records for the lifetime of the process.
	JournalMemory JournalBackend = "memory"

	// JournalSQLite records to a database in the config directory.
	JournalSQLite JournalBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b JournalBackend) IsValid() bool {
	switch b {
	case JournalOff, JournalMemory, JournalSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b JournalBackend) String() string {
	return string(b)
}

// TTPSettings locate and authenticate against a TTP.
type TTPSettings struct {
	Host    string
	Port    int
	Secure  bool
	Timeout time.Duration

	// Token is sent as a bearer token when set.
	Token string

	// RateLimit caps requests per second. Zero disables limiting.
	RateLimit float64
	Burst     int
}

// Address returns the base URL of the TTP.
func (s TTPSettings) Address() string {
	scheme := "http"
	if s.Secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, s.Host, s.Port)
}

// Validate checks the host and port.
func (s TTPSettings) Validate() error {
	if s.Host == "" {
		return Missing("host")
	}
	if s.Port < 1 || s.Port > 65535 {
		return Invalid("port", fmt.Sprintf("must be between 1 and 65535, got %d", s.Port))
	}
	if s.Timeout < 0 {
		return Invalid("timeout", "must not be negative")
	}
	return nil
}

// Settings is the CLI configuration.
type Settings struct {
	TTP     TTPSettings
	Journal JournalBackend
}

// DefaultSettings returns the configuration used when nothing is set.
func DefaultSettings() Settings {
	return Settings{
		TTP: TTPSettings{
			Host:    "localhost",
			Port:    5000,
			Timeout: 30 * time.Second,
			Burst:   1,
		},
		Journal: JournalSQLite,
	}
}
