package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJournalBackend_IsValid(t *testing.T) {
	tests := []struct {
		backend JournalBackend
		want    bool
	}{
		{JournalOff, true},
		{JournalMemory, true},
		{JournalSQLite, true},
		{"postgres", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.backend.IsValid())
		})
	}
}

func TestTTPSettings_Address(t *testing.T) {
	s := TTPSettings{Host: "ttp.local", Port: 5000}
	assert.Equal(t, "http://ttp.local:5000", s.Address())

	s.Secure = true
	assert.Equal(t, "https://ttp.local:5000", s.Address())
}

func TestTTPSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings TTPSettings
		wantErr  bool
	}{
		{"defaults", DefaultSettings().TTP, false},
		{"empty host", TTPSettings{Port: 5000}, true},
		{"port zero", TTPSettings{Host: "h"}, true},
		{"port too high", TTPSettings{Host: "h", Port: 70000}, true},
		{"negative timeout", TTPSettings{Host: "h", Port: 1, Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "localhost", s.TTP.Host)
	assert.Equal(t, 5000, s.TTP.Port)
	assert.Equal(t, 30*time.Second, s.TTP.Timeout)
	assert.Equal(t, JournalSQLite, s.Journal)
}
