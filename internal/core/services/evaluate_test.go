package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func TestValidationService_Read_Narrowing(t *testing.T) {
	tests := []struct {
		name    string
		keys    domain.Keys
		path    string
		missing string
	}{
		{"project", domain.Keys{CollabID: "c", ProjectID: "p"},
			"/ttp/evaluate/collaborations/c/projects/p/validations", ""},
		{"participant", domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e", RunID: "r", ParticipantID: "w"},
			"/ttp/evaluate/collaborations/c/projects/p/validations/e/r/w", ""},
		{"participant without run", domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e", ParticipantID: "w"},
			"", domain.FieldRunID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{}
			_, err := NewValidationService(spy).Read(context.Background(), tt.keys)

			if tt.missing != "" {
				var fe *domain.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.missing, fe.Field)
				assert.Empty(t, spy.calls())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, spy.last().Path)
		})
	}
}

func TestPredictionService_Create(t *testing.T) {
	tags := map[string][][]string{"p": {{"predict"}}}

	t.Run("by run", func(t *testing.T) {
		spy := &spyTransport{}
		keys := domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e", RunID: "r", ParticipantID: "w"}

		_, err := NewPredictionService(spy).Create(context.Background(), keys, domain.NewPredictionOptions(tags))

		require.NoError(t, err)
		assert.Equal(t, "/ttp/evaluate/participants/w/collaborations/c/predictions/p/e/r", spy.last().Path)
	})

	t.Run("without tags", func(t *testing.T) {
		spy := &spyTransport{}
		keys := domain.Keys{CollabID: "c", ParticipantID: "w"}

		_, err := NewPredictionService(spy).Create(context.Background(), keys, domain.PredictionOptions{})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, spy.calls())
	})

	t.Run("experiment without project", func(t *testing.T) {
		spy := &spyTransport{}
		keys := domain.Keys{CollabID: "c", ExptID: "e", ParticipantID: "w"}

		_, err := NewPredictionService(spy).Read(context.Background(), keys)

		var fe *domain.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, domain.FieldProjectID, fe.Field)
	})
}
