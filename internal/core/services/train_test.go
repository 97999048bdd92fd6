package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func TestGeneratedResources_Unsupported(t *testing.T) {
	ctx := context.Background()
	keys := domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e", RunID: "r", ParticipantID: "w"}
	spy := &spyTransport{}
	grid := NewGrid(spy)

	for _, r := range domain.Resources() {
		if r.Mutable() {
			continue
		}
		t.Run(r.String(), func(t *testing.T) {
			svc := grid.Records(r)
			require.NotNil(t, svc)

			_, err := svc.Update(ctx, keys, map[string]any{"a": 1})
			assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

			_, err = svc.Delete(ctx, keys)
			assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

			_, err = svc.ReadAll(ctx, keys)
			assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

			var uoe *domain.UnsupportedOperationError
			require.ErrorAs(t, err, &uoe)
			assert.Equal(t, r, uoe.Resource)
		})
	}

	assert.Empty(t, spy.calls())
}

func TestGrid_Records_Unknown(t *testing.T) {
	assert.Nil(t, NewGrid(nil).Records("widget"))
}

func TestModelService_Scope(t *testing.T) {
	tests := []struct {
		name    string
		keys    domain.Keys
		path    string
		missing string
	}{
		{"project", domain.Keys{CollabID: "c", ProjectID: "p"},
			"/ttp/train/collaborations/c/projects/p/models", ""},
		{"experiment", domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e"},
			"/ttp/train/collaborations/c/projects/p/models/e", ""},
		{"run", domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e", RunID: "r"},
			"/ttp/train/collaborations/c/projects/p/models/e/r", ""},
		{"run without experiment", domain.Keys{CollabID: "c", ProjectID: "p", RunID: "r"},
			"", domain.FieldExptID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{}
			service := NewModelService(spy)

			_, err := service.Create(context.Background(), tt.keys, domain.DefaultTrainingOptions())

			if tt.missing != "" {
				var fe *domain.FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.missing, fe.Field)
				assert.Empty(t, spy.calls())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.MethodPost, spy.last().Method)
			assert.Equal(t, tt.path, spy.last().Path)
			assert.Equal(t, domain.DefaultTrainingOptions(), spy.last().Payload)
		})
	}
}

func TestAlignmentService(t *testing.T) {
	spy := &spyTransport{}
	service := NewAlignmentService(spy)
	keys := domain.Keys{CollabID: "c", ProjectID: "p"}

	_, err := service.Create(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, "/ttp/train/collaborations/c/projects/p/alignments", spy.last().Path)

	_, err = service.Read(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, spy.last().Method)
}

func TestOptimizationService_Create(t *testing.T) {
	keys := domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e"}
	space := map[string]domain.SearchParam{"rounds": {Type: "choice", Value: []any{1, 2}}}

	t.Run("valid search", func(t *testing.T) {
		spy := &spyTransport{}
		_, err := NewOptimizationService(spy).Create(context.Background(), keys,
			domain.NewOptimization("TPE", "accuracy", "maximize", space))

		require.NoError(t, err)
		assert.Equal(t, "/ttp/train/collaborations/c/projects/p/models/e/optimizations", spy.last().Path)
	})

	t.Run("missing tuner", func(t *testing.T) {
		spy := &spyTransport{}
		_, err := NewOptimizationService(spy).Create(context.Background(), keys,
			domain.NewOptimization("", "accuracy", "maximize", space))

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, spy.calls())
	})
}
