package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func TestCreate_MissingKeys_NoNetworkCall(t *testing.T) {
	ctx := context.Background()
	node := domain.Node{Host: "172.17.0.2", Port: 8020, FPort: 5000}

	tests := []struct {
		name  string
		field string
		call  func(g *Grid) error
	}{
		{"collaboration", domain.FieldCollabID, func(g *Grid) error {
			_, err := g.Collaborations.Create(ctx, domain.Collaboration{})
			return err
		}},
		{"project without collab", domain.FieldCollabID, func(g *Grid) error {
			_, err := g.Projects.Create(ctx, domain.Keys{}, domain.Project{ID: "p"})
			return err
		}},
		{"project without id", domain.FieldProjectID, func(g *Grid) error {
			_, err := g.Projects.Create(ctx, domain.Keys{CollabID: "c"}, domain.Project{ID: "   "})
			return err
		}},
		{"experiment", domain.FieldExptID, func(g *Grid) error {
			_, err := g.Experiments.Create(ctx, domain.Keys{CollabID: "c", ProjectID: "p"}, domain.Experiment{})
			return err
		}},
		{"run", domain.FieldExptID, func(g *Grid) error {
			_, err := g.Runs.Create(ctx, domain.Keys{CollabID: "c", ProjectID: "p"}, domain.NewRun("r"))
			return err
		}},
		{"participant", domain.FieldParticipantID, func(g *Grid) error {
			_, err := g.Participants.Create(ctx, domain.Participant{})
			return err
		}},
		{"registration", domain.FieldParticipantID, func(g *Grid) error {
			reg := domain.Registration{Role: domain.RoleHost, Nodes: []domain.Node{node}}
			_, err := g.Registrations.Create(ctx, domain.Keys{CollabID: "c", ProjectID: "p"}, reg)
			return err
		}},
		{"tag", domain.FieldProjectID, func(g *Grid) error {
			_, err := g.Tags.Create(ctx, domain.Keys{CollabID: "c", ParticipantID: "x"}, domain.TagSet{})
			return err
		}},
		{"alignment", domain.FieldProjectID, func(g *Grid) error {
			_, err := g.Alignments.Create(ctx, domain.Keys{CollabID: "c"})
			return err
		}},
		{"model", domain.FieldCollabID, func(g *Grid) error {
			_, err := g.Models.Create(ctx, domain.Keys{ProjectID: "p"}, domain.DefaultTrainingOptions())
			return err
		}},
		{"optimization", domain.FieldExptID, func(g *Grid) error {
			_, err := g.Optimizations.Create(ctx, domain.Keys{CollabID: "c", ProjectID: "p"}, domain.Optimization{})
			return err
		}},
		{"validation", domain.FieldProjectID, func(g *Grid) error {
			_, err := g.Validations.Create(ctx, domain.Keys{CollabID: "c"}, domain.DefaultTrainingOptions())
			return err
		}},
		{"prediction", domain.FieldParticipantID, func(g *Grid) error {
			opts := domain.NewPredictionOptions(map[string][][]string{"p": {{"predict"}}})
			_, err := g.Predictions.Create(ctx, domain.Keys{CollabID: "c"}, opts)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{}
			err := tt.call(NewGrid(spy))

			require.ErrorIs(t, err, domain.ErrValidation)
			var fe *domain.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Empty(t, spy.calls())
		})
	}
}

func TestProjectService_Create(t *testing.T) {
	spy := &spyTransport{respond: func(req domain.Request) (*domain.Response, error) {
		return okResponse(req.Method, map[string]any{"project_id": "test_project", "action": "classify"}), nil
	}}
	service := NewProjectService(spy)

	resp, err := service.Create(context.Background(),
		domain.Keys{CollabID: "test_collab"},
		domain.Project{ID: "test_project", Action: domain.ActionClassify})

	require.NoError(t, err)
	rec, err := resp.Record()
	require.NoError(t, err)
	assert.Equal(t, "test_project", rec["project_id"])

	req := spy.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/ttp/connect/collaborations/test_collab/projects", req.Path)
}

func TestProjectService_Create_InvalidAction(t *testing.T) {
	spy := &spyTransport{}

	_, err := NewProjectService(spy).Create(context.Background(),
		domain.Keys{CollabID: "c"}, domain.Project{ID: "p", Action: "cluster"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, spy.calls())
}

func TestProjectService_Create_MissingAction(t *testing.T) {
	spy := &spyTransport{}

	_, err := NewProjectService(spy).Create(context.Background(),
		domain.Keys{CollabID: "c"}, domain.Project{ID: "p"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	var fe *domain.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "action", fe.Field)
	assert.Empty(t, spy.calls())
}

func TestRunService_Create_ServerError(t *testing.T) {
	spy := &spyTransport{respond: func(req domain.Request) (*domain.Response, error) {
		return nil, &domain.ServiceError{StatusCode: http.StatusInternalServerError, Method: req.Method, Path: req.Path}
	}}
	keys := domain.Keys{CollabID: "c", ProjectID: "p", ExptID: "e"}

	_, err := NewRunService(spy).Create(context.Background(), keys, domain.Run{ID: "test_run"})

	assert.ErrorIs(t, err, domain.ErrService)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	require.Len(t, spy.calls(), 1)

	payload, ok := spy.last().Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "test_run", payload["run_id"])
	assert.Equal(t, "FedProx", payload["algorithm"])
}

func TestConnectServices_Paths(t *testing.T) {
	ctx := context.Background()
	keys := domain.Keys{CollabID: "c 1", ProjectID: "p", ExptID: "e", RunID: "r", ParticipantID: "x/y"}

	tests := []struct {
		name   string
		call   func(g *Grid) error
		method string
		path   string
	}{
		{"collaborations", func(g *Grid) error { _, err := g.Collaborations.ReadAll(ctx, keys); return err },
			http.MethodGet, "/ttp/connect/collaborations"},
		{"collaboration", func(g *Grid) error { _, err := g.Collaborations.Read(ctx, keys); return err },
			http.MethodGet, "/ttp/connect/collaborations/c%201"},
		{"projects", func(g *Grid) error { _, err := g.Projects.ReadAll(ctx, keys); return err },
			http.MethodGet, "/ttp/connect/collaborations/c%201/projects"},
		{"experiment delete", func(g *Grid) error { _, err := g.Experiments.Delete(ctx, keys); return err },
			http.MethodDelete, "/ttp/connect/collaborations/c%201/projects/p/experiments/e"},
		{"run update", func(g *Grid) error {
			_, err := g.Runs.Update(ctx, keys, map[string]any{"rounds": 3})
			return err
		}, http.MethodPut, "/ttp/connect/collaborations/c%201/projects/p/experiments/e/runs/r"},
		{"participant", func(g *Grid) error { _, err := g.Participants.Read(ctx, keys); return err },
			http.MethodGet, "/ttp/connect/participants/x%2Fy"},
		{"registration", func(g *Grid) error { _, err := g.Registrations.Read(ctx, keys); return err },
			http.MethodGet, "/ttp/connect/collaborations/c%201/projects/p/participants/x%2Fy/registration"},
		{"tags", func(g *Grid) error { _, err := g.Tags.Read(ctx, keys); return err },
			http.MethodGet, "/ttp/connect/collaborations/c%201/projects/p/participants/x%2Fy/registration/tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{}
			require.NoError(t, tt.call(NewGrid(spy)))

			req := spy.last()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
		})
	}
}

func TestUpdate_RequiresUpdates(t *testing.T) {
	spy := &spyTransport{}

	_, err := NewCollaborationService(spy).Update(context.Background(), domain.Keys{CollabID: "c"}, nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, spy.calls())
}

func TestNilTransport(t *testing.T) {
	_, err := NewParticipantService(nil).ReadAll(context.Background(), domain.Keys{})

	assert.ErrorIs(t, err, domain.ErrConnection)
}
