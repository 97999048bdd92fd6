package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// EmptyInput is the input schema of tools that take no arguments.
type EmptyInput struct{}

// ScopeInput identifies records on the TTP. Which fields are required
// depends on the tool.
type ScopeInput struct {
	CollabID      string `json:"collab_id,omitempty" jsonschema:"the collaboration id"`
	ProjectID     string `json:"project_id,omitempty" jsonschema:"the project id"`
	ExptID        string `json:"expt_id,omitempty" jsonschema:"the experiment id"`
	RunID         string `json:"run_id,omitempty" jsonschema:"the run id"`
	ParticipantID string `json:"participant_id,omitempty" jsonschema:"the participant id"`
}

func (in ScopeInput) keys() domain.Keys {
	return domain.Keys{
		CollabID:      in.CollabID,
		ProjectID:     in.ProjectID,
		ExptID:        in.ExptID,
		RunID:         in.RunID,
		ParticipantID: in.ParticipantID,
	}
}

// TrainInput is the input schema of trigger_training and trigger_validation.
type TrainInput struct {
	CollabID      string `json:"collab_id" jsonschema:"the collaboration id"`
	ProjectID     string `json:"project_id" jsonschema:"the project id"`
	ExptID        string `json:"expt_id,omitempty" jsonschema:"narrow to one experiment"`
	RunID         string `json:"run_id,omitempty" jsonschema:"narrow to one run of the experiment"`
	ParticipantID string `json:"participant_id,omitempty" jsonschema:"narrow validation to one participant"`
	AutoAlign     *bool  `json:"auto_align,omitempty" jsonschema:"apply feature alignment first (default true)"`
	Dockerised    *bool  `json:"dockerised,omitempty" jsonschema:"workers run in containers (default true)"`
}

func (in TrainInput) keys() domain.Keys {
	return domain.Keys{
		CollabID:      in.CollabID,
		ProjectID:     in.ProjectID,
		ExptID:        in.ExptID,
		RunID:         in.RunID,
		ParticipantID: in.ParticipantID,
	}
}

func (in TrainInput) options() domain.TrainingOptions {
	opts := domain.DefaultTrainingOptions()
	if in.AutoAlign != nil {
		opts.AutoAlign = *in.AutoAlign
	}
	if in.Dockerised != nil {
		opts.Dockerised = *in.Dockerised
	}
	return opts
}

// PredictionInput is the input schema of trigger_prediction.
type PredictionInput struct {
	ParticipantID string                `json:"participant_id" jsonschema:"the participant requesting inference"`
	CollabID      string                `json:"collab_id" jsonschema:"the collaboration id"`
	ProjectID     string                `json:"project_id,omitempty" jsonschema:"narrow to one project"`
	ExptID        string                `json:"expt_id,omitempty" jsonschema:"narrow to one experiment"`
	RunID         string                `json:"run_id,omitempty" jsonschema:"narrow to one run"`
	Tags          map[string][][]string `json:"tags" jsonschema:"prediction data tags keyed by project id"`
}

// RecordOutput is the output schema of every tool: the TTP's response.
type RecordOutput struct {
	Status int    `json:"status"`
	Method string `json:"method,omitempty"`
	Data   any    `json:"data"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_collaborations",
		Description: "List every collaboration registered on the TTP",
	}, s.handleListCollaborations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Get one project of a collaboration (collab_id, project_id)",
	}, s.handleGetProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_experiments",
		Description: "List the experiments of a project (collab_id, project_id)",
	}, s.handleListExperiments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_runs",
		Description: "List the runs of an experiment (collab_id, project_id, expt_id)",
	}, s.handleListRuns)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_registrations",
		Description: "List registrations by participant, collaboration and participant, collaboration, or collaboration and project",
	}, s.handleListRegistrations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trigger_alignment",
		Description: "Align the features of every participant in a project (collab_id, project_id)",
	}, s.handleTriggerAlignment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trigger_training",
		Description: "Start federated training for a project, experiment or run",
	}, s.handleTriggerTraining)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_models",
		Description: "Get trained models for a project, experiment or run",
	}, s.handleGetModels)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trigger_validation",
		Description: "Validate trained models for a project, experiment, run or participant",
	}, s.handleTriggerValidation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_validations",
		Description: "Get validation statistics for a project, experiment, run or participant",
	}, s.handleGetValidations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trigger_prediction",
		Description: "Request inference by a participant on its tagged prediction data",
	}, s.handleTriggerPrediction)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_predictions",
		Description: "Get inference results of a participant (participant_id, collab_id)",
	}, s.handleGetPredictions)
}

// output converts a TTP response into the tool output.
func output(resp *domain.Response) (RecordOutput, error) {
	out := RecordOutput{Status: resp.Status, Method: resp.Method}
	if len(resp.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Data, &out.Data); err != nil {
		return RecordOutput{}, fmt.Errorf("decoding response data: %w", err)
	}
	return out, nil
}

func respond(resp *domain.Response, err error) (*mcp.CallToolResult, RecordOutput, error) {
	if err != nil {
		return nil, RecordOutput{}, err
	}
	out, err := output(resp)
	return nil, out, err
}

func (s *Server) handleListCollaborations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Collaborations.ReadAll(ctx, domain.Keys{}))
}

func (s *Server) handleGetProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Projects.Read(ctx, input.keys()))
}

func (s *Server) handleListExperiments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Experiments.ReadAll(ctx, input.keys()))
}

func (s *Server) handleListRuns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Runs.ReadAll(ctx, input.keys()))
}

func (s *Server) handleListRegistrations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Registrations.ReadAll(ctx, input.keys()))
}

func (s *Server) handleTriggerAlignment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Alignments.Create(ctx, input.keys()))
}

func (s *Server) handleTriggerTraining(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TrainInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	keys := input.keys()
	keys.ParticipantID = ""
	return respond(s.ports.Models.Create(ctx, keys, input.options()))
}

func (s *Server) handleGetModels(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Models.Read(ctx, input.keys()))
}

func (s *Server) handleTriggerValidation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TrainInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Validations.Create(ctx, input.keys(), input.options()))
}

func (s *Server) handleGetValidations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Validations.Read(ctx, input.keys()))
}

func (s *Server) handleTriggerPrediction(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PredictionInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	keys := domain.Keys{
		CollabID:      input.CollabID,
		ProjectID:     input.ProjectID,
		ExptID:        input.ExptID,
		RunID:         input.RunID,
		ParticipantID: input.ParticipantID,
	}
	return respond(s.ports.Predictions.Create(ctx, keys, domain.NewPredictionOptions(input.Tags)))
}

func (s *Server) handleGetPredictions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScopeInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	return respond(s.ports.Predictions.Read(ctx, input.keys()))
}
