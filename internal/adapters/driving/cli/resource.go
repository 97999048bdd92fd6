package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/manifest"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// decodeFunc fills v from the --file body. It leaves v untouched when no
// file is given.
type decodeFunc func(v any) error

// recordCommand describes the commands of one sub-resource.
type recordCommand struct {
	resource domain.Resource
	short    string
	keys     []string
	create   func(ctx context.Context, keys domain.Keys, decode decodeFunc) (*domain.Response, error)
}

var (
	projectKeys      = []string{domain.FieldCollabID, domain.FieldProjectID}
	experimentKeys   = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID}
	runKeys          = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID}
	registrationKeys = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldParticipantID}
	validationKeys   = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID, domain.FieldParticipantID}
	predictionKeys   = []string{domain.FieldParticipantID, domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID}
)

// connectCommands are the records created in the connect phase. They
// support the full set of operations.
var connectCommands = []recordCommand{
	{
		resource: domain.ResourceCollaboration,
		short:    "Manage collaborations",
		keys:     []string{domain.FieldCollabID},
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			var c domain.Collaboration
			if err := decode(&c); err != nil {
				return nil, err
			}
			c.ID = override(c.ID, k.CollabID)
			return grid.Collaborations.Create(ctx, c)
		},
	},
	{
		resource: domain.ResourceProject,
		short:    "Manage the projects of a collaboration",
		keys:     projectKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			var p domain.Project
			if err := decode(&p); err != nil {
				return nil, err
			}
			p.ID = override(p.ID, k.ProjectID)
			return grid.Projects.Create(ctx, k, p)
		},
	},
	{
		resource: domain.ResourceExperiment,
		short:    "Manage the experiments of a project",
		keys:     experimentKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			var e domain.Experiment
			if err := decode(&e); err != nil {
				return nil, err
			}
			e.ID = override(e.ID, k.ExptID)
			return grid.Experiments.Create(ctx, k, e)
		},
	},
	{
		resource: domain.ResourceRun,
		short:    "Manage the runs of an experiment",
		keys:     runKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			r := domain.NewRun("")
			if err := decode(&r); err != nil {
				return nil, err
			}
			r.ID = override(r.ID, k.RunID)
			return grid.Runs.Create(ctx, k, r)
		},
	},
	{
		resource: domain.ResourceParticipant,
		short:    "Manage participants",
		keys:     []string{domain.FieldParticipantID},
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			var p domain.Participant
			if err := decode(&p); err != nil {
				return nil, err
			}
			p.ID = override(p.ID, k.ParticipantID)
			return grid.Participants.Create(ctx, p)
		},
	},
	{
		resource: domain.ResourceRegistration,
		short:    "Manage the registrations of participants to projects",
		keys:     registrationKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			var r domain.Registration
			if err := decode(&r); err != nil {
				return nil, err
			}
			return grid.Registrations.Create(ctx, k, r)
		},
	},
	{
		resource: domain.ResourceTag,
		short:    "Manage the data tags of a registration",
		keys:     registrationKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			var t domain.TagSet
			if err := decode(&t); err != nil {
				return nil, err
			}
			return grid.Tags.Create(ctx, k, t)
		},
	},
}

// generatedCommands trigger the train and evaluate phases. Their records
// are produced by the TTP and can only be read back.
var generatedCommands = []recordCommand{
	{
		resource: domain.ResourceAlignment,
		short:    "Align the features of a project's participants",
		keys:     projectKeys,
		create: func(ctx context.Context, k domain.Keys, _ decodeFunc) (*domain.Response, error) {
			return grid.Alignments.Create(ctx, k)
		},
	},
	{
		resource: domain.ResourceModel,
		short:    "Train and read federated models",
		keys:     runKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			opts := domain.DefaultTrainingOptions()
			if err := decode(&opts); err != nil {
				return nil, err
			}
			return grid.Models.Create(ctx, k, opts)
		},
	},
	{
		resource: domain.ResourceOptimization,
		short:    "Search the hyperparameters of an experiment",
		keys:     experimentKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			opt := domain.NewOptimization("", "", "", nil)
			if err := decode(&opt); err != nil {
				return nil, err
			}
			return grid.Optimizations.Create(ctx, k, opt)
		},
	},
	{
		resource: domain.ResourceValidation,
		short:    "Validate trained models",
		keys:     validationKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			opts := domain.DefaultTrainingOptions()
			if err := decode(&opts); err != nil {
				return nil, err
			}
			return grid.Validations.Create(ctx, k, opts)
		},
	},
	{
		resource: domain.ResourcePrediction,
		short:    "Request inference by a participant",
		keys:     predictionKeys,
		create: func(ctx context.Context, k domain.Keys, decode decodeFunc) (*domain.Response, error) {
			opts := domain.NewPredictionOptions(nil)
			if err := decode(&opts); err != nil {
				return nil, err
			}
			return grid.Predictions.Create(ctx, k, opts)
		},
	},
}

func init() {
	for _, rc := range connectCommands {
		rootCmd.AddCommand(newRecordCmd(rc))
	}
	for _, rc := range generatedCommands {
		rootCmd.AddCommand(newRecordCmd(rc))
	}
}

// newRecordCmd builds the command group of one sub-resource.
func newRecordCmd(rc recordCommand) *cobra.Command {
	parent := &cobra.Command{
		Use:   rc.resource.String(),
		Short: rc.short,
	}

	create := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", rc.resource),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireGrid(); err != nil {
				return err
			}
			decode := func(v any) error {
				return decodeFile(cmd, v)
			}
			return show(cmd, rc.resource, "create")(rc.create(cmd.Context(), keysFrom(cmd), decode))
		},
	}
	create.Flags().StringP("file", "f", "", "request body (JSON, TOML or YAML)")
	parent.AddCommand(create)

	get := &cobra.Command{
		Use:   "get",
		Short: fmt.Sprintf("Get a %s", rc.resource),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireGrid(); err != nil {
				return err
			}
			return show(cmd, rc.resource, "get")(grid.Records(rc.resource).Read(cmd.Context(), keysFrom(cmd)))
		},
	}
	parent.AddCommand(get)

	subs := []*cobra.Command{create, get}
	if rc.resource.Mutable() {
		subs = append(subs, mutableCmds(rc)...)
	}
	for _, sub := range subs {
		addKeyFlags(sub, rc.keys...)
	}
	return parent
}

// mutableCmds builds list, update and delete for connect resources.
func mutableCmds(rc recordCommand) []*cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", rc.resource),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireGrid(); err != nil {
				return err
			}
			return show(cmd, rc.resource, "list")(grid.Records(rc.resource).ReadAll(cmd.Context(), keysFrom(cmd)))
		},
	}

	update := &cobra.Command{
		Use:   "update",
		Short: fmt.Sprintf("Update a %s", rc.resource),
		Long: fmt.Sprintf(`Update a %s with fields from --file and --set.

Values given with --set are parsed as JSON when possible, so
--set rounds=3 sends a number and --set name=a sends a string.`, rc.resource),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireGrid(); err != nil {
				return err
			}
			updates, err := updatesFrom(cmd)
			if err != nil {
				return err
			}
			return show(cmd, rc.resource, "update")(grid.Records(rc.resource).Update(cmd.Context(), keysFrom(cmd), updates))
		},
	}
	update.Flags().StringP("file", "f", "", "fields to update (JSON, TOML or YAML)")
	update.Flags().StringArray("set", nil, "field to update as key=value (repeatable)")

	del := &cobra.Command{
		Use:   "delete",
		Short: fmt.Sprintf("Delete a %s", rc.resource),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireGrid(); err != nil {
				return err
			}
			return show(cmd, rc.resource, "delete")(grid.Records(rc.resource).Delete(cmd.Context(), keysFrom(cmd)))
		},
	}

	return []*cobra.Command{list, update, del}
}

// show prints a response, or wraps the error with the operation.
func show(cmd *cobra.Command, r domain.Resource, op string) func(*domain.Response, error) error {
	return func(resp *domain.Response, err error) error {
		if err != nil {
			return fmt.Errorf("%s %s: %w", r, op, err)
		}
		return printResponse(cmd.OutOrStdout(), resp)
	}
}

// keyFlag returns the flag name of a key field, e.g. collab-id.
func keyFlag(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func addKeyFlags(cmd *cobra.Command, fields ...string) {
	for _, f := range fields {
		name := strings.TrimSuffix(f, "_id")
		cmd.Flags().String(keyFlag(f), "", name+" id")
	}
}

// keysFrom reads the key flags of cmd. Flags the command does not define
// are left empty.
func keysFrom(cmd *cobra.Command) domain.Keys {
	get := func(field string) string {
		v, _ := cmd.Flags().GetString(keyFlag(field))
		return v
	}
	return domain.Keys{
		CollabID:      get(domain.FieldCollabID),
		ProjectID:     get(domain.FieldProjectID),
		ExptID:        get(domain.FieldExptID),
		RunID:         get(domain.FieldRunID),
		ParticipantID: get(domain.FieldParticipantID),
	}
}

// override returns flag when set, otherwise value.
func override(value, flag string) string {
	if flag != "" {
		return flag
	}
	return value
}

// decodeFile decodes the --file body into v.
func decodeFile(cmd *cobra.Command, v any) error {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return nil
	}
	return manifest.NewReader().Decode(path, v)
}

// updatesFrom merges --file and --set into one update body.
func updatesFrom(cmd *cobra.Command) (map[string]any, error) {
	updates := map[string]any{}
	if err := decodeFile(cmd, &updates); err != nil {
		return nil, err
	}

	sets, _ := cmd.Flags().GetStringArray("set")
	for _, s := range sets {
		key, raw, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, domain.Invalid("set", fmt.Sprintf("%q is not key=value", s))
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		updates[key] = value
	}
	return updates, nil
}
