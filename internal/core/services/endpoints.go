package services

import (
	"net/url"
	"strings"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// Route prefixes of the three TTP phases.
const (
	connectPrefix  = "/ttp/connect"
	trainPrefix    = "/ttp/train"
	evaluatePrefix = "/ttp/evaluate"
)

// route joins literal segments and path-escaped identifiers.
// Identifiers are passed through seg.
func route(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String()
}

func seg(s string) string {
	return url.PathEscape(s)
}

// Phase 1

func collaborationsPath() string {
	return route(connectPrefix, "collaborations")
}

func collaborationPath(k domain.Keys) string {
	return route(connectPrefix, "collaborations", seg(k.CollabID))
}

func projectsPath(k domain.Keys) string {
	return route(collaborationPath(k), "projects")
}

func projectPath(k domain.Keys) string {
	return route(projectsPath(k), seg(k.ProjectID))
}

func experimentsPath(k domain.Keys) string {
	return route(projectPath(k), "experiments")
}

func experimentPath(k domain.Keys) string {
	return route(experimentsPath(k), seg(k.ExptID))
}

func runsPath(k domain.Keys) string {
	return route(experimentPath(k), "runs")
}

func runPath(k domain.Keys) string {
	return route(runsPath(k), seg(k.RunID))
}

func participantsPath() string {
	return route(connectPrefix, "participants")
}

func participantPath(k domain.Keys) string {
	return route(participantsPath(), seg(k.ParticipantID))
}

func registrationPath(k domain.Keys) string {
	return route(projectPath(k), "participants", seg(k.ParticipantID), "registration")
}

func tagsPath(k domain.Keys) string {
	return route(registrationPath(k), "tags")
}

// Phase 2

func trainProjectPath(k domain.Keys) string {
	return route(trainPrefix, "collaborations", seg(k.CollabID), "projects", seg(k.ProjectID))
}

func alignmentsPath(k domain.Keys) string {
	return route(trainProjectPath(k), "alignments")
}

func modelsPath(k domain.Keys) string {
	return narrow(route(trainProjectPath(k), "models"), k, domain.FieldExptID, domain.FieldRunID)
}

func optimizationsPath(k domain.Keys) string {
	return route(trainProjectPath(k), "models", seg(k.ExptID), "optimizations")
}

// Phase 3

func validationsPath(k domain.Keys) string {
	base := route(evaluatePrefix, "collaborations", seg(k.CollabID), "projects", seg(k.ProjectID), "validations")
	return narrow(base, k, domain.FieldExptID, domain.FieldRunID, domain.FieldParticipantID)
}

func predictionsPath(k domain.Keys) string {
	base := route(evaluatePrefix, "participants", seg(k.ParticipantID), "collaborations", seg(k.CollabID), "predictions")
	return narrow(base, k, domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID)
}

// narrow appends the present keys among fields, in order, stopping at the
// first absent one.
func narrow(base string, k domain.Keys, fields ...string) string {
	for _, f := range fields {
		v := strings.TrimSpace(k.Get(f))
		if v == "" {
			break
		}
		base = route(base, seg(v))
	}
	return base
}

// requireScope checks the required keys, then that each optional key is
// only given when the one before it is.
func requireScope(k domain.Keys, required []string, optional ...string) error {
	if err := k.Require(required...); err != nil {
		return err
	}
	for i := 1; i < len(optional); i++ {
		if strings.TrimSpace(k.Get(optional[i])) != "" && strings.TrimSpace(k.Get(optional[i-1])) == "" {
			return domain.Missing(optional[i-1])
		}
	}
	return nil
}
