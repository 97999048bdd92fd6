package stub

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

func (s *Server) trainRoutes(g *gin.RouterGroup) {
	g.POST("/alignments", s.align)
	g.GET("/alignments", s.listGenerated(domain.ResourceAlignment))

	for _, path := range []string{"/models", "/models/:expt_id", "/models/:expt_id/:run_id"} {
		g.POST(path, s.train)
		g.GET(path, s.listGenerated(domain.ResourceModel))
	}

	g.POST("/models/:expt_id/optimizations", s.optimize)
	g.GET("/models/:expt_id/optimizations", s.listGenerated(domain.ResourceOptimization))
}

func (s *Server) evaluateRoutes(g *gin.RouterGroup) {
	validations := "/collaborations/:collab_id/projects/:project_id/validations"
	for _, path := range []string{"", "/:expt_id", "/:expt_id/:run_id", "/:expt_id/:run_id/:participant_id"} {
		g.POST(validations+path, s.validate)
		g.GET(validations+path, s.listGenerated(domain.ResourceValidation))
	}

	predictions := "/participants/:participant_id/collaborations/:collab_id/predictions"
	for _, path := range []string{"", "/:project_id", "/:project_id/:expt_id", "/:project_id/:expt_id/:run_id"} {
		g.POST(predictions+path, s.predict)
		g.GET(predictions+path, s.listGenerated(domain.ResourcePrediction))
	}
}

// scopeParents lists the records a train or evaluate scope refers to.
func scopeParents(keys domain.Keys) []parent {
	parents := []parent{{domain.ResourceProject, projectFields}}
	if keys.ExptID != "" {
		parents = append(parents, parent{domain.ResourceExperiment, experimentFields})
	}
	if keys.RunID != "" {
		parents = append(parents, parent{domain.ResourceRun, runFields})
	}
	return parents
}

// trainedRuns returns the runs in scope that have a model.
func (s *Server) trainedRuns(scope domain.Keys) []domain.Keys {
	var out []domain.Keys
	for _, run := range s.db.list(domain.ResourceRun, subset(scope, runFields...)) {
		keys := run.keys()
		if s.db.exists(domain.ResourceModel, keys) {
			out = append(out, keys)
		}
	}
	return out
}

func (s *Server) listGenerated(r domain.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, s.db.list(r, keysOf(c)))
	}
}

func (s *Server) align(c *gin.Context) {
	body, ok := bind(c)
	if !ok {
		return
	}
	keys := keysOf(c)
	if !s.requireParents(c, []parent{{domain.ResourceProject, projectFields}}, keys) {
		return
	}

	regs := s.db.list(domain.ResourceRegistration, subset(keys, projectFields...))
	if len(regs) == 0 {
		fail(c, http.StatusNotFound, fmt.Sprintf("project %s has no registered participants", keys))
		return
	}
	body["participants"] = participantIDs(regs)
	respond(c, http.StatusCreated, s.db.upsert(domain.ResourceAlignment, keys, body))
}

func (s *Server) train(c *gin.Context) {
	body, ok := bind(c)
	if !ok {
		return
	}
	scope := keysOf(c)
	if !s.requireParents(c, scopeParents(scope), scope) {
		return
	}

	runs := s.db.list(domain.ResourceRun, subset(scope, runFields...))
	if len(runs) == 0 {
		fail(c, http.StatusNotFound, fmt.Sprintf("no runs in scope %s", scope))
		return
	}
	models := make([]document, 0, len(runs))
	for _, run := range runs {
		models = append(models, s.db.upsert(domain.ResourceModel, run.keys(), body))
	}
	respond(c, http.StatusCreated, models)
}

func (s *Server) optimize(c *gin.Context) {
	body, ok := bind(c)
	if !ok {
		return
	}
	keys := keysOf(c)
	if !s.requireParents(c, scopeParents(keys), keys) {
		return
	}
	respond(c, http.StatusCreated, s.db.upsert(domain.ResourceOptimization, keys, body))
}

func (s *Server) validate(c *gin.Context) {
	body, ok := bind(c)
	if !ok {
		return
	}
	scope := keysOf(c)
	parents := scopeParents(scope)
	if scope.ParticipantID != "" {
		parents = append(parents, parent{domain.ResourceRegistration, registrationFields})
	}
	if !s.requireParents(c, parents, scope) {
		return
	}

	runs := s.trainedRuns(scope)
	if len(runs) == 0 {
		fail(c, http.StatusNotFound, fmt.Sprintf("no trained models in scope %s", scope))
		return
	}
	regs := s.db.list(domain.ResourceRegistration, subset(scope, registrationFields...))

	var out []document
	for _, run := range runs {
		for _, reg := range regs {
			keys := run
			keys.ParticipantID = reg.keys().ParticipantID
			out = append(out, s.db.upsert(domain.ResourceValidation, keys, body))
		}
	}
	respond(c, http.StatusCreated, out)
}

func (s *Server) predict(c *gin.Context) {
	body, ok := bind(c)
	if !ok {
		return
	}
	scope := keysOf(c)
	parents := []parent{
		{domain.ResourceCollaboration, collabFields},
		{domain.ResourceParticipant, participantFields},
	}
	if scope.ProjectID != "" {
		parents = append(parents, scopeParents(scope)...)
	}
	if !s.requireParents(c, parents, scope) {
		return
	}

	projects := tagProjects(body)
	if scope.ProjectID != "" {
		projects = slices.DeleteFunc(projects, func(p string) bool { return p != scope.ProjectID })
	}
	if len(projects) == 0 {
		fail(c, http.StatusBadRequest, "tags must name at least one project in scope")
		return
	}

	var out []document
	for _, project := range projects {
		keys := setKey(scope, domain.FieldProjectID, project)
		if !s.requireParents(c, []parent{{domain.ResourceRegistration, registrationFields}}, keys) {
			return
		}
		for _, run := range s.trainedRuns(keys) {
			run.ParticipantID = scope.ParticipantID
			out = append(out, s.db.upsert(domain.ResourcePrediction, run, body))
		}
	}
	if len(out) == 0 {
		fail(c, http.StatusNotFound, fmt.Sprintf("no trained models in scope %s", scope))
		return
	}
	respond(c, http.StatusCreated, out)
}

// tagProjects returns the project ids of a prediction body's tags, sorted.
func tagProjects(body map[string]any) []string {
	tags, _ := body["tags"].(map[string]any)
	projects := make([]string, 0, len(tags))
	for p := range tags {
		projects = append(projects, p)
	}
	slices.Sort(projects)
	return projects
}

func participantIDs(regs []document) []string {
	ids := make([]string, 0, len(regs))
	for _, r := range regs {
		ids = append(ids, r.keys().ParticipantID)
	}
	return ids
}
