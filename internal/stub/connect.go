package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// parent is a record that must exist before a child is created.
type parent struct {
	resource domain.Resource
	fields   []string
}

// collection is a phase 1 resource.
type collection struct {
	resource domain.Resource

	// idField is the body field naming a new record; it fills keyField.
	idField  string
	keyField string

	parents []parent

	// cascade lists resources removed along with a record.
	cascade []domain.Resource
}

var (
	collabFields       = []string{domain.FieldCollabID}
	projectFields      = []string{domain.FieldCollabID, domain.FieldProjectID}
	experimentFields   = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID}
	runFields          = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldExptID, domain.FieldRunID}
	participantFields  = []string{domain.FieldParticipantID}
	registrationFields = []string{domain.FieldCollabID, domain.FieldProjectID, domain.FieldParticipantID}
)

// generatedResources are removed with any record they descend from.
var generatedResources = []domain.Resource{
	domain.ResourceAlignment,
	domain.ResourceModel,
	domain.ResourceOptimization,
	domain.ResourceValidation,
	domain.ResourcePrediction,
}

func cascadeOf(rs ...domain.Resource) []domain.Resource {
	return append(rs, generatedResources...)
}

var (
	collaborations = collection{
		resource: domain.ResourceCollaboration,
		idField:  domain.FieldCollabID,
		keyField: domain.FieldCollabID,
		cascade: cascadeOf(domain.ResourceProject, domain.ResourceExperiment, domain.ResourceRun,
			domain.ResourceRegistration, domain.ResourceTag),
	}
	projects = collection{
		resource: domain.ResourceProject,
		idField:  domain.FieldProjectID,
		keyField: domain.FieldProjectID,
		parents:  []parent{{domain.ResourceCollaboration, collabFields}},
		cascade: cascadeOf(domain.ResourceExperiment, domain.ResourceRun,
			domain.ResourceRegistration, domain.ResourceTag),
	}
	experiments = collection{
		resource: domain.ResourceExperiment,
		idField:  domain.FieldExptID,
		keyField: domain.FieldExptID,
		parents:  []parent{{domain.ResourceProject, projectFields}},
		cascade:  cascadeOf(domain.ResourceRun),
	}
	runs = collection{
		resource: domain.ResourceRun,
		idField:  domain.FieldRunID,
		keyField: domain.FieldRunID,
		parents:  []parent{{domain.ResourceExperiment, experimentFields}},
		cascade:  cascadeOf(),
	}
	participants = collection{
		resource: domain.ResourceParticipant,
		idField:  "id",
		keyField: domain.FieldParticipantID,
		cascade:  cascadeOf(domain.ResourceRegistration, domain.ResourceTag),
	}
	registrations = collection{
		resource: domain.ResourceRegistration,
		parents: []parent{
			{domain.ResourceProject, projectFields},
			{domain.ResourceParticipant, participantFields},
		},
		cascade: []domain.Resource{domain.ResourceTag, domain.ResourceValidation, domain.ResourcePrediction},
	}
	tags = collection{
		resource: domain.ResourceTag,
		parents:  []parent{{domain.ResourceRegistration, registrationFields}},
	}
)

func (s *Server) routes() {
	connect := s.engine.Group("/ttp/connect")

	s.mount(connect, "/collaborations", "/:collab_id", collaborations)
	s.mount(connect, "/collaborations/:collab_id/projects", "/:project_id", projects)
	s.mount(connect, "/collaborations/:collab_id/projects/:project_id/experiments", "/:expt_id", experiments)
	s.mount(connect, "/collaborations/:collab_id/projects/:project_id/experiments/:expt_id/runs", "/:run_id", runs)
	s.mount(connect, "/participants", "/:participant_id", participants)

	registration := "/collaborations/:collab_id/projects/:project_id/participants/:participant_id/registration"
	s.mountSingle(connect, registration, registrations)
	s.mountSingle(connect, registration+"/tags", tags)

	connect.GET("/participants/:participant_id/registrations", s.list(registrations))
	connect.GET("/participants/:participant_id/collaborations/:collab_id/registrations", s.list(registrations))
	connect.GET("/collaborations/:collab_id/registrations", s.list(registrations))
	connect.GET("/collaborations/:collab_id/projects/:project_id/registrations", s.list(registrations))

	s.trainRoutes(s.engine.Group("/ttp/train/collaborations/:collab_id/projects/:project_id"))
	s.evaluateRoutes(s.engine.Group("/ttp/evaluate"))
}

// mount registers a collection whose records live under base+item.
func (s *Server) mount(g *gin.RouterGroup, base, item string, col collection) {
	g.POST(base, s.create(col))
	g.GET(base, s.list(col))
	g.GET(base+item, s.read(col))
	g.PUT(base+item, s.update(col))
	g.DELETE(base+item, s.remove(col))
}

// mountSingle registers a resource addressed entirely by its path.
func (s *Server) mountSingle(g *gin.RouterGroup, path string, col collection) {
	g.POST(path, s.create(col))
	g.GET(path, s.read(col))
	g.PUT(path, s.update(col))
	g.DELETE(path, s.remove(col))
}

// requireParents answers 404 when a parent of keys is missing.
func (s *Server) requireParents(c *gin.Context, parents []parent, keys domain.Keys) bool {
	for _, p := range parents {
		pk := subset(keys, p.fields...)
		if !s.db.exists(p.resource, pk) {
			failStore(c, p.resource, pk, errNotFound)
			return false
		}
	}
	return true
}

func (s *Server) create(col collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bind(c)
		if !ok {
			return
		}
		keys := keysOf(c)
		if col.idField != "" {
			v, _ := body[col.idField].(string)
			if v == "" {
				fail(c, http.StatusBadRequest, col.idField+" is required")
				return
			}
			keys = setKey(keys, col.keyField, v)
		}
		if !s.requireParents(c, col.parents, keys) {
			return
		}

		doc, err := s.db.insert(col.resource, keys, body)
		if err != nil {
			failStore(c, col.resource, keys, err)
			return
		}
		respond(c, http.StatusCreated, doc)
	}
}

func (s *Server) list(col collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, s.db.list(col.resource, keysOf(c)))
	}
}

func (s *Server) read(col collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		keys := keysOf(c)
		doc, err := s.db.get(col.resource, keys)
		if err != nil {
			failStore(c, col.resource, keys, err)
			return
		}
		respond(c, http.StatusOK, doc)
	}
}

func (s *Server) update(col collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bind(c)
		if !ok {
			return
		}
		keys := keysOf(c)
		doc, err := s.db.update(col.resource, keys, body)
		if err != nil {
			failStore(c, col.resource, keys, err)
			return
		}
		respond(c, http.StatusOK, doc)
	}
}

func (s *Server) remove(col collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		keys := keysOf(c)
		doc, err := s.db.remove(col.resource, keys, col.cascade...)
		if err != nil {
			failStore(c, col.resource, keys, err)
			return
		}
		respond(c, http.StatusOK, doc)
	}
}
