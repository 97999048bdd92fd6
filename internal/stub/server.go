package stub

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/logger"
)

// APIVersion is reported in every response envelope.
const APIVersion = "0.1.0"

// envelope is the body of every TTP response.
type envelope struct {
	APIVersion string            `json:"apiVersion"`
	Success    int               `json:"success"`
	Status     int               `json:"status"`
	Method     string            `json:"method"`
	Params     map[string]string `json:"params"`
	Data       any               `json:"data"`
	Message    string            `json:"message,omitempty"`
}

// Server is an in-memory TTP.
type Server struct {
	engine *gin.Engine
	db     *store
}

// New creates a stub TTP with no records.
func New() *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	// Identifiers are path-escaped by clients and may contain slashes.
	engine.UseRawPath = true
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{engine: engine, db: newStore()}
	s.routes()
	return s
}

// Handler returns the HTTP handler serving the TTP endpoints.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs each handled request in verbose mode.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("stub: %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// keysOf reads the record keys from the route parameters.
func keysOf(c *gin.Context) domain.Keys {
	return domain.Keys{
		CollabID:      c.Param(domain.FieldCollabID),
		ProjectID:     c.Param(domain.FieldProjectID),
		ExptID:        c.Param(domain.FieldExptID),
		RunID:         c.Param(domain.FieldRunID),
		ParticipantID: c.Param(domain.FieldParticipantID),
	}
}

// operation names a route the way the TTP does, e.g. "projects.post".
func operation(c *gin.Context) string {
	segments := strings.Split(strings.Trim(c.FullPath(), "/"), "/")
	name := ""
	for i := len(segments) - 1; i >= 0; i-- {
		if !strings.HasPrefix(segments[i], ":") {
			name = segments[i]
			break
		}
	}
	return name + "." + strings.ToLower(c.Request.Method)
}

func params(c *gin.Context) map[string]string {
	out := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		out[p.Key] = p.Value
	}
	return out
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{
		APIVersion: APIVersion,
		Success:    1,
		Status:     status,
		Method:     operation(c),
		Params:     params(c),
		Data:       data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{
		APIVersion: APIVersion,
		Success:    0,
		Status:     status,
		Method:     operation(c),
		Params:     params(c),
		Message:    message,
	})
}

// failStore answers a store error with its HTTP status.
func failStore(c *gin.Context, r domain.Resource, keys domain.Keys, err error) {
	switch {
	case errors.Is(err, errNotFound):
		fail(c, http.StatusNotFound, string(r)+" "+keys.String()+" not found")
	case errors.Is(err, errConflict):
		fail(c, http.StatusConflict, string(r)+" "+keys.String()+" already exists")
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}

// bind decodes a JSON object body. An empty body is an empty object.
func bind(c *gin.Context) (map[string]any, bool) {
	body := map[string]any{}
	if c.Request.ContentLength == 0 {
		return body, true
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return nil, false
	}
	return body, true
}
