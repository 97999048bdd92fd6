package driver

import (
	"net/http"
	"time"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driven/rest"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
	"github.com/custodia-labs/synergos-cli/internal/core/services"
)

// DefaultTimeout bounds each call unless WithTimeout is given.
const DefaultTimeout = 30 * time.Second

// Option configures a Driver.
type Option func(*options)

type options struct {
	secure    bool
	timeout   time.Duration
	token     string
	rateLimit float64
	burst     int
	client    *http.Client
	transport Transport
	userAgent string
}

// WithSecure selects https.
func WithSecure(secure bool) Option {
	return func(o *options) { o.secure = secure }
}

// WithTimeout bounds each call. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithToken sends token as a bearer token on every call.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithRateLimit caps calls to rps per second with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateLimit = rps
		o.burst = burst
	}
}

// WithHTTPClient sends calls through client. Its own timeout applies.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.client = client }
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// Driver is a client for one TTP. It is safe for concurrent use.
type Driver struct {
	settings domain.TTPSettings
	grid     *services.Grid
}

// New creates a driver for the TTP at host:port. The host must be set and
// the port must be between 1 and 65535.
func New(host string, port int, opts ...Option) (*Driver, error) {
	o := options{timeout: DefaultTimeout, burst: 1}
	for _, opt := range opts {
		opt(&o)
	}

	settings := domain.TTPSettings{
		Host:      host,
		Port:      port,
		Secure:    o.secure,
		Timeout:   o.timeout,
		Token:     o.token,
		RateLimit: o.rateLimit,
		Burst:     o.burst,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	transport := o.transport
	if transport == nil {
		t, err := rest.New(rest.Config{Settings: settings, Client: o.client, UserAgent: o.userAgent})
		if err != nil {
			return nil, err
		}
		transport = t
	}

	return &Driver{settings: settings, grid: services.NewGrid(transport)}, nil
}

// Address returns the base URL of the TTP.
func (d *Driver) Address() string {
	return d.settings.Address()
}

// Grid returns every sub-resource service, for callers that run workflows.
func (d *Driver) Grid() *services.Grid {
	return d.grid
}

// Records returns the shared operations of a resource by name, or nil.
func (d *Driver) Records(r Resource) RecordService {
	return d.grid.Records(r)
}

// Collaborations manages collaborations.
func (d *Driver) Collaborations() CollaborationService { return d.grid.Collaborations }

// Projects manages projects within a collaboration.
func (d *Driver) Projects() ProjectService { return d.grid.Projects }

// Experiments manages model architectures within a project.
func (d *Driver) Experiments() ExperimentService { return d.grid.Experiments }

// Runs manages hyperparameter sets within an experiment.
func (d *Driver) Runs() RunService { return d.grid.Runs }

// Participants manages worker organisations.
func (d *Driver) Participants() ParticipantService { return d.grid.Participants }

// Registrations enrols participants in projects.
func (d *Driver) Registrations() RegistrationService { return d.grid.Registrations }

// Tags declares participants' data partitions.
func (d *Driver) Tags() TagService { return d.grid.Tags }

// Alignments triggers feature alignment of a project.
func (d *Driver) Alignments() AlignmentService { return d.grid.Alignments }

// Models triggers and reads federated training.
func (d *Driver) Models() ModelService { return d.grid.Models }

// Optimizations triggers hyperparameter searches.
func (d *Driver) Optimizations() OptimizationService { return d.grid.Optimizations }

// Validations triggers and reads model evaluation.
func (d *Driver) Validations() ValidationService { return d.grid.Validations }

// Predictions triggers and reads inference.
func (d *Driver) Predictions() PredictionService { return d.grid.Predictions }
