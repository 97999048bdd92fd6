package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/components/steps"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// Mode selects the workflow operation the app runs.
type Mode int

const (
	// ModeApply creates the workflow's records then trains and evaluates.
	ModeApply Mode = iota
	// ModeTeardown deletes the workflow's records.
	ModeTeardown
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeTeardown {
		return "teardown"
	}
	return "apply"
}

// App shows the progress of one workflow run, following the Elm
// architecture. It implements tea.Model for use with Bubbletea.
type App struct {
	ports    *Ports
	workflow *domain.Workflow
	mode     Mode

	ctx    context.Context
	cancel context.CancelFunc

	// events carries step progress from the workflow goroutine.
	events chan domain.StepEvent
	// result receives the workflow error once events is closed.
	result chan error

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model
	steps   *steps.List
	bar     *status.Bar

	started  time.Time
	finished bool
	err      error
	width    int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates an app that runs wf in the given mode.
func NewApp(ports *Ports, wf *domain.Workflow, mode Mode) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if wf == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingWorkflow)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	list := steps.NewList(s)
	bar := status.NewBar(s, km)
	if mode == ModeApply {
		plan := ports.Workflow.Plan(wf)
		list.SetPlan(plan)
		bar.SetProgress(0, len(plan))
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		ports:    ports,
		workflow: wf,
		mode:     mode,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan domain.StepEvent, 16),
		result:   make(chan error, 1),
		styles:   s,
		keymap:   km,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Spinner)),
		steps:    list,
		bar:      bar,
		width:    80,
	}, nil
}

// WithContext derives the workflow context from ctx.
func (a *App) WithContext(ctx context.Context) *App {
	a.cancel()
	a.ctx, a.cancel = context.WithCancel(ctx)
	return a
}

// Init implements tea.Model. It starts the workflow.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.start(),
		a.wait(),
	)
}

// start runs the workflow in the background, forwarding its progress to
// the events channel.
func (a *App) start() tea.Cmd {
	a.started = time.Now()
	ctx := a.ctx
	return func() tea.Msg {
		go func() {
			observe := func(ev domain.StepEvent) {
				select {
				case a.events <- ev:
				case <-ctx.Done():
				}
			}

			var err error
			switch a.mode {
			case ModeTeardown:
				err = a.ports.Workflow.Teardown(ctx, a.workflow, observe)
			default:
				err = a.ports.Workflow.Apply(ctx, a.workflow, observe)
			}
			a.result <- err
			close(a.events)
		}()
		return nil
	}
}

// wait delivers the next progress event, or the result once the workflow
// has returned.
func (a *App) wait() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-a.events
		if !ok {
			return messages.WorkflowFinished{Err: <-a.result}
		}
		return messages.StepUpdated{Event: ev}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), a.keymap.Quit):
			if !a.finished {
				a.cancel()
				a.finish(ErrCancelled)
			}
			return a, tea.Quit
		case keymap.Matches(msg.String(), a.keymap.Details):
			a.steps.ToggleDetails()
		}
		return a, nil

	case spinner.TickMsg:
		if a.finished {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.bar.SetElapsed(time.Since(a.started))
		return a, cmd

	case messages.StepUpdated:
		a.steps.Apply(msg.Event)
		a.bar.SetProgress(a.steps.Counts())
		return a, a.wait()

	case messages.WorkflowFinished:
		if a.finished {
			return a, tea.Quit
		}
		a.finish(msg.Err)
		return a, tea.Quit
	}

	return a, nil
}

// finish records the outcome and updates the status bar.
func (a *App) finish(err error) {
	a.finished = true
	a.err = err
	if !a.started.IsZero() {
		a.bar.SetElapsed(time.Since(a.started))
	}

	switch {
	case err == nil:
		a.bar.SetState(status.StateSucceeded)
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled):
		a.bar.SetState(status.StateCancelled)
	default:
		a.bar.SetState(status.StateFailed)
		a.bar.SetMessage(err.Error())
	}
}

// View implements tea.Model.
func (a *App) View() string {
	title := a.styles.Title.Render(fmt.Sprintf("synergos workflow %s: %s", a.mode, a.workflow.Collaboration.ID))
	return title + "\n\n" + a.steps.View(a.spinner.View()) + "\n\n" + a.bar.View() + "\n"
}

// Run starts the TUI and blocks until the workflow finishes or the user
// quits. It returns the workflow error.
func (a *App) Run(in io.Reader, out io.Writer) error {
	defer a.cancel()

	p := tea.NewProgram(a, tea.WithContext(a.ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil && !a.finished {
		return fmt.Errorf("running tui: %w", err)
	}
	return a.err
}

// Finished reports whether the workflow has returned or was cancelled.
func (a *App) Finished() bool {
	return a.finished
}

// Err returns the workflow error, if any.
func (a *App) Err() error {
	return a.err
}

// Steps returns the step list.
func (a *App) Steps() []domain.StepEvent {
	return a.steps.Steps()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.steps.SetDimensions(width, height-4)
	a.bar.SetWidth(width)
}
