// Package steps provides the workflow step list for the TUI.
package steps

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// symbols mark each step status.
var symbols = map[domain.StepStatus]string{
	domain.StepPending:   "·",
	domain.StepSucceeded: "✓",
	domain.StepFailed:    "✗",
	domain.StepSkipped:   "-",
}

// List displays workflow steps grouped by phase.
type List struct {
	steps   []domain.StepEvent
	styles  *styles.Styles
	details bool
	width   int
	height  int
}

// NewList creates a new step list component.
func NewList(s *styles.Styles) *List {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &List{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetPlan replaces the list with the planned steps.
func (l *List) SetPlan(plan []domain.StepEvent) {
	l.steps = append([]domain.StepEvent(nil), plan...)
}

// Apply records a progress event. Steps unknown to the plan are added.
func (l *List) Apply(ev domain.StepEvent) {
	for len(l.steps) <= ev.Index {
		l.steps = append(l.steps, domain.StepEvent{Index: len(l.steps), Status: domain.StepPending})
	}
	l.steps[ev.Index] = ev
	for i := range l.steps {
		l.steps[i].Total = max(l.steps[i].Total, ev.Total)
	}
}

// Steps returns the steps in order.
func (l *List) Steps() []domain.StepEvent {
	return l.steps
}

// Counts returns how many steps have finished, and the total.
func (l *List) Counts() (done, total int) {
	total = len(l.steps)
	for _, s := range l.steps {
		total = max(total, s.Total)
		if s.Status != domain.StepPending && s.Status != domain.StepStarted {
			done++
		}
	}
	return done, total
}

// Failed returns the failed step, or nil.
func (l *List) Failed() *domain.StepEvent {
	for i := range l.steps {
		if l.steps[i].Status == domain.StepFailed {
			return &l.steps[i]
		}
	}
	return nil
}

// ToggleDetails shows or hides keys and errors under each step.
func (l *List) ToggleDetails() {
	l.details = !l.details
}

// Details reports whether details are shown.
func (l *List) Details() bool {
	return l.details
}

// View renders the list. spinner is drawn next to running steps.
func (l *List) View(spinner string) string {
	if len(l.steps) == 0 {
		return l.styles.Muted.Render("Waiting for the first step...")
	}

	lines := make([]string, 0, len(l.steps)+3)
	var phase domain.Phase
	for _, s := range l.visible() {
		if s.Phase != phase && s.Phase != "" {
			phase = s.Phase
			lines = append(lines, l.styles.Subtitle.Render(strings.ToUpper(string(phase))))
		}
		lines = append(lines, l.renderStep(s, spinner))
		if l.details {
			lines = append(lines, l.renderDetails(s)...)
		}
	}
	return strings.Join(lines, "\n")
}

// visible returns the steps that fit the height, keeping the most recent
// activity on screen.
func (l *List) visible() []domain.StepEvent {
	limit := l.height - 4
	if limit < 1 {
		limit = 1
	}
	if len(l.steps) <= limit {
		return l.steps
	}

	last := 0
	for i, s := range l.steps {
		if s.Status != domain.StepPending {
			last = i
		}
	}
	end := min(len(l.steps), max(last+1, limit))
	return l.steps[end-limit : end]
}

func (l *List) renderStep(s domain.StepEvent, spinner string) string {
	symbol, ok := symbols[s.Status]
	if s.Status == domain.StepStarted || !ok {
		symbol = spinner
	}

	label := fmt.Sprintf("%s %s", symbol, s.Resource)
	if key := s.Keys.String(); key != "" {
		label += " " + key
	}
	maxLen := l.width - 12
	if maxLen > 10 && len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}

	line := l.styles.Step(s.Status).Render(label)
	if s.Elapsed > 0 {
		line += " " + l.styles.Muted.Render(s.Elapsed.Round(time.Millisecond).String())
	}
	if s.Status == domain.StepSkipped {
		line += " " + l.styles.Muted.Render("(already absent)")
	}
	return line
}

func (l *List) renderDetails(s domain.StepEvent) []string {
	var out []string
	for _, f := range s.Keys.Present() {
		out = append(out, l.styles.Muted.Render(fmt.Sprintf("    %s: %s", f, s.Keys.Get(f))))
	}
	if s.Err != nil {
		out = append(out, l.styles.Error.Render("    "+s.Err.Error()))
	}
	return out
}

// SetDimensions sets the component dimensions.
func (l *List) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}
