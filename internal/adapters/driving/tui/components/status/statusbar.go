// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/styles"
)

// State represents the state of the workflow for display.
type State string

const (
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// Bar displays workflow progress and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	done    int
	total   int
	elapsed time.Duration
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateRunning,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	progress := fmt.Sprintf("%d/%d steps", s.done, s.total)
	if s.elapsed > 0 {
		progress += " in " + s.elapsed.Round(time.Millisecond).String()
	}

	switch s.state {
	case StateSucceeded:
		return s.styles.Success.Render("Done: " + progress)
	case StateFailed:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Failed after %s: %s", progress, s.message))
		}
		return s.styles.Error.Render("Failed after " + progress)
	case StateCancelled:
		return s.styles.Warning.Render("Cancelled after " + progress)
	case StateRunning:
		return s.styles.Normal.Render(progress)
	}
	return s.styles.Muted.Render(progress)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown on failure.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetProgress sets the finished and total step counts.
func (s *Bar) SetProgress(done, total int) {
	s.done = done
	s.total = total
}

// Progress returns the finished and total step counts.
func (s *Bar) Progress() (done, total int) {
	return s.done, s.total
}

// SetElapsed sets the time the workflow has run.
func (s *Bar) SetElapsed(d time.Duration) {
	s.elapsed = d
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
