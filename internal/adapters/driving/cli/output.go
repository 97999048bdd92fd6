package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/synergos-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// plain styles the line-oriented output of commands.
var plain = styles.DefaultStyles()

// printResponse writes the data of a TTP response as indented JSON.
func printResponse(w io.Writer, resp *domain.Response) error {
	if resp == nil || len(resp.Data) == 0 || string(resp.Data) == "null" {
		_, err := fmt.Fprintln(w, "{}")
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Data, "", "  "); err != nil {
		return fmt.Errorf("formatting response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// stepLine renders one workflow step for non-interactive output.
func stepLine(ev domain.StepEvent) string {
	prefix := fmt.Sprintf("[%d/%d] %-8s %-13s", ev.Index+1, ev.Total, ev.Phase, ev.Resource)
	label := prefix + " " + ev.Keys.String()

	var mark string
	var style lipgloss.Style
	switch ev.Status {
	case domain.StepSucceeded:
		mark, style = "ok", plain.Success
	case domain.StepSkipped:
		mark, style = "skipped", plain.Warning
	case domain.StepFailed:
		mark, style = "failed", plain.Error
	default:
		return ""
	}

	line := style.Render(label + " " + mark)
	if ev.Elapsed > 0 {
		line += " " + plain.Muted.Render(ev.Elapsed.Round(time.Millisecond).String())
	}
	if ev.Err != nil {
		line += "\n    " + plain.Error.Render(ev.Err.Error())
	}
	return line
}
