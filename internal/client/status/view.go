package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/openmined/pulse/internal/health"
)

const (
	txtTitle     = "Pulse"
	txtSubtitle  = "Backend API status"
	txtLoading   = "Checking backend status..."
	txtConnected = "● Connected"
	txtErrorHead = "Error:"
	txtErrorHint = "Make sure the backend server is running."
	txtHelpBusy  = "Press 'q' to quit."
	txtHelpDone  = "Press 'r' to check again. 'q' to quit."

	displayLayout = "2006/01/02 15:04:05 MST"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(txtTitle))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(txtSubtitle))
	if m.opts.ServerURL != "" {
		b.WriteString(labelStyle.Render(" · "))
		b.WriteString(m.opts.ServerURL)
	}
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		m.renderLoading(&b)
	case StateError:
		m.renderError(&b)
	case StateSuccess:
		m.renderSuccess(&b)
	}

	if m.opts.Interactive {
		b.WriteString("\n\n")
		if m.state.Settled() {
			b.WriteString(helpStyle.Render(txtHelpDone))
		} else {
			b.WriteString(helpStyle.Render(txtHelpBusy))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLoading(b *strings.Builder) {
	fmt.Fprintf(b, "%s %s", m.spinner.View(), txtLoading)
}

func (m Model) renderError(b *strings.Builder) {
	body := fmt.Sprintf("%s %s\n%s",
		errorTextStyle.Bold(true).Render(txtErrorHead),
		errorTextStyle.Render(m.errMsg),
		labelStyle.Render(txtErrorHint),
	)
	b.WriteString(errorPanel.Render(body))
}

func (m Model) renderSuccess(b *strings.Builder) {
	rows := []string{
		successTextStyle.Render(txtConnected),
		row("Status", m.health.Status),
		row("Environment", m.health.Environment),
		row("Timestamp", formatTimestamp(m.health.Timestamp, m.opts.Location, m.opts.Now())),
	}
	b.WriteString(successPanel.Render(strings.Join(rows, "\n")))
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-12s", label+":")), value)
}

// formatTimestamp renders raw in loc with a relative hint. Unparseable values are shown as received.
func formatTimestamp(raw string, loc *time.Location, now time.Time) string {
	t, err := (&health.Status{Timestamp: raw}).Time()
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%s (%s)", t.In(loc).Format(displayLayout), humanize.RelTime(t, now, "ago", "from now"))
}
