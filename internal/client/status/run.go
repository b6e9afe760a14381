package status

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnhealthy is returned when the activation settles in StateError.
var ErrUnhealthy = errors.New("backend unhealthy")

// Run shows the interactive view until the user quits, or until the request
// resolves when opts.ExitOnSettle is set.
func Run(ctx context.Context, fetcher HealthFetcher, opts Options, progOpts ...tea.ProgramOption) error {
	opts.Interactive = true
	m := New(ctx, fetcher, opts)

	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)
	final, err := tea.NewProgram(m, progOpts...).Run()
	if fm, ok := final.(Model); ok {
		fm.Deactivate()
		if err == nil && fm.State() == StateError {
			return fmt.Errorf("%w: %s", ErrUnhealthy, fm.Err())
		}
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("status view: %w", err)
	}
	return nil
}

// RunPlain performs a single activation without a terminal UI and writes the settled view to w.
func RunPlain(ctx context.Context, fetcher HealthFetcher, opts Options, w io.Writer) (State, error) {
	opts.Interactive = false
	m := New(ctx, fetcher, opts)
	defer m.Deactivate()

	next, _ := m.Update(m.fetch(m.active)())
	m = next.(Model)

	// a result dropped because ctx ended leaves the view loading; the backend was never checked
	if !m.State().Settled() {
		cause := m.parent.Err()
		if cause == nil {
			cause = context.Canceled
		}
		return m.State(), fmt.Errorf("%w: health check interrupted: %w", ErrUnhealthy, cause)
	}

	if _, err := io.WriteString(w, m.View()); err != nil {
		return m.State(), err
	}
	if m.State() == StateError {
		return m.State(), fmt.Errorf("%w: %s", ErrUnhealthy, m.Err())
	}
	return m.State(), nil
}
