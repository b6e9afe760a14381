// Package status renders the health of a Pulse server in the terminal.
package status

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/openmined/pulse/internal/health"
	"github.com/openmined/pulse/internal/pulsesdk"
)

// HealthFetcher performs one health request. *pulsesdk.HealthAPI implements it.
type HealthFetcher interface {
	Get(ctx context.Context) (*health.Status, error)
}

type Options struct {
	ServerURL    string
	Location     *time.Location   // display zone for the timestamp, default time.Local
	Now          func() time.Time // reference for relative times, default time.Now
	Interactive  bool             // show key help
	ExitOnSettle bool             // quit the program once the request resolves
}

// activation is one mount of the view. Its request runs under ctx and its
// result is applied only while the activation is current and not cancelled.
type activation struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// healthResultMsg carries the outcome of an activation's single request.
type healthResultMsg struct {
	activationID uint64
	health       *health.Status
	err          error
}

type Model struct {
	parent  context.Context
	fetcher HealthFetcher
	opts    Options
	spinner spinner.Model

	active *activation
	nextID uint64

	state  State
	health *health.Status
	errMsg string
}

func New(ctx context.Context, fetcher HealthFetcher, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		parent:  ctx,
		fetcher: fetcher,
		opts:    opts,
		spinner: s,
	}
	return m.activate()
}

// activate starts a fresh activation in the loading state, dropping any previous result.
func (m Model) activate() Model {
	if m.active != nil {
		m.active.cancel()
	}

	m.nextID++
	ctx, cancel := context.WithCancel(m.parent)
	m.active = &activation{id: m.nextID, ctx: ctx, cancel: cancel}

	m.state = StateLoading
	m.health = nil
	m.errMsg = ""
	return m
}

// Deactivate cancels the in-flight request. Results arriving afterwards are ignored.
func (m Model) Deactivate() {
	if m.active != nil {
		m.active.cancel()
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.active))
}

func (m Model) fetch(a *activation) tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		st, err := fetcher.Get(a.ctx)
		return healthResultMsg{activationID: a.id, health: st, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthResultMsg:
		return m.settle(msg)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Deactivate()
			return m, tea.Quit
		case "r":
			if !m.state.Settled() {
				return m, nil
			}
			m = m.activate()
			return m, tea.Batch(m.spinner.Tick, m.fetch(m.active))
		}
	}

	return m, nil
}

func (m Model) settle(msg healthResultMsg) (tea.Model, tea.Cmd) {
	a := m.active
	if a == nil || a.id != msg.activationID || a.ctx.Err() != nil || m.state != StateLoading {
		slog.Debug("health result ignored", "activation", msg.activationID)
		return m, nil
	}

	switch {
	case msg.err != nil:
		m.state = StateError
		m.errMsg = pulsesdk.ErrorMessage(msg.err)
		slog.Warn("health check failed", "server", m.opts.ServerURL, "error", msg.err)
	case msg.health == nil:
		m.state = StateError
		m.errMsg = pulsesdk.UnknownErrorMessage
		slog.Warn("health check returned no body", "server", m.opts.ServerURL)
	default:
		m.state = StateSuccess
		m.health = msg.health
		slog.Info("health check ok", "server", m.opts.ServerURL, "environment", msg.health.Environment, "timestamp", msg.health.Timestamp)
	}

	if m.opts.ExitOnSettle {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) State() State {
	return m.state
}

// Health is the stored body, nil unless the state is StateSuccess.
func (m Model) Health() *health.Status {
	return m.health
}

// Err is the error text, empty unless the state is StateError.
func (m Model) Err() string {
	return m.errMsg
}
