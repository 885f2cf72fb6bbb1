// Package tui is the interactive terminal client: a health badge, the sign-in form
// and the role dashboards, driven by bubbletea's single event loop.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
	"github.com/doeshing/tams-go/internal/session"
	"github.com/doeshing/tams-go/internal/view"
)

// Deps are the collaborators the interactive client needs.
type Deps struct {
	Gateway    ports.Gateway
	NewWidgets func() app.Widgets
	BaseURL    string
}

type probeMsg struct {
	out domain.Outcome[domain.HealthStatus]
}

type authResultMsg struct {
	event session.Event
}

type widgetResultMsg struct {
	generation int
	widget     view.Widget
	notice     domain.Notice
}

const (
	fieldUsername = iota
	fieldPassword
)

type model struct {
	ctx    context.Context
	deps   Deps
	keymap keymap

	health domain.BackendHealth
	state  session.State

	// auth screen
	authInputs []textinput.Model
	authFocus  int

	// dashboard
	generation int
	forms      map[view.Widget]*form
	active     int
	notice     domain.Notice

	spinner spinner.Model
	width   int
}

type keymap = struct {
	quit,
	submit,
	next,
	prev,
	toggleMode,
	cycleRole,
	nextWidget,
	prevWidget,
	logout bubbleKey.Binding
}

func newKeymap() keymap {
	return keymap{
		quit:       bubbleKey.NewBinding(bubbleKey.WithKeys("ctrl+c", "esc"), bubbleKey.WithHelp("esc", "quit")),
		submit:     bubbleKey.NewBinding(bubbleKey.WithKeys("enter"), bubbleKey.WithHelp("enter", "submit")),
		next:       bubbleKey.NewBinding(bubbleKey.WithKeys("tab", "down"), bubbleKey.WithHelp("tab", "next field")),
		prev:       bubbleKey.NewBinding(bubbleKey.WithKeys("shift+tab", "up"), bubbleKey.WithHelp("shift+tab", "previous field")),
		toggleMode: bubbleKey.NewBinding(bubbleKey.WithKeys("ctrl+t"), bubbleKey.WithHelp("ctrl+t", "login/register")),
		cycleRole:  bubbleKey.NewBinding(bubbleKey.WithKeys("ctrl+r"), bubbleKey.WithHelp("ctrl+r", "role")),
		nextWidget: bubbleKey.NewBinding(bubbleKey.WithKeys("right", "ctrl+n"), bubbleKey.WithHelp("→", "next widget")),
		prevWidget: bubbleKey.NewBinding(bubbleKey.WithKeys("left", "ctrl+p"), bubbleKey.WithHelp("←", "previous widget")),
		logout:     bubbleKey.NewBinding(bubbleKey.WithKeys("ctrl+l"), bubbleKey.WithHelp("ctrl+l", "logout")),
	}
}

func initialModel(ctx context.Context, deps Deps) *model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := &model{
		ctx:     ctx,
		deps:    deps,
		keymap:  newKeymap(),
		health:  domain.HealthUnknown,
		state:   session.Initial(),
		spinner: s,
	}
	m.resetAuthInputs()
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.probe(), m.spinner.Tick)
}

// probe runs the startup health check without blocking rendering.
func (m *model) probe() tea.Cmd {
	ctx, gw := m.ctx, m.deps.Gateway
	return func() tea.Msg {
		return probeMsg{out: gw.ProbeHealth(ctx)}
	}
}

func (m *model) resetAuthInputs() {
	user := newInput("username", false)
	pass := newInput("password", true)
	m.authInputs = []textinput.Model{user, pass}
	m.authFocus = fieldUsername
	m.authInputs[fieldUsername].Focus()
}

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func (m *model) anonymous() (session.Anonymous, bool) {
	a, ok := m.state.(session.Anonymous)
	return a, ok
}
