package tui

import (
	"errors"

	bubbleKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/tams-go/internal/application/widgets"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/session"
	"github.com/doeshing/tams-go/internal/view"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case probeMsg:
		m.health = session.HealthFromProbe(msg.out)

	case authResultMsg:
		m.apply(msg.event)

	case widgetResultMsg:
		if msg.generation != m.generation {
			// Result from a session that has since logged out.
			return m, nil
		}
		m.notice = msg.notice
		if f, ok := m.forms[msg.widget]; ok {
			f.reload()
		}

	case tea.KeyMsg:
		if bubbleKey.Matches(msg, m.keymap.quit) {
			return m, tea.Quit
		}
		if _, ok := m.anonymous(); ok {
			return m.updateAuth(msg)
		}
		return m.updateDashboard(msg)
	}

	return m, nil
}

// apply feeds an event to the session and keeps the screen in step with the new state.
func (m *model) apply(e session.Event) {
	_, wasAuthed := session.Identity(m.state)
	m.state = session.Reduce(m.state, e)
	_, isAuthed := session.Identity(m.state)

	switch {
	case !wasAuthed && isAuthed:
		m.enterDashboard()
	case wasAuthed && !isAuthed:
		m.leaveDashboard()
	default:
		m.syncAuthInputs()
	}
}

func (m *model) syncAuthInputs() {
	a, ok := m.anonymous()
	if !ok {
		return
	}
	if m.authInputs[fieldUsername].Value() != a.Draft.Username {
		m.authInputs[fieldUsername].SetValue(a.Draft.Username)
	}
	if m.authInputs[fieldPassword].Value() != a.Draft.Password {
		m.authInputs[fieldPassword].SetValue(a.Draft.Password)
	}
}

func (m *model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case bubbleKey.Matches(msg, m.keymap.submit):
		next, started := session.BeginSubmit(m.state)
		m.state = next
		if !started {
			return m, nil
		}
		anon := next.(session.Anonymous)
		ctx, gw := m.ctx, m.deps.Gateway
		return m, func() tea.Msg {
			return authResultMsg{event: session.Submit(ctx, gw, anon)}
		}

	case bubbleKey.Matches(msg, m.keymap.toggleMode):
		m.apply(session.ToggleMode{})
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.cycleRole):
		a, _ := m.anonymous()
		if a.Mode != domain.ModeRegister {
			return m, nil
		}
		role := domain.RoleDoctor
		if a.Draft.Role == domain.RoleDoctor {
			role = domain.RolePatient
		}
		m.apply(session.SelectRole{Role: role})
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.next):
		m.focusAuth(m.authFocus + 1)
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.prev):
		m.focusAuth(m.authFocus - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	if m.authFocus == fieldUsername {
		m.state = session.Reduce(m.state, session.EditUsername{Value: m.authInputs[fieldUsername].Value()})
	} else {
		m.state = session.Reduce(m.state, session.EditPassword{Value: m.authInputs[fieldPassword].Value()})
	}
	return m, cmd
}

func (m *model) focusAuth(i int) {
	n := len(m.authInputs)
	m.authFocus = ((i % n) + n) % n
	for idx := range m.authInputs {
		if idx == m.authFocus {
			m.authInputs[idx].Focus()
		} else {
			m.authInputs[idx].Blur()
		}
	}
}

func (m *model) enterDashboard() {
	m.notice = domain.Notice{}
	m.active = 0
	m.forms = newForms(m.deps.NewWidgets())
	if kind, err := view.Dispatch(m.state); err == nil {
		if f := m.activeForm(kind); f != nil {
			f.setFocus(0)
		}
	}
}

func (m *model) leaveDashboard() {
	m.generation++
	m.forms = nil
	m.notice = domain.Notice{}
	m.resetAuthInputs()
}

func (m *model) activeForm(kind view.Kind) *form {
	available := view.Widgets(kind)
	if len(available) == 0 || m.forms == nil {
		return nil
	}
	return m.forms[available[m.active%len(available)]]
}

func (m *model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if bubbleKey.Matches(msg, m.keymap.logout) {
		m.apply(session.Logout{})
		return m, nil
	}

	kind, err := view.Dispatch(m.state)
	if err != nil {
		return m, nil
	}
	f := m.activeForm(kind)
	if f == nil {
		return m, nil
	}
	available := view.Widgets(kind)

	switch {
	case bubbleKey.Matches(msg, m.keymap.nextWidget):
		m.active = (m.active + 1) % len(available)
		m.notice = domain.Notice{}
		m.activeForm(kind).setFocus(0)
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.prevWidget):
		m.active = (m.active - 1 + len(available)) % len(available)
		m.notice = domain.Notice{}
		m.activeForm(kind).setFocus(0)
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.next):
		f.setFocus(f.focus + 1)
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.prev):
		f.setFocus(f.focus - 1)
		return m, nil

	case bubbleKey.Matches(msg, m.keymap.submit):
		return m, m.submitWidget(f)
	}

	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return m, cmd
}

func (m *model) submitWidget(f *form) tea.Cmd {
	if f.target.Busy() {
		return nil
	}
	id, err := view.Require(m.state, f.widget)
	if err != nil {
		m.notice = domain.Notice{Text: err.Error()}
		return nil
	}

	f.store(f.values())
	sub, err := f.target.Prepare(id)
	if err != nil {
		if !errors.Is(err, widgets.ErrInFlight) {
			m.notice = domain.Notice{Text: err.Error()}
		}
		return nil
	}

	m.notice = domain.Notice{}
	ctx, gen, name := m.ctx, m.generation, f.widget
	return func() tea.Msg {
		return widgetResultMsg{generation: gen, widget: name, notice: sub.Send(ctx)}
	}
}
