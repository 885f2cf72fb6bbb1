package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/session"
	"github.com/doeshing/tams-go/internal/view"
)

var (
	accentColor   = lipgloss.Color("39")
	okColor       = lipgloss.Color("42")
	errColor      = lipgloss.Color("196")
	mutedColor    = lipgloss.Color("245")
	borderColor   = lipgloss.Color("#444")
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle    = lipgloss.NewStyle().Width(18).Foreground(mutedColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	okStyle       = lipgloss.NewStyle().Foreground(okColor)
	errStyle      = lipgloss.NewStyle().Foreground(errColor)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Background(accentColor).Foreground(lipgloss.Color("0"))
	disabledStyle = lipgloss.NewStyle().Padding(0, 2).Background(mutedColor).Foreground(lipgloss.Color("0"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1)
	activeTab     = tabStyle.Bold(true).Underline(true).Foreground(accentColor)
	panelStyle    = lipgloss.NewStyle().Padding(1, 2)
)

func (m *model) View() string {
	views := []string{m.renderHeader()}

	if a, ok := m.anonymous(); ok {
		views = append(views, m.renderAuth(a))
	} else {
		views = append(views, m.renderDashboard())
	}
	views = append(views, m.renderHelp())

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

func (m *model) renderHeader() string {
	badge := mutedStyle.Render("● " + m.health.String())
	switch m.health {
	case domain.HealthHealthy:
		badge = okStyle.Render("● " + m.health.String())
	case domain.HealthUnhealthy:
		badge = errStyle.Render("● " + m.health.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("TAMS Telehealth"), "  ", badge, "  ", mutedStyle.Render(m.deps.BaseURL)) + "\n"
}

func (m *model) renderAuth(a session.Anonymous) string {
	var b strings.Builder

	heading := "Sign in"
	button := "Login"
	if a.Mode == domain.ModeRegister {
		heading = "Create account"
		button = "Register"
	}
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	b.WriteString(labelStyle.Render("Username") + m.authInputs[fieldUsername].View() + "\n")
	b.WriteString(labelStyle.Render("Password") + m.authInputs[fieldPassword].View() + "\n")
	if a.Mode == domain.ModeRegister {
		b.WriteString(labelStyle.Render("Role") + renderRole(a.Draft.Role) + "\n")
	}
	b.WriteString("\n")

	if a.Pending {
		b.WriteString(disabledStyle.Render(m.spinner.View()+" "+button) + "\n")
	} else {
		b.WriteString(buttonStyle.Render(button) + "\n")
	}
	if line := renderNotice(a.Message); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	return b.String()
}

func renderRole(selected domain.Role) string {
	opts := []domain.Role{domain.RolePatient, domain.RoleDoctor}
	parts := make([]string, 0, len(opts))
	for _, r := range opts {
		if r == selected {
			parts = append(parts, activeTab.Render(string(r)))
		} else {
			parts = append(parts, tabStyle.Render(string(r)))
		}
	}
	return strings.Join(parts, "")
}

func (m *model) renderDashboard() string {
	id, _ := session.Identity(m.state)
	kind, err := view.Dispatch(m.state)
	if err != nil {
		return errStyle.Render(fmt.Sprintf("Cannot open a dashboard: %v", err)) + "\n" +
			mutedStyle.Render("Press ctrl+l to sign out.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(kind.String()[:1])+kind.String()[1:]) + "  " +
		mutedStyle.Render("signed in as "+id.DisplayName()) + "\n\n")

	available := view.Widgets(kind)
	tabs := make([]string, 0, len(available))
	for i, w := range available {
		if i == m.active%len(available) {
			tabs = append(tabs, activeTab.Render(m.forms[w].title))
		} else {
			tabs = append(tabs, tabStyle.Render(m.forms[w].title))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(borderColor).Render(strings.Repeat("─", 48)) + "\n\n")

	f := m.activeForm(kind)
	for i, field := range f.fields {
		b.WriteString(labelStyle.Render(field.Placeholder) + f.fields[i].View() + "\n")
	}
	b.WriteString("\n")

	busy := f.target.Busy()
	if busy {
		b.WriteString(disabledStyle.Render(m.spinner.View()+" Sending") + "\n")
	} else {
		b.WriteString(buttonStyle.Render("Submit") + "\n")
	}
	if line := renderNotice(m.notice); line != "" {
		b.WriteString("\n" + line + "\n")
	}
	if f.results != nil && !busy {
		b.WriteString(renderSpecialists(f.results()))
	}
	return b.String()
}

func renderSpecialists(results []domain.Specialist) string {
	if len(results) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, s := range results {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			lipgloss.NewStyle().Bold(true).Render(s.Name),
			s.Specialty,
			mutedStyle.Render(s.Location)))
	}
	return b.String()
}

func renderNotice(n domain.Notice) string {
	if n.Empty() {
		return ""
	}
	if n.Success {
		return okStyle.Render("✓ " + n.Text)
	}
	return errStyle.Render("✗ " + n.Text)
}

func (m *model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(mutedColor).BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(borderColor)
	if _, ok := m.anonymous(); ok {
		return style.Render("enter submit • tab next field • ctrl+t login/register • ctrl+r role • esc quit")
	}
	return style.Render("enter submit • tab next field • ←/→ widget • ctrl+l logout • esc quit")
}
