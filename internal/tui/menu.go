package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-jportal/internal/report"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label string
	// run builds the report; nil marks the logout entry.
	run func(ctx context.Context, portal service.PortalService) (report.Report, error)
}

// MenuModel lists the portal reports. Selecting one fetches it in the
// background and opens the result page.
type MenuModel struct {
	ctx    context.Context
	portal service.PortalService

	items   []menuItem
	idx     int
	loading bool
	spinner spinner.Model

	showError    bool
	errorOverlay errorOverlayModel
}

// NewMenuModel creates the main menu.
func NewMenuModel(ctx context.Context, portal service.PortalService) *MenuModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	latest := func(build func(context.Context, service.PortalService, string) (report.Report, error)) func(context.Context, service.PortalService) (report.Report, error) {
		return func(ctx context.Context, portal service.PortalService) (report.Report, error) {
			return build(ctx, portal, "")
		}
	}

	return &MenuModel{
		ctx:     ctx,
		portal:  portal,
		spinner: s,
		items: []menuItem{
			{label: "Attendance", run: latest(report.Attendance)},
			{label: "Registered subjects", run: latest(report.Subjects)},
			{label: "Registered semesters", run: report.Semesters},
			{label: "Exam schedule", run: latest(report.ExamSchedule)},
			{label: "Bank details", run: report.BankInfo},
			{label: "Session", run: func(_ context.Context, portal service.PortalService) (report.Report, error) {
				return report.SessionInfo(portal)
			}},
			{label: "Log out"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSession) {
				return m, navigate(pageLogin, sessionNotice{text: humanizeError(msg.err)})
			}
			m.showError = true
			m.errorOverlay.message = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageResult, msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.logout):
			return m, m.logout()
		case key.Matches(msg, keys.enter):
			item := m.items[m.idx]
			if item.run == nil {
				return m, m.logout()
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdRun(item))
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	if session := m.portal.Session(); session != nil {
		b.WriteString(fitText(session.Name+" │ "+session.Institute, 60))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label))
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	}

	body := renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ l: log out │ v: version")
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	return body
}

func (m *MenuModel) cmdRun(item menuItem) tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		r, err := item.run(ctx, portal)
		return reportMsg{report: r, err: err}
	}
}

func (m *MenuModel) logout() tea.Cmd {
	m.portal.Logout()
	m.idx = 0
	return navigate(pageLogin, sessionNotice{text: "Logged out"})
}
