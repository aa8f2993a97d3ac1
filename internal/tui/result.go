package tui

import (
	"time"

	"github.com/MKhiriev/go-jportal/internal/report"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultViewportWidth  = 100
	defaultViewportHeight = 20
	// chrome is the number of lines renderPage and appStyle add around the viewport.
	chrome = 10
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// ResultModel shows one report in a scrollable viewport. r toggles the raw
// JSON, c copies what is shown.
type ResultModel struct {
	report  report.Report
	raw     bool
	content string

	viewport viewport.Model
	status   string
}

// NewResultModel creates an empty result page.
func NewResultModel() *ResultModel {
	return &ResultModel{viewport: viewport.New(defaultViewportWidth, defaultViewportHeight)}
}

func (m *ResultModel) Init() tea.Cmd {
	return nil
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.report = msg.report
		m.raw = false
		m.status = ""
		m.render()
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 3)
		return m, nil

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.raw):
			m.raw = !m.raw
			m.render()
			return m, nil
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.content)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ResultModel) View() string {
	body := m.viewport.View()
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage(m.report.Title, body, "esc: back │ ↑/↓: scroll │ r: raw json │ c: copy")
}

func (m *ResultModel) render() {
	m.content = m.report.Table()
	if m.raw {
		raw, err := m.report.RawJSON()
		if err != nil {
			raw = err.Error()
		}
		m.content = raw
	}

	m.viewport.SetContent(m.content)
	m.viewport.GotoTop()
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
