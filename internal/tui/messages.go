package tui

import (
	"github.com/MKhiriev/go-jportal/internal/report"
	"github.com/MKhiriev/go-jportal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Session *models.Session
	Err     error
}

// sessionNotice reopens the login page with a status line.
type sessionNotice struct {
	text string
}

type captchaLoadedMsg struct {
	captcha   models.Captcha
	imagePath string
	err       error
}

type reportMsg struct {
	report report.Report
	err    error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
