// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const captchaFileName = "jportal-captcha.png"

const (
	inputUsername = iota
	inputPassword
	inputCaptcha
)

// LoginModel is the Bubble Tea model for the login screen. It fetches a
// captcha, writes its image to a temporary file for the user to open, and
// dispatches the two-step login on submit. On success a [LoginResult] is
// produced and [RootModel] switches to the menu.
type LoginModel struct {
	ctx    context.Context
	portal service.PortalService

	inputs     []textinput.Model
	focus      int
	submitting bool
	loading    bool

	captcha     models.Captcha
	captchaPath string

	errMsg string
	status string
}

// NewLoginModel creates a [LoginModel] with username, password and captcha
// inputs. The username field is pre-filled with username.
func NewLoginModel(ctx context.Context, portal service.PortalService, username string) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "enrollment number"
	usernameInput.CharLimit = 32
	usernameInput.Width = 40
	usernameInput.SetValue(username)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	captchaInput := textinput.New()
	captchaInput.Placeholder = "captcha"
	captchaInput.CharLimit = 16
	captchaInput.Width = 40

	m := &LoginModel{
		ctx:    ctx,
		portal: portal,
		inputs: []textinput.Model{usernameInput, passwordInput, captchaInput},
	}
	if username != "" {
		m.focus = inputPassword
	}
	m.inputs[m.focus].Focus()

	return m
}

// Init implements [tea.Model]. Starts the cursor blink and fetches a captcha.
func (m *LoginModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(textinput.Blink, m.cmdFetchCaptcha())
}

// Update implements [tea.Model]. Handled messages:
//   - [captchaLoadedMsg]: stores the captcha and the image path.
//   - [LoginResult]: on error shows it and fetches a new captcha, since a
//     captcha is valid for one attempt only.
//   - [sessionNotice]: shows the notice and starts over with a new captcha.
//   - ctrl+r: fetches a new captcha.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: validates the form and dispatches the login.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case captchaLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.captcha = msg.captcha
		m.captchaPath = msg.imagePath
		return m, nil

	case LoginResult:
		m.submitting = false
		m.inputs[inputCaptcha].SetValue("")
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			m.loading = true
			return m, m.cmdFetchCaptcha()
		}
		m.errMsg = ""
		m.status = ""
		m.inputs[inputPassword].SetValue("")
		return m, nil

	case sessionNotice:
		m.status = msg.text
		m.errMsg = ""
		m.inputs[inputPassword].SetValue("")
		m.inputs[inputCaptcha].SetValue("")
		m.loading = true
		return m, m.cmdFetchCaptcha()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			if m.loading || m.submitting {
				return m, nil
			}
			m.loading = true
			return m, m.cmdFetchCaptcha()
		case key.Matches(msg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting || m.loading {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[inputUsername].Value())
			password := m.inputs[inputPassword].Value()
			answer := strings.TrimSpace(m.inputs[inputCaptcha].Value())
			if username == "" || password == "" || answer == "" {
				m.errMsg = "Username, password and captcha are required"
				return m, nil
			}
			if m.captcha.Hidden == "" {
				m.errMsg = "No captcha loaded, press ctrl+r"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			captcha := m.captcha
			captcha.Answer = answer
			return m, m.cmdLogin(username, password, captcha)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[inputUsername].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[inputPassword].View())
	b.WriteString("]\n")
	b.WriteString("Captcha  │ [")
	b.WriteString(m.inputs[inputCaptcha].View())
	b.WriteString("]\n")

	switch {
	case m.loading:
		b.WriteString("\nLoading captcha...\n")
	case m.captchaPath != "":
		b.WriteString("\nCaptcha image: ")
		b.WriteString(m.captchaPath)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ ctrl+r: new captcha │ enter: submit")
}

func (m *LoginModel) cmdFetchCaptcha() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		captcha, err := portal.GetCaptcha(ctx)
		if err != nil {
			return captchaLoadedMsg{err: err}
		}

		path := filepath.Join(os.TempDir(), captchaFileName)
		if err = writeCaptchaImage(captcha, path); err != nil {
			return captchaLoadedMsg{err: err}
		}
		return captchaLoadedMsg{captcha: captcha, imagePath: path}
	}
}

func (m *LoginModel) cmdLogin(username, password string, captcha models.Captcha) tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		session, err := portal.StudentLogin(ctx, username, password, captcha)
		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func writeCaptchaImage(captcha models.Captcha, path string) error {
	img, err := captcha.ImageBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, img, 0o600)
}
