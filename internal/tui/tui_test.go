package tui

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-jportal/internal/report"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/internal/service/mock"
	"github.com/MKhiriev/go-jportal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and, for a batch, every command in it.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func newPortalMock(t *testing.T) *mock.MockPortalService {
	t.Helper()
	portal := mock.NewMockPortalService(gomock.NewController(t))
	portal.EXPECT().Session().Return(nil).AnyTimes()
	return portal
}

func TestLoginModel_RequiresAllFields(t *testing.T) {
	m := NewLoginModel(context.Background(), newPortalMock(t), "21103001")
	assert.Equal(t, inputPassword, m.focus)

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Equal(t, "Username, password and captcha are required", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_Submit(t *testing.T) {
	portal := newPortalMock(t)
	m := NewLoginModel(context.Background(), portal, "21103001")

	m.Update(captchaLoadedMsg{captcha: models.Captcha{Hidden: "h-1", Image: "aW1n"}, imagePath: "/tmp/c.png"})
	m.inputs[inputPassword].SetValue("secret")
	m.inputs[inputCaptcha].SetValue(" ab12c ")

	session := &models.Session{Name: "ASHA SHARMA"}
	portal.EXPECT().
		StudentLogin(gomock.Any(), "21103001", "secret", models.Captcha{Answer: "ab12c", Hidden: "h-1", Image: "aW1n"}).
		Return(session, nil)

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Same(t, session, result.Session)

	m.Update(result)
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[inputPassword].Value())
	assert.Empty(t, m.inputs[inputCaptcha].Value())
}

func TestLoginModel_FailedLoginFetchesNewCaptcha(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	portal := newPortalMock(t)
	m := NewLoginModel(context.Background(), portal, "")

	image := []byte("\x89PNG fake")
	portal.EXPECT().GetCaptcha(gomock.Any()).Return(models.Captcha{
		Hidden: "h-2",
		Image:  base64.StdEncoding.EncodeToString(image),
	}, nil)

	_, cmd := m.Update(LoginResult{Err: service.ErrLogin})
	require.NotNil(t, cmd)
	assert.Equal(t, "Login failed: check username, password and captcha", m.errMsg)
	assert.True(t, m.loading)

	loaded, ok := cmd().(captchaLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, filepath.Join(os.TempDir(), captchaFileName), loaded.imagePath)

	written, err := os.ReadFile(loaded.imagePath)
	require.NoError(t, err)
	assert.Equal(t, image, written)

	m.Update(loaded)
	assert.False(t, m.loading)
	assert.Equal(t, "h-2", m.captcha.Hidden)
	assert.Contains(t, m.View(), loaded.imagePath)
}

func TestLoginModel_CaptchaError(t *testing.T) {
	m := NewLoginModel(context.Background(), newPortalMock(t), "")
	m.loading = true

	m.Update(captchaLoadedMsg{err: errors.New("dial tcp 127.0.0.1:1: connection refused")})
	assert.False(t, m.loading)
	assert.Equal(t, "Network is down or the portal is unreachable", m.errMsg)
}

func TestMenuModel_RunReport(t *testing.T) {
	portal := newPortalMock(t)
	m := NewMenuModel(context.Background(), portal)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	bank := m.items[4]
	require.Equal(t, "Bank details", bank.label)
	portal.EXPECT().GetStudentBankInfo(gomock.Any()).Return(map[string]any{"bankname": "SBI"}, nil)

	msg, ok := m.cmdRun(bank)().(reportMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	m.loading = true
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.False(t, m.loading)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageResult, nav.Page)
	assert.Equal(t, msg, nav.Payload)
}

func TestMenuModel_Errors(t *testing.T) {
	t.Run("session error returns to login", func(t *testing.T) {
		m := NewMenuModel(context.Background(), newPortalMock(t))

		_, cmd := m.Update(reportMsg{err: service.ErrSessionExpired})
		require.NotNil(t, cmd)

		nav := cmd().(NavigateTo)
		assert.Equal(t, pageLogin, nav.Page)
		assert.Equal(t, sessionNotice{text: "Session expired, please log in again"}, nav.Payload)
	})

	t.Run("other errors show an overlay", func(t *testing.T) {
		m := NewMenuModel(context.Background(), newPortalMock(t))

		_, cmd := m.Update(reportMsg{err: report.ErrNoData})
		assert.Nil(t, cmd)
		assert.True(t, m.showError)
		assert.Contains(t, m.View(), "portal returned no data")

		m.Update(escKey)
		assert.False(t, m.showError)
	})
}

func TestMenuModel_Logout(t *testing.T) {
	portal := newPortalMock(t)
	portal.EXPECT().Logout()

	m := NewMenuModel(context.Background(), portal)
	m.idx = len(m.items) - 1

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)

	nav := cmd().(NavigateTo)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, sessionNotice{text: "Logged out"}, nav.Payload)
	assert.Equal(t, 0, m.idx)
}

func TestResultModel(t *testing.T) {
	var copied string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	r := report.Report{
		Title:   "Bank details",
		Headers: []string{"Field", "Value"},
		Rows:    [][]string{{"bankname", "SBI"}},
		Raw:     map[string]any{"bankname": "SBI"},
	}

	m := NewResultModel()
	m.Update(reportMsg{report: r})
	assert.Equal(t, r.Table(), m.content)
	assert.Contains(t, m.View(), "Bank details")

	m.Update(runeKey("r"))
	assert.JSONEq(t, `{"bankname":"SBI"}`, m.content)

	_, cmd := m.Update(runeKey("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, copiedMsg{}, cmd())
	assert.JSONEq(t, `{"bankname":"SBI"}`, copied)

	m.Update(copiedMsg{})
	assert.Equal(t, "Copied!", m.status)

	_, cmd = m.Update(escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func TestRootModel(t *testing.T) {
	portal := newPortalMock(t)
	menu := NewMenuModel(context.Background(), portal)
	result := NewResultModel()
	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(context.Background(), portal, ""),
		pageMenu:   menu,
		pageResult: result,
	}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.2.3", "", ""))

	t.Run("build info window", func(t *testing.T) {
		updated, _ := root.Update(runeKey("v"))
		r := updated.(RootModel)
		assert.Contains(t, r.View(), "Version:     1.2.3")
		assert.Contains(t, r.View(), "Commit:      N/A")

		updated, _ = r.Update(escKey)
		assert.False(t, updated.(RootModel).showBuildInfo)
	})

	t.Run("navigation delivers payload", func(t *testing.T) {
		msg := reportMsg{report: report.Report{Title: "Session"}}

		updated, cmd := root.Update(NavigateTo{Page: pageResult, Payload: msg})
		r := updated.(RootModel)
		assert.Same(t, result, r.current)
		require.NotNil(t, cmd)
		assert.Equal(t, msg, cmd())

		updated, _ = r.Update(NavigateTo{Page: "missing"})
		assert.Same(t, result, updated.(RootModel).current)
	})

	t.Run("successful login opens the menu", func(t *testing.T) {
		r := NewRootModel(pages, pageLogin, models.AppBuildInfo{})
		_, cmd := r.Update(LoginResult{Session: &models.Session{}})
		require.NotNil(t, cmd)

		assert.Contains(t, collect(cmd), NavigateTo{Page: pageMenu})
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		updated, cmd := root.Update(ctrlC)
		assert.True(t, updated.(RootModel).quitByUser)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})
}
