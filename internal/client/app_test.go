package client

import (
	"testing"

	"github.com/MKhiriev/go-jportal/internal/config"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPortalService(t *testing.T) {
	portal, err := NewPortalService(config.Portal{BaseURL: "webportal.jiit.ac.in:6011/StudentPortalAPI"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, service.StateAnonymous, portal.State())

	_, err = NewPortalService(config.Portal{BaseURL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNewApp(t *testing.T) {
	cfg := config.Defaults()
	cfg.Credentials.Username = "21103001"

	app, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.ui)

	var _ Client = app
}
