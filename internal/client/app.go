package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-jportal/internal/adapter"
	"github.com/MKhiriev/go-jportal/internal/config"
	"github.com/MKhiriev/go-jportal/internal/crypto"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/internal/tui"
	"github.com/MKhiriev/go-jportal/models"
)

// NewPortalService builds a [service.PortalService] talking to the portal
// described by portalCfg. The envelope follows the portal's IST calendar.
func NewPortalService(portalCfg config.Portal, log *logger.Logger) (service.PortalService, error) {
	portalAdapter, err := adapter.NewHTTPPortalAdapter(portalCfg, log)
	if err != nil {
		return nil, fmt.Errorf("create portal adapter: %w", err)
	}

	return service.NewPortalService(portalAdapter, crypto.NewEnvelope(nil), log), nil
}

// App is the interactive terminal client.
type App struct {
	portal service.PortalService
	ui     *tui.TUI

	logger *logger.Logger
}

// NewApp constructs the interactive client for cfg.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	portal, err := NewPortalService(cfg.Portal, log)
	if err != nil {
		return nil, err
	}

	return NewAppWithPortal(portal, cfg.Credentials.Username, buildInfo, log), nil
}

// NewAppWithPortal constructs the interactive client on top of an existing
// portal service, e.g. one that is already logged in.
func NewAppWithPortal(portal service.PortalService, username string, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	return &App{
		portal: portal,
		ui:     tui.New(portal, buildInfo, username, log),
		logger: log,
	}
}

// Run implements [Client]. Quitting the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("starting terminal ui")

	err := a.ui.Run(ctx)
	a.portal.Logout()

	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
