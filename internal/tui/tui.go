// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end: captcha login, a menu of
// portal reports and a scrollable result view with clipboard copy.
package tui

import (
	"context"

	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the Bubble Tea program on top of a [service.PortalService].
type TUI struct {
	portal    service.PortalService
	buildInfo models.AppBuildInfo
	username  string

	logger *logger.Logger
}

// New constructs a [TUI]. username pre-fills the login form.
func New(portal service.PortalService, buildInfo models.AppBuildInfo, username string, logger *logger.Logger) *TUI {
	return &TUI{
		portal:    portal,
		buildInfo: buildInfo,
		username:  username,
		logger:    logger,
	}
}

// Run blocks until the user quits. Quitting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(ctx, t.portal, t.username),
		pageMenu:   NewMenuModel(ctx, t.portal),
		pageResult: NewResultModel(),
	}

	start := pageLogin
	if t.portal.State() == service.StateAuthenticated {
		start = pageMenu
	}

	root := NewRootModel(pages, start, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Debug().Str("state", t.portal.State().String()).Msg("tui closed")
	return nil
}
