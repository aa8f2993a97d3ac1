// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the jportal command line: the interactive terminal
// UI, a line-oriented login, password change, captcha download and the
// payload tooling (seed, encode, decode).
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-jportal/internal/client"
	"github.com/MKhiriev/go-jportal/internal/config"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/spf13/cobra"
)

const appName = "jportal"

// app holds what every subcommand shares: the parsed flags, the merged
// configuration and the logger, both set up before the subcommand runs.
type app struct {
	flags     config.Flags
	buildInfo models.AppBuildInfo
	prompter  prompter

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

// Execute runs the command line and returns the process exit code.
func Execute(buildInfo models.AppBuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{buildInfo: buildInfo}
	root := a.rootCmd()
	root.SetContext(ctx)

	if err := root.ExecuteContext(ctx); err != nil {
		log := a.logger
		if log == nil {
			log = logger.NewLogger(appName)
		}
		log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

// NewRootCmd builds the jportal command tree.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	a := &app{buildInfo: buildInfo}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "JIIT student portal client",
		Long: `jportal talks to the JIIT student web portal: it solves the two-step
captcha login, keeps the session token and fetches attendance, registered
subjects, exam schedules and bank details.

Configuration is read from defaults, a .env file, PORTAL_*/CREDENTIALS_*/LOG_*
environment variables, the flags below and finally a JSON file (-c), later
sources overriding earlier ones.`,
		Version:           a.buildInfo.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	a.flags.Register(root.PersistentFlags())

	root.AddCommand(
		a.tuiCmd(),
		a.loginCmd(),
		a.passwdCmd(),
		a.captchaCmd(),
		a.seedCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
	)

	return root
}

// setup loads the configuration and the logger. The terminal UI logs to a
// file so the screen stays intact; every other command logs to stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(&a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cmd.Name() == "tui" {
		a.logger = logger.NewClientLogger(appName, cfg.Log.File)
	} else {
		a.logger = logger.NewLogger(appName)
	}
	if err = a.logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	if a.prompter == nil {
		a.prompter = newTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("base_url", cfg.Portal.BaseURL).
		Msg("configuration loaded")
	return nil
}

func (a *app) portal() (service.PortalService, error) {
	return client.NewPortalService(a.cfg.Portal, a.logger)
}
