package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-jportal/internal/client"
	"github.com/MKhiriev/go-jportal/internal/report"
	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/spf13/cobra"
)

const defaultCaptchaFile = "jportal-captcha.png"

// reports are the names accepted by login --show.
var reports = map[string]func(ctx context.Context, portal service.PortalService, semester string) (report.Report, error){
	"attendance": report.Attendance,
	"subjects":   report.Subjects,
	"exams":      report.ExamSchedule,
	"semesters": func(ctx context.Context, portal service.PortalService, _ string) (report.Report, error) {
		return report.Semesters(ctx, portal)
	},
	"bank": func(ctx context.Context, portal service.PortalService, _ string) (report.Report, error) {
		return report.BankInfo(ctx, portal)
	},
	"session": func(_ context.Context, portal service.PortalService, _ string) (report.Report, error) {
		return report.SessionInfo(portal)
	},
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Long: `Start the interactive terminal UI. Logs go to --log-file (default
jportal.log next to the executable) so they do not corrupt the screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := client.NewApp(a.cfg, a.buildInfo, a.logger)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}

func (a *app) loginCmd() *cobra.Command {
	var (
		show        []string
		semester    string
		captchaFile string
		raw         bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print portal reports",
		Long: `Log in with the two-step captcha login and print the selected reports.

The username comes from -u, CREDENTIALS_USERNAME or a prompt; the password
from CREDENTIALS_PASSWORD or a hidden prompt. The captcha image is written to
--captcha-file for you to read.

Reports: attendance, subjects, semesters, exams, bank, session.

Examples:
  jportal login -u 21103001
  jportal login --show attendance,subjects --semester 2026EVESEM
  jportal login --show bank --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range show {
				if _, ok := reports[name]; !ok {
					return fmt.Errorf("unknown report %q", name)
				}
			}

			portal, err := a.portal()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err = a.login(ctx, portal, captchaFile); err != nil {
				return err
			}

			for _, name := range show {
				r, err := reports[name](ctx, portal, semester)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err = printReport(cmd.OutOrStdout(), r, raw); err != nil {
					return err
				}
			}

			if interactive {
				return client.NewAppWithPortal(portal, a.cfg.Credentials.Username, a.buildInfo, a.logger).Run(ctx)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&show, "show", []string{"session", "attendance"}, "Reports to print after login")
	cmd.Flags().StringVar(&semester, "semester", "", "Registration code of the semester to report on (default latest)")
	cmd.Flags().StringVar(&captchaFile, "captcha-file", "", "Where to write the captcha image (default in the temp dir)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw portal JSON instead of tables")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Continue in the terminal UI after login")

	return cmd
}

func (a *app) passwdCmd() *cobra.Command {
	var captchaFile string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the portal password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			portal, err := a.portal()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err = a.login(ctx, portal, captchaFile); err != nil {
				return err
			}

			password, err := newPassword(a.prompter)
			if err != nil {
				return err
			}

			if err = portal.SetPassword(ctx, a.cfg.Credentials.Password, password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}
	cmd.Flags().StringVar(&captchaFile, "captcha-file", "", "Where to write the captcha image (default in the temp dir)")

	return cmd
}

func (a *app) captchaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "captcha",
		Short: "Fetch a login captcha and save its image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			portal, err := a.portal()
			if err != nil {
				return err
			}

			captcha, err := portal.GetCaptcha(cmd.Context())
			if err != nil {
				return err
			}
			if err = writeCaptcha(captcha, output); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "hidden: %s\nimage:  %s\n", captcha.Hidden, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", defaultCaptchaFile, "Image output path")

	return cmd
}

// login fills in missing credentials from the prompter, solves a captcha and
// logs portal in. The resolved credentials are kept in a.cfg.
func (a *app) login(ctx context.Context, portal service.PortalService, captchaFile string) error {
	var err error

	creds := &a.cfg.Credentials
	if creds.Username == "" {
		if creds.Username, err = a.prompter.Line("Username: "); err != nil {
			return err
		}
	}
	if creds.Password == "" {
		if creds.Password, err = a.prompter.Secret("Password: "); err != nil {
			return err
		}
	}

	captcha, err := portal.GetCaptcha(ctx)
	if err != nil {
		return err
	}

	if captchaFile == "" {
		captchaFile = filepath.Join(os.TempDir(), defaultCaptchaFile)
	}
	if err = writeCaptcha(captcha, captchaFile); err != nil {
		return err
	}

	answer, err := a.prompter.Captcha(captcha, captchaFile)
	if err != nil {
		return err
	}
	captcha.Answer = strings.TrimSpace(answer)

	session, err := portal.StudentLogin(ctx, creds.Username, creds.Password, captcha)
	if err != nil {
		return err
	}

	a.logger.Debug().Str("user_id", session.UserID).Msg("logged in")
	return nil
}

func writeCaptcha(captcha models.Captcha, path string) error {
	img, err := captcha.ImageBytes()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, img, 0o600); err != nil {
		return fmt.Errorf("write captcha image: %w", err)
	}
	return nil
}

func printReport(w io.Writer, r report.Report, raw bool) error {
	if raw {
		out, err := r.RawJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	_, err := fmt.Fprintf(w, "%s\n\n", r)
	return err
}
