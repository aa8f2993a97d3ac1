package cli

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-jportal/internal/crypto"
	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/spf13/cobra"
)

const dateLayout = time.DateOnly

// dateFlag is a portal calendar date; the zero value means today.
type dateFlag struct {
	t time.Time
}

func (d *dateFlag) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateFlag) Set(s string) error {
	t, err := time.ParseInLocation(dateLayout, s, utils.PortalZone)
	if err != nil {
		return fmt.Errorf("date must look like %s: %w", dateLayout, err)
	}
	d.t = t
	return nil
}

func (d *dateFlag) Type() string {
	return "date"
}

// clock returns the fixed date, or nil for the live portal clock.
func (d *dateFlag) clock() func() time.Time {
	if d.t.IsZero() {
		return nil
	}
	t := d.t
	return func() time.Time { return t }
}

func (d *dateFlag) now() time.Time {
	if d.t.IsZero() {
		return utils.PortalNow()
	}
	return d.t
}

func (a *app) seedCmd() *cobra.Command {
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the date seed, payload key and a LocalName header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := date.now()

			localName, err := crypto.NewEnvelope(date.clock()).LocalName()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "date:      %s\n", now.Format(dateLayout))
			fmt.Fprintf(out, "seed:      %s\n", crypto.DateSeed(now))
			fmt.Fprintf(out, "key:       %s\n", crypto.GenerateKey(now))
			fmt.Fprintf(out, "localname: %s\n", localName)
			return nil
		},
	}
	cmd.Flags().Var(&date, "date", "Portal date YYYY-MM-DD (default today in IST)")

	return cmd
}

func (a *app) encodeCmd() *cobra.Command {
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "encode [json]",
		Short: "Encrypt a JSON payload the way login bodies are sent",
		Long: `Encrypt a JSON payload the way login bodies are sent. The payload is
read from the argument or, without one, from stdin.

Example:
  jportal encode '{"username":"21103001","usertype":"S"}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}

			dec := json.NewDecoder(strings.NewReader(input))
			dec.UseNumber()
			var payload any
			if err = dec.Decode(&payload); err != nil {
				return fmt.Errorf("payload is not JSON: %w", err)
			}

			sealed, err := crypto.NewEnvelope(date.clock()).SerializePayload(payload)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sealed)
			return nil
		},
	}
	cmd.Flags().Var(&date, "date", "Portal date YYYY-MM-DD whose key to use (default today in IST)")

	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "decode [payload]",
		Short: "Decrypt a captured payload or LocalName header",
		Long: `Decrypt a captured base64 payload. JSON payloads are pretty-printed;
anything else, such as a LocalName header, is printed as text. The payload
is read from the argument or, without one, from stdin.

Example:
  jportal decode --date 2026-02-16 'q3x0...=='`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}

			envelope := crypto.NewEnvelope(date.clock())

			var payload any
			if err = envelope.DeserializeInto(input, &payload); err == nil {
				pretty, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
				return nil
			}

			// not JSON: fall back to the plain decrypted text
			plain, plainErr := decryptText(envelope, input)
			if plainErr != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		},
	}
	cmd.Flags().Var(&date, "date", "Portal date YYYY-MM-DD whose key to use (default today in IST)")

	return cmd
}

func decryptText(envelope crypto.Envelope, input string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", crypto.ErrDecrypt, err)
	}
	plain, err := envelope.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	input := string(bytes.TrimSpace(raw))
	if input == "" {
		return "", ErrEmptyInput
	}
	return input, nil
}
