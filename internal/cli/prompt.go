package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-jportal/models"
	"golang.org/x/term"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyInput       = errors.New("input cannot be empty")
)

// prompter asks the user for the values a login needs.
type prompter interface {
	// Line reads one line of visible input.
	Line(label string) (string, error)
	// Secret reads one line without echo when attached to a terminal.
	Secret(label string) (string, error)
	// Captcha asks for the text of the captcha whose image was written to
	// imagePath.
	Captcha(captcha models.Captcha, imagePath string) (string, error)
}

type terminalPrompter struct {
	in  io.Reader
	rd  *bufio.Reader
	out io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: in, rd: bufio.NewReader(in), out: out}
}

// terminalFd returns the descriptor of in when it is an interactive terminal.
func (p *terminalPrompter) terminalFd() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func (p *terminalPrompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.rd.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(strings.TrimSpace(label), ":"), err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrEmptyInput
	}
	return line, nil
}

func (p *terminalPrompter) Secret(label string) (string, error) {
	fd, ok := p.terminalFd()
	if !ok {
		// stdin is piped; read normally
		return p.Line(label)
	}

	fmt.Fprint(p.out, label)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(secret) == 0 {
		return "", ErrEmptyInput
	}
	return string(secret), nil
}

func (p *terminalPrompter) Captcha(_ models.Captcha, imagePath string) (string, error) {
	fmt.Fprintf(p.out, "Captcha image written to %s\n", imagePath)
	return p.Line("Captcha: ")
}

// newPassword asks for a new password twice.
func newPassword(p prompter) (string, error) {
	password, err := p.Secret("New password: ")
	if err != nil {
		return "", err
	}

	confirm, err := p.Secret("Confirm new password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return password, nil
}
