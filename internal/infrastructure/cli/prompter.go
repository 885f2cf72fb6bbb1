package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/doeshing/tams-go/internal/ports"
)

// ErrNoInput is returned when a prompt hits end of input.
var ErrNoInput = errors.New("no input available")

// Prompter implements ports.CredentialPrompter using stdin/stdout.
type Prompter struct {
	in    *bufio.Reader
	inFd  uintptr
	isTTY bool
	out   io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Prompter{
		in:    bufio.NewReader(in),
		inFd:  in.Fd(),
		isTTY: isatty.IsTerminal(in.Fd()),
		out:   out,
	}
}

// newReaderPrompter reads from r with echo (tests, pipes).
func newReaderPrompter(r io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: out}
}

// Ask reads one line.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// Secret reads one line without echo when stdin is a terminal.
func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.isTTY {
		return p.readLine()
	}
	raw, err := term.ReadPassword(int(p.inFd))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var _ ports.CredentialPrompter = (*Prompter)(nil)
