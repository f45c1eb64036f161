package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

// Prompter reads one line per prompt from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, text); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Warn prints the irreversible-operation banner shown before the confirmation steps.
func (p *Prompter) Warn(device string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, warnStyle.Render(fmt.Sprintf("WARNING: you are about to permanently erase %s", device)))
	fmt.Fprintln(p.out, "This cannot be undone. Back up your data before continuing.")
}
