package system

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"wiper/internal/domain/model"
)

var execCommandContext = exec.CommandContext

// CommandRunner hands planned commands to the operating system. It never interprets
// the wrapped tool's output; it streams it to Stdout/Stderr.
type CommandRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func NewCommandRunner() *CommandRunner {
	return &CommandRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Execute runs cmd to completion so that consecutive commands on one device never overlap.
func (r *CommandRunner) Execute(ctx context.Context, cmd model.PlannedCommand) error {
	if cmd.Informational {
		return fmt.Errorf("EXEC_REFUSED: %q is informational only", cmd.Text)
	}
	if len(cmd.Argv) == 0 {
		return errors.New("EXEC_REFUSED: command has no argv")
	}
	c := execCommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...)
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Argv[0], err)
	}
	return nil
}
