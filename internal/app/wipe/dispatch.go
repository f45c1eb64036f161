package wipe

import (
	"context"
	"errors"
	"fmt"

	"wiper/internal/domain/model"
)

var ErrDispatchFailure = errors.New("DISPATCH_FAILED")

// Executor is the process-execution collaborator. Execute returns once the command has
// been issued and reports whether it succeeded.
type Executor interface {
	Execute(ctx context.Context, cmd model.PlannedCommand) error
}

type DispatchError struct {
	Command model.PlannedCommand
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: command %d/%d %q: %v", ErrDispatchFailure, e.Command.Ordinal, e.Command.Of, e.Command.Text, e.Err)
}

func (e *DispatchError) Unwrap() []error { return []error{ErrDispatchFailure, e.Err} }

// Dispatch records every command in dry mode. In live mode it executes commands one at a
// time in order and stops at the first failure; informational commands are only recorded.
func Dispatch(ctx context.Context, cmds []model.PlannedCommand, mode model.ExecutionMode, exec Executor) ([]model.DispatchOutcome, error) {
	out := make([]model.DispatchOutcome, 0, len(cmds))
	for _, cmd := range cmds {
		if mode != model.ModeLive || cmd.Informational {
			out = append(out, model.DispatchOutcome{Kind: model.OutcomeRecorded, Command: cmd})
			continue
		}
		if exec == nil {
			return out, &DispatchError{Command: cmd, Err: errors.New("no executor configured")}
		}
		if err := exec.Execute(ctx, cmd); err != nil {
			return out, &DispatchError{Command: cmd, Err: err}
		}
		out = append(out, model.DispatchOutcome{Kind: model.OutcomeExecuted, Command: cmd})
	}
	return out, nil
}
