package safety

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// EraseToken must be typed twice, verbatim, to authorize a live wipe.
const EraseToken = "ERASE"

var ErrConfirmationClosed = errors.New("CONFIRMATION_CLOSED: attempt already resolved")

// Prompter is the line-oriented I/O the confirmation needs: show a prompt, return one line.
type Prompter interface {
	Prompt(ctx context.Context, text string) (string, error)
}

type ConfirmState int

const (
	AwaitingPathEcho ConfirmState = iota
	AwaitingFirstErase
	AwaitingSecondErase
	Confirmed
	Aborted
)

func (s ConfirmState) String() string {
	switch s {
	case AwaitingPathEcho:
		return "awaiting-path-echo"
	case AwaitingFirstErase:
		return "awaiting-first-erase"
	case AwaitingSecondErase:
		return "awaiting-second-erase"
	case Confirmed:
		return "confirmed"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("ConfirmState(%d)", int(s))
}

type FailureKind string

const (
	FailurePathMismatch     FailureKind = "path_mismatch"
	FailureTokenMissing     FailureKind = "token_missing"
	FailureInputUnavailable FailureKind = "input_unavailable"
)

// ConfirmationError is the reason an attempt ended in Aborted.
// Step is 1 or 2 for the ERASE tokens and 0 for the path echo.
type ConfirmationError struct {
	Kind FailureKind
	Step int
	Err  error
}

func (e *ConfirmationError) Error() string {
	switch e.Kind {
	case FailurePathMismatch:
		return "device path mismatch"
	case FailureTokenMissing:
		return fmt.Sprintf("confirmation token missing (%d/2)", e.Step)
	default:
		if e.Err != nil {
			return fmt.Sprintf("confirmation input unavailable: %v", e.Err)
		}
		return "confirmation input unavailable"
	}
}

func (e *ConfirmationError) Unwrap() error { return e.Err }

// Confirmation holds the state of a single attempt. It is not reusable: once Confirmed
// or Aborted every further Submit fails with ErrConfirmationClosed.
type Confirmation struct {
	device  string
	state   ConfirmState
	failure *ConfirmationError
}

func NewConfirmation(device string) *Confirmation {
	return &Confirmation{device: device, state: AwaitingPathEcho}
}

func (c *Confirmation) State() ConfirmState { return c.state }

// Failure returns the abort reason, or nil when the attempt has not aborted.
func (c *Confirmation) Failure() *ConfirmationError { return c.failure }

func (c *Confirmation) PromptText() string {
	switch c.state {
	case AwaitingPathEcho:
		return "Type the EXACT device path to confirm: "
	case AwaitingFirstErase:
		return fmt.Sprintf("Type '%s' in UPPERCASE to confirm (1/2): ", EraseToken)
	case AwaitingSecondErase:
		return fmt.Sprintf("Type '%s' again to confirm (2/2): ", EraseToken)
	}
	return ""
}

// Submit feeds one line of operator input. Only leading and trailing whitespace is
// trimmed before the exact comparison.
func (c *Confirmation) Submit(input string) (ConfirmState, error) {
	answer := strings.TrimSpace(input)
	switch c.state {
	case AwaitingPathEcho:
		if answer != c.device {
			return c.abort(&ConfirmationError{Kind: FailurePathMismatch})
		}
		c.state = AwaitingFirstErase
	case AwaitingFirstErase:
		if answer != EraseToken {
			return c.abort(&ConfirmationError{Kind: FailureTokenMissing, Step: 1})
		}
		c.state = AwaitingSecondErase
	case AwaitingSecondErase:
		if answer != EraseToken {
			return c.abort(&ConfirmationError{Kind: FailureTokenMissing, Step: 2})
		}
		c.state = Confirmed
	default:
		return c.state, ErrConfirmationClosed
	}
	return c.state, nil
}

func (c *Confirmation) fail(err error) (ConfirmState, error) {
	if c.state == Confirmed || c.state == Aborted {
		return c.state, ErrConfirmationClosed
	}
	return c.abort(&ConfirmationError{Kind: FailureInputUnavailable, Step: c.step(), Err: err})
}

func (c *Confirmation) abort(reason *ConfirmationError) (ConfirmState, error) {
	c.state = Aborted
	c.failure = reason
	return c.state, reason
}

func (c *Confirmation) step() int {
	switch c.state {
	case AwaitingFirstErase:
		return 1
	case AwaitingSecondErase:
		return 2
	}
	return 0
}

// Confirm runs a fresh three-step confirmation for device against p.
// It returns nil only when every step matched.
func Confirm(ctx context.Context, device string, p Prompter) error {
	c := NewConfirmation(device)
	for c.State() != Confirmed {
		line, err := p.Prompt(ctx, c.PromptText())
		if err != nil {
			_, ferr := c.fail(err)
			return ferr
		}
		if _, err := c.Submit(line); err != nil {
			return err
		}
	}
	return nil
}
