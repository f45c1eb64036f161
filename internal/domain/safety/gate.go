package safety

import (
	"errors"
	"fmt"

	"wiper/internal/domain/model"
)

// AllowExecuteEnv is the environment key that must equal "1" for a live wipe.
const AllowExecuteEnv = "WIPER_ALLOW_EXECUTE"

var (
	ErrNotAuthorized       = errors.New("NOT_AUTHORIZED: set " + AllowExecuteEnv + "=1 to allow destructive operations")
	ErrConfirmationAborted = errors.New("CONFIRMATION_ABORTED")
)

type Authorization interface {
	Granted() bool
}

type AuthorizationFunc func() bool

func (f AuthorizationFunc) Granted() bool { return f() }

// EnvAuthorization reads AllowExecuteEnv through lookup on every Granted call.
func EnvAuthorization(lookup func(string) (string, bool)) Authorization {
	return AuthorizationFunc(func() bool {
		v, ok := lookup(AllowExecuteEnv)
		return ok && v == "1"
	})
}

type ConfirmFunc func() error

// Admit decides the execution mode for req. It is the only function that can return
// model.ModeLive, and only after auth granted and confirm succeeded, in that order.
func Admit(req model.WipeRequest, auth Authorization, confirm ConfirmFunc) (model.ExecutionMode, error) {
	if err := ValidateDevice(req.Device); err != nil {
		return "", err
	}
	if req.Mode != model.ModeLive {
		return model.ModeDry, nil
	}
	if auth == nil || !auth.Granted() {
		return "", ErrNotAuthorized
	}
	if confirm == nil {
		return "", fmt.Errorf("%w: no confirmation available", ErrConfirmationAborted)
	}
	if err := confirm(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfirmationAborted, err)
	}
	return model.ModeLive, nil
}
