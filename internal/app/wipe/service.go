package wipe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"wiper/internal/app/common"
	"wiper/internal/domain/model"
	"wiper/internal/domain/planner"
	"wiper/internal/domain/safety"
	"wiper/internal/infra/filesystem"
	"wiper/internal/infra/system"
)

type Service struct{}

type Options struct {
	Device  string
	Method  string
	Passes  int
	Execute bool
}

var (
	lookupEnv    = os.LookupEnv
	lockDevice   = system.LockDevice
	deviceMounts = filesystem.DeviceMounts
	newExecutor  = func() Executor { return system.NewCommandRunner() }
	newPlanID    = func() string { return "plan-" + uuid.NewString() }
	timeNow      = time.Now
)

func NewService() Service { return Service{} }

// Run takes one wipe request through validation, admission, planning and dispatch.
// Nothing is planned when admission fails. Protected and mounted devices are refused
// only for live runs; a dry run is always available.
func (Service) Run(ctx context.Context, app *common.AppContext, opts Options) (model.CommandResult, error) {
	start := timeNow()

	method, err := model.ParseMethod(opts.Method)
	if err != nil {
		return model.CommandResult{}, err
	}
	req := model.WipeRequest{
		Device: opts.Device,
		Method: method,
		Passes: opts.Passes,
		Mode:   model.ModeDry,
	}
	if opts.Execute && !app.Options.DryRun {
		req.Mode = model.ModeLive
	}
	if err := req.Validate(); err != nil {
		return model.CommandResult{}, err
	}

	mode, err := safety.Admit(req, safety.EnvAuthorization(lookupEnv), common.ConfirmDevice(ctx, app, req.Device))
	if err != nil {
		return model.CommandResult{}, err
	}
	req.Mode = mode

	cmds, err := planner.New(app.Config.BlockSize).Plan(req.Method, req.Device, req.Passes)
	if err != nil {
		return model.CommandResult{}, err
	}

	var executor Executor
	if mode == model.ModeLive {
		if err := common.RequireUnprotectedDevice(req.Device, app.Config.ProtectedDevices); err != nil {
			return model.CommandResult{}, err
		}
		mounts, err := deviceMounts(req.Device)
		if err != nil {
			return model.CommandResult{}, fmt.Errorf("DEVICE_MOUNT_UNKNOWN: cannot read mount table: %w", err)
		}
		if err := common.RequireUnmountedDevice(req.Device, mounts); err != nil {
			return model.CommandResult{}, err
		}
		unlock, err := lockDevice(req.Device)
		if err != nil {
			return model.CommandResult{}, err
		}
		defer func() { _ = unlock() }()
		executor = newExecutor()
	}

	outcomes, dispatchErr := Dispatch(ctx, cmds, mode, executor)

	planID := newPlanID()
	items := make([]model.CommandItem, len(cmds))
	summary := model.Summary{CommandsTotal: len(cmds)}
	for i, cmd := range cmds {
		items[i] = model.CommandItem{
			Ordinal:       cmd.Ordinal,
			Of:            cmd.Of,
			Intent:        cmd.Intent,
			Text:          cmd.Text,
			Informational: cmd.Informational,
			Result:        "skipped",
		}
		var itemErr error
		switch {
		case i < len(outcomes):
			items[i].Result = string(outcomes[i].Kind)
			if outcomes[i].Kind == model.OutcomeExecuted {
				summary.CommandsExecuted++
			} else {
				summary.CommandsRecorded++
			}
		case i == len(outcomes) && dispatchErr != nil:
			items[i].Result = "error"
			summary.Errors++
			var derr *DispatchError
			if errors.As(dispatchErr, &derr) {
				itemErr = derr.Err
			} else {
				itemErr = dispatchErr
			}
		}
		if err := common.LogDispatch(ctx, app.Logger, planID, req, items[i], itemErr); err != nil {
			summary.Errors++
		}
	}

	result := model.CommandResult{
		SchemaVersion: "1.0",
		Command:       "wipe",
		PlanID:        planID,
		Device:        req.Device,
		Method:        req.Method,
		Mode:          mode,
		Timestamp:     start.UTC(),
		DurationMS:    timeNow().Sub(start).Milliseconds(),
		DryRun:        mode == model.ModeDry,
		Summary:       summary,
		Items:         items,
		LogPath:       app.Logger.Path(),
	}
	return result, dispatchErr
}
