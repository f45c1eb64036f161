package common

import (
	"context"
	"time"

	"wiper/internal/domain/model"
	"wiper/internal/infra/logging"
)

func LogDispatch(ctx context.Context, logger logging.Logger, planID string, req model.WipeRequest, item model.CommandItem, dispatchErr error) error {
	action := "record"
	if req.Mode == model.ModeLive && !item.Informational {
		action = "execute"
	}
	entry := model.OperationLogEntry{
		Timestamp: time.Now().UTC(),
		PlanID:    planID,
		Command:   "wipe",
		Action:    action,
		Device:    req.Device,
		Method:    string(req.Method),
		Ordinal:   item.Ordinal,
		Of:        item.Of,
		Text:      item.Text,
		Result:    item.Result,
		DryRun:    req.Mode != model.ModeLive,
	}
	if dispatchErr != nil {
		entry.Error = dispatchErr.Error()
	}
	return logger.Log(ctx, entry)
}
