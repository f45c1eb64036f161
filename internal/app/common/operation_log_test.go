package common

import (
	"context"
	"errors"
	"testing"

	"wiper/internal/domain/model"
)

type captureCommonLogger struct {
	entries []model.OperationLogEntry
	err     error
}

func (c *captureCommonLogger) Log(_ context.Context, entry model.OperationLogEntry) error {
	c.entries = append(c.entries, entry)
	return c.err
}

func (c *captureCommonLogger) Path() string { return "" }

func TestLogDispatchDryRecord(t *testing.T) {
	logger := &captureCommonLogger{}
	req := model.WipeRequest{Device: "/dev/sdb", Method: model.MethodDD, Passes: 1, Mode: model.ModeDry}
	item := model.CommandItem{Ordinal: 1, Of: 2, Text: "dd if=/dev/urandom of=/dev/sdb", Result: "recorded"}

	if err := LogDispatch(context.Background(), logger, "plan-1", req, item, nil); err != nil {
		t.Fatal(err)
	}
	e := logger.entries[0]
	if e.Action != "record" || !e.DryRun || e.Result != "recorded" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.PlanID != "plan-1" || e.Command != "wipe" || e.Method != "dd" || e.Ordinal != 1 || e.Of != 2 {
		t.Fatalf("unexpected metadata: %+v", e)
	}
}

func TestLogDispatchLiveExecuteWithError(t *testing.T) {
	logger := &captureCommonLogger{}
	req := model.WipeRequest{Device: "/dev/sdb", Method: model.MethodBlkdiscard, Passes: 1, Mode: model.ModeLive}
	item := model.CommandItem{Ordinal: 1, Of: 1, Text: "blkdiscard /dev/sdb", Result: "error"}

	if err := LogDispatch(context.Background(), logger, "plan-2", req, item, errors.New("exit status 1")); err != nil {
		t.Fatal(err)
	}
	e := logger.entries[0]
	if e.Action != "execute" || e.DryRun || e.Error != "exit status 1" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestLogDispatchLiveInformationalIsRecord(t *testing.T) {
	logger := &captureCommonLogger{}
	req := model.WipeRequest{Device: "/dev/sda", Method: model.MethodHdparm, Passes: 1, Mode: model.ModeLive}
	item := model.CommandItem{Ordinal: 1, Of: 1, Informational: true, Result: "recorded"}

	if err := LogDispatch(context.Background(), logger, "plan-3", req, item, nil); err != nil {
		t.Fatal(err)
	}
	if logger.entries[0].Action != "record" {
		t.Fatalf("expected informational command to be logged as record, got %s", logger.entries[0].Action)
	}
}

func TestLogDispatchPropagatesLoggerError(t *testing.T) {
	logger := &captureCommonLogger{err: errors.New("write failed")}
	err := LogDispatch(context.Background(), logger, "p", model.WipeRequest{}, model.CommandItem{}, nil)
	if err == nil {
		t.Fatal("expected logger error to be returned")
	}
}
