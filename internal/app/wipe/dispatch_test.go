package wipe

import (
	"context"
	"errors"
	"testing"

	"wiper/internal/domain/model"
	"wiper/internal/domain/planner"
)

type recordingExecutor struct {
	calls  []string
	failAt int
	err    error
}

func (r *recordingExecutor) Execute(_ context.Context, cmd model.PlannedCommand) error {
	r.calls = append(r.calls, cmd.Text)
	if r.failAt > 0 && len(r.calls) == r.failAt {
		return r.err
	}
	return nil
}

func mustPlan(t *testing.T, method model.Method, passes int) []model.PlannedCommand {
	t.Helper()
	cmds, err := planner.New("").Plan(method, "/dev/sdb", passes)
	if err != nil {
		t.Fatal(err)
	}
	return cmds
}

func TestDispatchDryRecordsWithoutExecuting(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := mustPlan(t, model.MethodDD, 2)

	out, err := Dispatch(context.Background(), cmds, model.ModeDry, exec)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(out))
	}
	for _, o := range out {
		if o.Kind != model.OutcomeRecorded {
			t.Fatalf("expected recorded outcome, got %s", o.Kind)
		}
	}
	if len(exec.calls) != 0 {
		t.Fatalf("dry dispatch must not execute, got %v", exec.calls)
	}
}

func TestDispatchLiveExecutesInOrder(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := mustPlan(t, model.MethodDD, 2)

	out, err := Dispatch(context.Background(), cmds, model.ModeLive, exec)
	if err != nil {
		t.Fatal(err)
	}
	if len(exec.calls) != 3 {
		t.Fatalf("expected 3 executions, got %d", len(exec.calls))
	}
	for i, o := range out {
		if o.Kind != model.OutcomeExecuted {
			t.Fatalf("expected executed outcome at %d, got %s", i, o.Kind)
		}
		if exec.calls[i] != cmds[i].Text {
			t.Fatalf("out of order execution at %d: %s", i, exec.calls[i])
		}
	}
}

func TestDispatchLiveStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("exit status 1")
	exec := &recordingExecutor{failAt: 2, err: boom}
	cmds := mustPlan(t, model.MethodDD, 3)

	out, err := Dispatch(context.Background(), cmds, model.ModeLive, exec)
	if !errors.Is(err, ErrDispatchFailure) || !errors.Is(err, boom) {
		t.Fatalf("expected dispatch failure wrapping cause, got %v", err)
	}
	var derr *DispatchError
	if !errors.As(err, &derr) || derr.Command.Ordinal != 2 {
		t.Fatalf("expected failure on command 2, got %v", err)
	}
	if len(out) != 1 || out[0].Kind != model.OutcomeExecuted {
		t.Fatalf("expected only first command executed, got %+v", out)
	}
	if len(exec.calls) != 2 {
		t.Fatalf("expected no calls after failure, got %v", exec.calls)
	}
}

func TestDispatchLiveNeverExecutesInformational(t *testing.T) {
	exec := &recordingExecutor{}
	cmds := mustPlan(t, model.MethodHdparm, 1)

	out, err := Dispatch(context.Background(), cmds, model.ModeLive, exec)
	if err != nil {
		t.Fatal(err)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("hdparm must not be executed, got %v", exec.calls)
	}
	if len(out) != 1 || out[0].Kind != model.OutcomeRecorded {
		t.Fatalf("expected recorded outcome, got %+v", out)
	}
}

func TestDispatchLiveWithoutExecutorFails(t *testing.T) {
	cmds := mustPlan(t, model.MethodBlkdiscard, 1)
	_, err := Dispatch(context.Background(), cmds, model.ModeLive, nil)
	if !errors.Is(err, ErrDispatchFailure) {
		t.Fatalf("expected dispatch failure, got %v", err)
	}
}
