package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownMethod = errors.New("METHOD_UNKNOWN")
	ErrInvalidPasses = errors.New("PASSES_INVALID")
)

type Method string

const (
	MethodDD         Method = "dd"
	MethodBlkdiscard Method = "blkdiscard"
	MethodHdparm     Method = "hdparm"
	MethodNvme       Method = "nvme"
)

// Methods lists every supported wipe method in display order.
func Methods() []Method {
	return []Method{MethodDD, MethodBlkdiscard, MethodHdparm, MethodNvme}
}

// ParseMethod is the only place a free-form method name becomes a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.TrimSpace(s))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected dd|blkdiscard|hdparm|nvme)", ErrUnknownMethod, s)
}

type ExecutionMode string

const (
	ModeDry  ExecutionMode = "dry"
	ModeLive ExecutionMode = "live"
)

type WipeRequest struct {
	Device string        `json:"device"`
	Method Method        `json:"method"`
	Passes int           `json:"passes"`
	Mode   ExecutionMode `json:"mode"`
}

func (r WipeRequest) Validate() error {
	if r.Passes < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidPasses, r.Passes)
	}
	if _, err := ParseMethod(string(r.Method)); err != nil {
		return err
	}
	if r.Mode != ModeDry && r.Mode != ModeLive {
		return fmt.Errorf("MODE_INVALID: %q", r.Mode)
	}
	return nil
}

type PlannedCommand struct {
	Text          string   `json:"text"`
	Argv          []string `json:"argv,omitempty"`
	Intent        string   `json:"intent"`
	Ordinal       int      `json:"ordinal"`
	Of            int      `json:"of"`
	Informational bool     `json:"informational,omitempty"`
}

type OutcomeKind string

const (
	OutcomeRecorded OutcomeKind = "recorded"
	OutcomeExecuted OutcomeKind = "executed"
)

type DispatchOutcome struct {
	Kind    OutcomeKind    `json:"kind"`
	Command PlannedCommand `json:"command"`
}

type Summary struct {
	CommandsTotal    int `json:"commands_total"`
	CommandsRecorded int `json:"commands_recorded"`
	CommandsExecuted int `json:"commands_executed"`
	Errors           int `json:"errors"`
}

type CommandItem struct {
	Ordinal       int    `json:"ordinal"`
	Of            int    `json:"of"`
	Intent        string `json:"intent"`
	Text          string `json:"text"`
	Informational bool   `json:"informational,omitempty"`
	Result        string `json:"result"`
}

type CommandResult struct {
	SchemaVersion string        `json:"schema_version"`
	Command       string        `json:"command"`
	PlanID        string        `json:"plan_id"`
	Device        string        `json:"device"`
	Method        Method        `json:"method"`
	Mode          ExecutionMode `json:"mode"`
	Timestamp     time.Time     `json:"timestamp"`
	DurationMS    int64         `json:"duration_ms"`
	DryRun        bool          `json:"dry_run,omitempty"`
	Summary       Summary       `json:"summary"`
	Items         []CommandItem `json:"items,omitempty"`
	LogPath       string        `json:"log_path,omitempty"`
}

func (r CommandResult) String() string {
	var b strings.Builder
	for _, item := range r.Items {
		switch {
		case item.Informational:
			fmt.Fprintf(&b, "[MANUAL] %s\n", item.Text)
		case item.Result == string(OutcomeExecuted):
			fmt.Fprintf(&b, "[EXEC] %s\n", item.Text)
		case item.Result == "error":
			fmt.Fprintf(&b, "[FAILED] %s\n", item.Text)
		case item.Result == "skipped":
			fmt.Fprintf(&b, "[SKIPPED] %s\n", item.Text)
		default:
			fmt.Fprintf(&b, "[DRY-RUN] %s\n", item.Text)
		}
		if item.Informational {
			b.WriteString("Note: this command is printed for manual execution and is never run automatically.\n")
		}
	}
	if r.LogPath != "" {
		fmt.Fprintf(&b, "Log path: %s\n", r.LogPath)
	}
	return strings.TrimRight(b.String(), "\n")
}

type OperationLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	PlanID    string    `json:"plan_id"`
	Command   string    `json:"command"`
	Action    string    `json:"action"`
	Device    string    `json:"device"`
	Method    string    `json:"method"`
	Ordinal   int       `json:"ordinal"`
	Of        int       `json:"of"`
	Text      string    `json:"text"`
	Result    string    `json:"result"`
	Error     string    `json:"error"`
	DryRun    bool      `json:"dry_run"`
	UserID    int       `json:"user_id"`
}
