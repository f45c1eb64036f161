package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"wiper/internal/domain/safety"
)

func TestIsDumbTerm(t *testing.T) {
	if !isDumbTerm("dumb") {
		t.Fatalf("expected dumb terminal detection")
	}
	if !isDumbTerm("") {
		t.Fatalf("expected empty terminal to be non-interactive")
	}
	if !isDumbTerm(" DUMB ") {
		t.Fatalf("expected normalized dumb terminal detection")
	}
	if isDumbTerm("xterm-256color") {
		t.Fatalf("unexpected dumb terminal detection")
	}
}

func TestShouldUseInteractive(t *testing.T) {
	tests := []struct {
		name     string
		stdin    bool
		stdout   bool
		term     string
		expected bool
	}{
		{name: "interactive tty", stdin: true, stdout: true, term: "xterm-256color", expected: true},
		{name: "stdin piped", stdin: false, stdout: true, term: "xterm-256color", expected: false},
		{name: "stdout redirected", stdin: true, stdout: false, term: "xterm-256color", expected: false},
		{name: "dumb term", stdin: true, stdout: true, term: "dumb", expected: false},
		{name: "empty term", stdin: true, stdout: true, term: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldUseInteractive(tc.stdin, tc.stdout, tc.term); got != tc.expected {
				t.Fatalf("unexpected result: got %v want %v", got, tc.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ExitCode(fmt.Errorf("wipe: %w", safety.ErrNotAuthorized)); got != 2 {
		t.Fatalf("expected 2 for refusal, got %d", got)
	}
	if got := ExitCode(errors.New("boom")); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestValidateWipeFlags(t *testing.T) {
	if err := validateWipeFlags("", 1); err == nil || !strings.Contains(err.Error(), "--device is required") {
		t.Fatalf("expected device error, got %v", err)
	}
	if err := validateWipeFlags("/dev/sdb", 0); err == nil || !strings.Contains(err.Error(), "--passes must be >= 1") {
		t.Fatalf("expected passes error, got %v", err)
	}
	if err := validateWipeFlags("/dev/sdb", 3); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestListMethodsMarksHdparmInformational(t *testing.T) {
	list := listMethods()
	if len(list) != 4 {
		t.Fatalf("expected 4 methods, got %d", len(list))
	}
	for _, m := range list {
		if (m.Name == "hdparm") != m.Informational {
			t.Fatalf("unexpected informational flag for %s", m.Name)
		}
		if m.Description == "" {
			t.Fatalf("missing description for %s", m.Name)
		}
	}
	if !strings.Contains(list.String(), "never executed") {
		t.Fatalf("expected informational note in text output")
	}
}
