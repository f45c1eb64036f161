package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"wiper/internal/domain/model"
)

type Logger interface {
	Log(ctx context.Context, entry model.OperationLogEntry) error
	Path() string
}

type noopLogger struct{}

func (n noopLogger) Log(context.Context, model.OperationLogEntry) error { return nil }

func (n noopLogger) Path() string { return "" }

func NewNoopLogger() Logger { return noopLogger{} }

type operationLogger struct {
	mu   sync.Mutex
	file *os.File
	path string
}

func NewOperationLogger(ctx context.Context, disabled bool) (Logger, error) {
	if disabled {
		return noopLogger{}, nil
	}

	path, err := OperationLogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	_ = ctx
	return &operationLogger{file: f, path: path}, nil
}

func OperationLogPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wiper", "operations.log"), nil
}

func (l *operationLogger) Log(_ context.Context, entry model.OperationLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.UserID == 0 {
		entry.UserID = os.Getuid()
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	_, err = l.file.Write(append(b, '\n'))
	return err
}

func (l *operationLogger) Path() string { return l.path }
