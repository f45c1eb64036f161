package common

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"wiper/internal/domain/safety"
	"wiper/internal/infra/filesystem"
)

var (
	ErrDeviceProtected = errors.New("DEVICE_PROTECTED")
	ErrDeviceMounted   = errors.New("DEVICE_MOUNTED")
)

type warner interface {
	Warn(device string)
}

// RequireUnprotectedDevice refuses devices listed under protected_devices in config.
func RequireUnprotectedDevice(device string, protected []string) error {
	for _, p := range protected {
		if sameDevice(device, p) {
			return fmt.Errorf("%w: %s is listed in protected_devices", ErrDeviceProtected, device)
		}
	}
	return nil
}

// RequireUnmountedDevice refuses a device while it or one of its partitions is mounted.
func RequireUnmountedDevice(device string, mounts []filesystem.Mount) error {
	if len(mounts) == 0 {
		return nil
	}
	points := make([]string, 0, len(mounts))
	for _, m := range mounts {
		points = append(points, m.MountPoint)
	}
	return fmt.Errorf("%w: %s is mounted at %s", ErrDeviceMounted, device, strings.Join(points, ", "))
}

// ConfirmDevice builds the confirmation step the safety gate runs for a live request.
func ConfirmDevice(ctx context.Context, app *AppContext, device string) safety.ConfirmFunc {
	return func() error {
		if app.Prompter == nil {
			return errors.New("no interactive input available for confirmation")
		}
		if w, ok := app.Prompter.(warner); ok {
			w.Warn(device)
		}
		return safety.Confirm(ctx, device, app.Prompter)
	}
}

func sameDevice(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if strings.HasPrefix(a, "/") && strings.HasPrefix(b, "/") {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return strings.EqualFold(strings.TrimRight(a, `\`), strings.TrimRight(b, `\`))
}
