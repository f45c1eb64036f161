//go:build !unix
// +build !unix

package system

import (
	"errors"
	"fmt"
	"os"
)

// LockDevice uses an exclusively created marker file where flock is unavailable.
func LockDevice(device string) (func() error, error) {
	path := lockPath(device)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrDeviceBusy, device)
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	return func() error {
		_ = f.Close()
		return os.Remove(path)
	}, nil
}
