//go:build unix
// +build unix

package system

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// LockDevice takes an exclusive, non-blocking advisory lock for device. The returned
// func releases it.
func LockDevice(device string) (func() error, error) {
	path := lockPath(device)
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0o600)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if err := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = unix.Close(fd)
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w: %s", ErrDeviceBusy, device)
		}
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	return func() error {
		_ = unix.Flock(fd, unix.LOCK_UN)
		return unix.Close(fd)
	}, nil
}
