package safety

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrInvalidDevice = errors.New("DEVICE_INVALID")

// Accepted shapes: /dev/..., \\.\PhysicalDrive..., and a drive letter with colon.
var devicePattern = regexp.MustCompile(`^(/dev/|\\\\\.\\PhysicalDrive|[A-Za-z]:)`)

// ValidateDevice is a syntactic check only. It does not prove the path names a real
// device, nor that the device is safe to wipe.
func ValidateDevice(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty device path", ErrInvalidDevice)
	}
	if !devicePattern.MatchString(path) {
		return fmt.Errorf("%w: %q does not look like a device path", ErrInvalidDevice, path)
	}
	return nil
}
