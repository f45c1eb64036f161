package system

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrDeviceBusy = errors.New("DEVICE_BUSY: another wipe holds this device")

var lockDir = os.TempDir

// lockPath maps a device path to a stable lock file name.
func lockPath(device string) string {
	r := strings.NewReplacer("/", "_", `\`, "_", ":", "_", ".", "_")
	return filepath.Join(lockDir(), "wiper-"+r.Replace(device)+".lock")
}
