package filesystem

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

type Mount struct {
	Source     string `json:"source"`
	MountPoint string `json:"mount_point"`
	FSType     string `json:"fs_type"`
}

var partitionSuffix = regexp.MustCompile(`^p?[0-9]+$`)

// DeviceMounts returns the mounts backed by device or one of its partitions.
func DeviceMounts(device string) ([]Mount, error) {
	mounts, err := readMounts()
	if err != nil {
		return nil, err
	}
	return matchDevice(mounts, device), nil
}

func matchDevice(mounts []Mount, device string) []Mount {
	if !strings.HasPrefix(device, "/") {
		return nil
	}
	dev := filepath.Clean(device)
	var out []Mount
	for _, m := range mounts {
		src := m.Source
		if !strings.HasPrefix(src, "/") {
			continue
		}
		src = filepath.Clean(src)
		if src == dev || (strings.HasPrefix(src, dev) && partitionSuffix.MatchString(src[len(dev):])) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MountPoint < out[j].MountPoint })
	return out
}

func parseMountInfo(raw string) []Mount {
	var out []Mount
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		sep := -1
		for i := 5; i < len(fields); i++ {
			if fields[i] == "-" {
				sep = i
				break
			}
		}
		if sep < 0 || sep+2 >= len(fields) {
			continue
		}
		out = append(out, Mount{
			Source:     decodeMountInfoPath(fields[sep+2]),
			MountPoint: decodeMountInfoPath(fields[4]),
			FSType:     fields[sep+1],
		})
	}
	return out
}

func decodeMountInfoPath(raw string) string {
	r := strings.ReplaceAll(raw, "\\040", " ")
	r = strings.ReplaceAll(r, "\\011", "\t")
	r = strings.ReplaceAll(r, "\\012", "\n")
	r = strings.ReplaceAll(r, "\\134", "\\")
	return r
}
