package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"wiper/internal/domain/model"
)

type Config struct {
	DefaultMethod    string   `yaml:"default_method"`
	DefaultPasses    int      `yaml:"default_passes"`
	BlockSize        string   `yaml:"block_size"`
	ProtectedDevices []string `yaml:"protected_devices"`
	OpLog            *bool    `yaml:"oplog"`
}

func Default() Config {
	enabled := true
	return Config{
		DefaultMethod: string(model.MethodDD),
		DefaultPasses: 1,
		BlockSize:     "4M",
		OpLog:         &enabled,
	}
}

func (c Config) OpLogEnabled() bool {
	return c.OpLog == nil || *c.OpLog
}

var blockSizePattern = regexp.MustCompile(`^[1-9][0-9]*[KMG]?$`)

func Validate(c Config) error {
	if _, err := model.ParseMethod(c.DefaultMethod); err != nil {
		return fmt.Errorf("CONFIG_INVALID: default_method: %w", err)
	}
	if c.DefaultPasses < 1 {
		return fmt.Errorf("CONFIG_INVALID: default_passes must be >= 1, got %d", c.DefaultPasses)
	}
	if !blockSizePattern.MatchString(c.BlockSize) {
		return fmt.Errorf("CONFIG_INVALID: block_size %q", c.BlockSize)
	}
	return nil
}

type Store struct{}

func NewStore() Store { return Store{} }

// Load reads config.yaml from the wiper config directory. A missing file yields Default.
func (Store) Load(ctx context.Context) (Config, error) {
	_ = ctx
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("CONFIG_INVALID: %s: %w", path, err)
	}

	cfg.DefaultMethod = strings.TrimSpace(cfg.DefaultMethod)
	cfg.BlockSize = strings.TrimSpace(cfg.BlockSize)
	devices := cfg.ProtectedDevices[:0]
	for _, d := range cfg.ProtectedDevices {
		d = strings.TrimSpace(d)
		if d == "" || strings.HasPrefix(d, "#") {
			continue
		}
		devices = append(devices, d)
	}
	cfg.ProtectedDevices = devices

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wiper", "config.yaml"), nil
}
