package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".logtriage"
	DefaultConfigFile = "config.yaml"
	DefaultLogFile    = "triage.jsonl"
)

// Config is the resolved tool configuration: file settings overlaid with
// command-line overrides.
type Config struct {
	ConfigDir string
	LogPath   string
	File      FileConfig
}

// FileConfig is the user-editable part, read from ~/.logtriage/config.yaml.
type FileConfig struct {
	// AdbPath overrides the adb binary; empty means "adb" from PATH.
	AdbPath string `yaml:"adb_path"`

	// DeviceSerial selects a device when several are attached.
	DeviceSerial string `yaml:"device_serial"`

	// DefaultPackage is triaged when no --package flag is given.
	DefaultPackage string `yaml:"default_package"`

	// Workers bounds parallel classification of saved captures.
	// Zero or one means sequential.
	Workers int `yaml:"workers"`
}

// Load resolves the config dir, reads the config file if present, and
// applies the path overrides. A missing config file is not an error.
func Load(configPath, logPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{ConfigDir: configDir}

	if configPath == "" {
		configPath = filepath.Join(configDir, DefaultConfigFile)
	}
	fc, err := loadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg.File = fc

	if logPath != "" {
		cfg.LogPath = logPath
	} else {
		cfg.LogPath = filepath.Join(configDir, DefaultLogFile)
	}

	return cfg, nil
}

func loadFile(path string) (FileConfig, error) {
	var fc FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, err
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.Workers < 0 {
		fc.Workers = 0
	}
	return fc, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
