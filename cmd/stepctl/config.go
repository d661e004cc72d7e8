package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/device"
)

// fileConfig is the on-disk layout of a stepctl config file. Unset fields
// keep their defaults.
type fileConfig struct {
	Model             *string `yaml:"model" toml:"model"`
	ID                *int    `yaml:"id" toml:"id"`
	Address           *string `yaml:"address" toml:"address"`
	Port              *int    `yaml:"port" toml:"port"`
	ListenAddress     *string `yaml:"listen_address" toml:"listen_address"`
	ListenPort        *int    `yaml:"listen_port" toml:"listen_port"`
	AddIDToArgs       *bool   `yaml:"add_id_to_args" toml:"add_id_to_args"`
	Timeout           *string `yaml:"timeout" toml:"timeout"`
	FailFast          *bool   `yaml:"fail_fast" toml:"fail_fast"`
	RehandshakeOnBoot *bool   `yaml:"rehandshake_on_boot" toml:"rehandshake_on_boot"`
	Trace             *string `yaml:"trace" toml:"trace"`
	MetricsAddr       *string `yaml:"metrics_addr" toml:"metrics_addr"`
	LogLevel          *string `yaml:"log_level" toml:"log_level"`
}

// Config is the resolved stepctl configuration.
type Config struct {
	Device      device.Config
	Trace       string
	MetricsAddr string
	LogLevel    string
}

// DefaultConfig returns the configuration for a STEP400 with ID 1.
func DefaultConfig() Config {
	return Config{
		Device:   device.DefaultConfig(board.STEP400, 1),
		LogLevel: "info",
	}
}

// loadConfig reads path into cfg. The format follows the extension:
// .toml is TOML, .yaml and .yml are YAML.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return raw.apply(cfg)
}

func (f fileConfig) apply(cfg *Config) error {
	if f.Model != nil {
		m, err := board.ParseModel(strings.TrimSpace(*f.Model))
		if err != nil {
			return err
		}
		cfg.Device.Model = m
	}
	if f.ID != nil {
		cfg.Device.ID = *f.ID
	}
	if f.Address != nil {
		cfg.Device.Address = strings.TrimSpace(*f.Address)
	}
	if f.Port != nil {
		cfg.Device.Port = *f.Port
	}
	if f.ListenAddress != nil {
		cfg.Device.ListenAddress = strings.TrimSpace(*f.ListenAddress)
	}
	if f.ListenPort != nil {
		cfg.Device.ListenPort = *f.ListenPort
	}
	if f.AddIDToArgs != nil {
		cfg.Device.AddIDToArgs = *f.AddIDToArgs
	}
	if f.Timeout != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*f.Timeout))
		if err != nil {
			return fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Device.Timeout = d
	}
	if f.FailFast != nil {
		cfg.Device.FailFast = *f.FailFast
	}
	if f.RehandshakeOnBoot != nil {
		cfg.Device.RehandshakeOnBoot = *f.RehandshakeOnBoot
	}
	if f.Trace != nil {
		cfg.Trace = *f.Trace
	}
	if f.MetricsAddr != nil {
		cfg.MetricsAddr = *f.MetricsAddr
	}
	if f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}
	return nil
}
