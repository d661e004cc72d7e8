package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepseries/stepseries-go/cmd/stepctl/commands"
	"github.com/stepseries/stepseries-go/pkg/board"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "board.yaml", `
model: step800
id: 3
address: 192.168.0.100
timeout: 500ms
fail_fast: true
trace: /tmp/run.slog
`)
	cfg := DefaultConfig()
	require.NoError(t, loadConfig(path, &cfg))

	assert.Equal(t, board.STEP800, cfg.Device.Model)
	assert.Equal(t, 3, cfg.Device.ID)
	assert.Equal(t, "192.168.0.100", cfg.Device.Address)
	assert.Equal(t, 500*time.Millisecond, cfg.Device.Timeout)
	assert.True(t, cfg.Device.FailFast)
	assert.Equal(t, "/tmp/run.slog", cfg.Trace)
	// untouched fields keep defaults
	assert.Equal(t, 50000, cfg.Device.Port)
	assert.True(t, cfg.Device.AddIDToArgs)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "board.toml", `
model = "STEP400"
id = 2
listen_port = 6000
add_id_to_args = false
rehandshake_on_boot = true
metrics_addr = ":9100"
log_level = "debug"
`)
	cfg := DefaultConfig()
	require.NoError(t, loadConfig(path, &cfg))

	assert.Equal(t, board.STEP400, cfg.Device.Model)
	assert.Equal(t, 2, cfg.Device.ID)
	assert.Equal(t, 6000, cfg.Device.ListenPort)
	assert.False(t, cfg.Device.AddIDToArgs)
	assert.True(t, cfg.Device.RehandshakeOnBoot)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown extension", "board.ini", "id=1"},
		{"bad model", "board.yaml", "model: step1600"},
		{"bad timeout", "board.toml", `timeout = "soon"`},
		{"unknown yaml field", "board.yaml", "speed: 10"},
		{"malformed toml", "board.toml", "id = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			assert.Error(t, loadConfig(writeFile(t, tt.file, tt.content), &cfg))
		})
	}

	cfg := DefaultConfig()
	assert.Error(t, loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
}

func TestParseArgs(t *testing.T) {
	var stderr bytes.Buffer
	cfg, args, err := parseArgs([]string{"-model", "step800", "-id", "4", "-timeout", "1s", "get", "GetVersion"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, board.STEP800, cfg.Device.Model)
	assert.Equal(t, 4, cfg.Device.ID)
	assert.Equal(t, time.Second, cfg.Device.Timeout)
	assert.Equal(t, []string{"get", "GetVersion"}, args)
}

func TestParseArgsFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "board.yaml", "id: 7\nmodel: step800\n")
	var stderr bytes.Buffer
	cfg, _, err := parseArgs([]string{"-config", path, "-id", "2", "shell"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Device.ID)
	assert.Equal(t, board.STEP800, cfg.Device.Model)
}

func TestParseArgsNoIDOffset(t *testing.T) {
	var stderr bytes.Buffer
	cfg, _, err := parseArgs([]string{"-address", "127.0.0.1", "-no-id-offset", "watch"}, &stderr)
	require.NoError(t, err)

	id, err := cfg.Device.Identity()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50000", id.Remote)
}

func TestParseArgsErrors(t *testing.T) {
	var stderr bytes.Buffer

	_, _, err := parseArgs(nil, &stderr)
	assert.ErrorIs(t, err, commands.ErrUsage)

	_, _, err = parseArgs([]string{"-model", "step1600", "get"}, &stderr)
	assert.Error(t, err)

	_, _, err = parseArgs([]string{"-address", "10.0.0.250", "-id", "10", "get"}, &stderr)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
