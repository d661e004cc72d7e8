package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stepseries/stepseries-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.slog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func durationPtr(d time.Duration) *time.Duration { return &d }

// sampleEvents is one query round trip on one session.
func sampleEvents(ts time.Time) []log.Event {
	return []log.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345-0000",
			Direction: log.DirectionOut,
			Layer:     log.LayerWire,
			Category:  log.CategoryMessage,
			DeviceID:  "10.0.0.101:50000/0.0.0.0:50101",
			Model:     "STEP400",
			Message: &log.MessageEvent{
				Type:    log.MessageTypeQuery,
				Address: "/getMicrostepMode",
				Args:    []any{int64(1)},
				Command: "GetMicrostepMode",
			},
		},
		{
			Timestamp: ts,
			SessionID: "abc12345-0000",
			Direction: log.DirectionOut,
			Layer:     log.LayerSession,
			Category:  log.CategoryCorrelation,
			Correlation: &log.CorrelationEvent{
				Outcome:  log.OutcomeStarted,
				Query:    "/getMicrostepMode",
				Reply:    "/microstepmode",
				Expected: 1,
			},
		},
		{
			Timestamp: ts.Add(5 * time.Millisecond),
			SessionID: "abc12345-0000",
			Direction: log.DirectionIn,
			Layer:     log.LayerWire,
			Category:  log.CategoryMessage,
			Message: &log.MessageEvent{
				Type:    log.MessageTypeReply,
				Address: "/microstepMode",
				Args:    []any{int64(1), int64(7)},
				Kind:    "MicrostepMode",
			},
		},
		{
			Timestamp: ts.Add(5 * time.Millisecond),
			SessionID: "abc12345-0000",
			Direction: log.DirectionIn,
			Layer:     log.LayerSession,
			Category:  log.CategoryCorrelation,
			Correlation: &log.CorrelationEvent{
				Outcome:  log.OutcomeCompleted,
				Query:    "/getMicrostepMode",
				Reply:    "/microstepmode",
				Expected: 1,
				Received: 1,
				Duration: durationPtr(5 * time.Millisecond),
			},
		},
	}
}

func TestExportToJSONL(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	path := createTestLogFile(t, sampleEvents(ts))
	out := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 1 is not JSON: %v", err)
	}
	if first["SessionID"] != "abc12345-0000" {
		t.Errorf("SessionID = %v", first["SessionID"])
	}
	msg, ok := first["Message"].(map[string]any)
	if !ok {
		t.Fatalf("Message missing: %v", first)
	}
	if msg["Address"] != "/getMicrostepMode" {
		t.Errorf("Address = %v", msg["Address"])
	}
}

func TestExportToCSV(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	path := createTestLogFile(t, sampleEvents(ts))
	out := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	if rows[0][1] != "session_id" {
		t.Errorf("header = %v", rows[0])
	}
	completed := rows[4]
	if completed[7] != "COMPLETED" || completed[8] != "/getMicrostepMode" || completed[9] != "5000000" {
		t.Errorf("completed row = %v", completed)
	}
	if rows[1][6] != "STEP400" {
		t.Errorf("model column = %q", rows[1][6])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, nil)
	err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out"))
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}

func TestExportMissingFile(t *testing.T) {
	if err := RunExport(filepath.Join(t.TempDir(), "nope.slog"), "jsonl", ""); err == nil {
		t.Error("expected error for missing file")
	}
}
