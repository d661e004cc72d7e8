package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output does not contain %q", want)
	}
}

func mustNotContain(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Errorf("output unexpectedly contains %q", unwanted)
	}
}

func sample(t *testing.T) *RawCatalog {
	t.Helper()
	cat, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	return cat
}

func TestGenerateCommandTypes(t *testing.T) {
	output, err := GenerateCommands(sample(t))
	if err != nil {
		t.Fatalf("GenerateCommands failed: %v", err)
	}

	mustContain(t, output, "// Code generated by step-catgen. DO NOT EDIT.")
	mustContain(t, output, "type SetMicrostepMode struct {")
	mustContain(t, output, "StepSel int")
	mustContain(t, output, `func (SetMicrostepMode) Address() string { return "/setMicrostepMode" }`)
	mustContain(t, output, "func (c SetMicrostepMode) Args() []any { return []any{c.MotorID, c.StepSel} }")
	mustContain(t, output, "func (GetVersion) Args() []any { return nil }")
}

func TestGenerateQueries(t *testing.T) {
	output, err := GenerateCommands(sample(t))
	if err != nil {
		t.Fatalf("GenerateCommands failed: %v", err)
	}

	mustContain(t, output, "func (GetMicrostepMode) ReplyKind() Kind { return KindMicrostepMode }")
	mustContain(t, output, "func (c GetMicrostepMode) Target() (int, bool) { return c.MotorID, true }")
	mustContain(t, output, "func (GetVersion) Target() (int, bool) { return 0, false }")
	mustContain(t, output, "_ Query = GetMicrostepMode{}")
	mustContain(t, output, "_ Command = SetMicrostepMode{}")
}

func TestGenerateReporters(t *testing.T) {
	output, err := GenerateCommands(sample(t))
	if err != nil {
		t.Fatalf("GenerateCommands failed: %v", err)
	}

	mustContain(t, output, "func (EnableBusyReport) ReportKinds() []Kind { return []Kind{KindBusy} }")
	mustContain(t, output, "_ Reporter = EnableBusyReport{}")
	mustContain(t, output, "// EnableBusyReport switches the automatic Busy report on or off.")
}

func TestGenerateBuilders(t *testing.T) {
	output, err := GenerateCommands(sample(t))
	if err != nil {
		t.Fatalf("GenerateCommands failed: %v", err)
	}

	mustContain(t, output, `"EnableBusyReport": func(p *argParser) Command {`)
	mustContain(t, output, `c.Enable = p.parseBool("Enable")`)
	mustContain(t, output, `return GetVersion{}`)
}

func TestGenerateResponses(t *testing.T) {
	output, err := GenerateResponses(sample(t))
	if err != nil {
		t.Fatalf("GenerateResponses failed: %v", err)
	}

	mustContain(t, output, `KindBusy Kind = "Busy"`)
	mustContain(t, output, "type Busy struct {")
	mustContain(t, output, "func (*Busy) Kind() Kind { return KindBusy }")
	mustContain(t, output, "func (r *Busy) Motor() (int, bool) { return r.MotorID, true }")
	mustContain(t, output, `v.State = r.readBool("State")`)
	mustContain(t, output, `"/busy": decodeBusy,`)
	mustContain(t, output, "_ MotorScoped = (*Busy)(nil)")

	// Booted has no motor ID.
	mustNotContain(t, output, "_ MotorScoped = (*Booted)(nil)")
	mustContain(t, output, "_ Response = (*Booted)(nil)")
}

func TestGenerateCustomResponse(t *testing.T) {
	output, err := GenerateResponses(sample(t))
	if err != nil {
		t.Fatalf("GenerateResponses failed: %v", err)
	}

	mustContain(t, output, `KindVersion Kind = "Version"`)
	mustContain(t, output, `"/version": decodeVersion,`)
	mustNotContain(t, output, "type Version struct")
	mustNotContain(t, output, "_ Response = (*Version)(nil)")
}

func TestResponseDoc(t *testing.T) {
	cat := sample(t)
	tests := []struct {
		name string
		want string
	}{
		{"MicrostepMode", "is the reply to GetMicrostepMode."},
		{"Busy", "is the automatic report enabled by EnableBusyReport."},
		{"Booted", "is an automatic board message."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range cat.Responses {
				if r.Name == tt.name {
					if got := responseDoc(r, cat); got != tt.want {
						t.Errorf("responseDoc = %q, want %q", got, tt.want)
					}
					return
				}
			}
			t.Fatalf("response %s not found", tt.name)
		})
	}
}

func TestRunWritesFormattedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	if err := run(path, out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"commands_gen.go", "responses_gen.go"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "// Code generated by step-catgen") {
			t.Errorf("%s: missing generated header", name)
		}
		// gofmt aligns struct fields with tabs.
		if !strings.Contains(string(data), "\tMotorID int") && !strings.Contains(string(data), "\tMotorID ") {
			t.Errorf("%s: not formatted", name)
		}
	}
}
