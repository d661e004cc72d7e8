// Package board describes the STEP-series board models: how many motors
// each drives and which commands each firmware accepts.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

// BroadcastMotorID addresses every motor on a board at once. Queries sent
// to it are answered once per motor.
const BroadcastMotorID = 255

// Model is a board variant.
type Model uint8

const (
	// STEP400 drives 4 motors with PowerSTEP01 drivers (voltage and current mode).
	STEP400 Model = iota
	// STEP800 drives 8 motors with L6470 drivers (voltage mode only).
	STEP800
)

// String returns the model name.
func (m Model) String() string {
	switch m {
	case STEP400:
		return "STEP400"
	case STEP800:
		return "STEP800"
	default:
		return "UNKNOWN"
	}
}

// ParseModel resolves a model name such as "step400".
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(s) {
	case "STEP400":
		return STEP400, nil
	case "STEP800":
		return STEP800, nil
	}
	return 0, fmt.Errorf("unknown board model %q", s)
}

// UnitCount is the number of addressable motors.
func (m Model) UnitCount() int {
	switch m {
	case STEP800:
		return 8
	default:
		return 4
	}
}

// unsupported lists commands the model's firmware rejects.
var unsupported = map[Model][]string{
	STEP800: {
		"SetVoltageMode",
		"SetCurrentMode",
		"SetTval",
		"GetTval",
		"SetDecayModeParam",
		"GetDecayModeParam",
		"EnableLimitSwReport",
		"GetLimitSw",
		"SetLimitSwMode",
		"GetLimitSwMode",
		"GetAdcVal",
	},
}

// Models lists every known model.
func Models() []Model {
	return []Model{STEP400, STEP800}
}

// Supports reports whether the model accepts cmd.
func (m Model) Supports(cmd catalog.Command) bool {
	return !slices.Contains(unsupported[m], cmd.Name())
}

// Unsupported returns the command names the model rejects.
func (m Model) Unsupported() []string {
	return slices.Clone(unsupported[m])
}

// Check returns an *InvalidCommandError when the model rejects cmd.
func (m Model) Check(cmd catalog.Command) error {
	if m.Supports(cmd) {
		return nil
	}
	var alternatives []Model
	for _, other := range Models() {
		if other != m && other.Supports(cmd) {
			alternatives = append(alternatives, other)
		}
	}
	return &InvalidCommandError{
		Model:        m,
		Command:      cmd.Name(),
		Unsupported:  m.Unsupported(),
		Alternatives: alternatives,
	}
}

// ValidMotorID reports whether id addresses a motor on the model, either
// directly (1..UnitCount) or through BroadcastMotorID.
func (m Model) ValidMotorID(id int) bool {
	return id == BroadcastMotorID || (id >= 1 && id <= m.UnitCount())
}

// InvalidCommandError rejects a command before any I/O.
type InvalidCommandError struct {
	Model   Model
	Command string

	// Unsupported is every command this model rejects.
	Unsupported []string

	// Alternatives are the models that do accept Command.
	Alternatives []Model
}

func (e *InvalidCommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command %s cannot run on a %s", e.Command, e.Model)
	if len(e.Alternatives) > 0 {
		names := make([]string, len(e.Alternatives))
		for i, a := range e.Alternatives {
			names[i] = a.String()
		}
		fmt.Fprintf(&b, " (supported on %s)", strings.Join(names, ", "))
	}
	if len(e.Unsupported) > 0 {
		fmt.Fprintf(&b, "; %s rejects: %s", e.Model, strings.Join(e.Unsupported, ", "))
	}
	return b.String()
}
