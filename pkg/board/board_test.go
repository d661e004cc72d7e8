package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

func TestUnitCount(t *testing.T) {
	assert.Equal(t, 4, STEP400.UnitCount())
	assert.Equal(t, 8, STEP800.UnitCount())
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("step800")
	require.NoError(t, err)
	assert.Equal(t, STEP800, m)

	_, err = ParseModel("STEP1600")
	assert.Error(t, err)
}

func TestSTEP400SupportsEverything(t *testing.T) {
	for _, name := range catalog.CommandNames() {
		cmd := buildAny(t, name)
		if err := STEP400.Check(cmd); err != nil {
			t.Errorf("STEP400 rejected %s: %v", name, err)
		}
	}
}

func TestSTEP800RejectsCurrentModeCommands(t *testing.T) {
	rejected := []catalog.Command{
		catalog.SetVoltageMode{MotorID: 1},
		catalog.SetCurrentMode{MotorID: 1},
		catalog.SetTval{MotorID: 1},
		catalog.GetTval{MotorID: 1},
		catalog.SetDecayModeParam{MotorID: 1},
		catalog.GetDecayModeParam{MotorID: 1},
		catalog.EnableLimitSwReport{MotorID: 1},
		catalog.GetLimitSw{MotorID: 1},
		catalog.SetLimitSwMode{MotorID: 1},
		catalog.GetLimitSwMode{MotorID: 1},
		catalog.GetAdcVal{MotorID: 1},
	}
	for _, cmd := range rejected {
		t.Run(cmd.Name(), func(t *testing.T) {
			err := STEP800.Check(cmd)
			var ice *InvalidCommandError
			require.True(t, errors.As(err, &ice), "got %v", err)
			assert.Equal(t, cmd.Name(), ice.Command)
			assert.Equal(t, STEP800, ice.Model)
			assert.Equal(t, []Model{STEP400}, ice.Alternatives)
			assert.Len(t, ice.Unsupported, len(rejected))
			assert.Contains(t, ice.Error(), "supported on STEP400")
		})
	}

	assert.NoError(t, STEP800.Check(catalog.GetKval{MotorID: 1}))
	assert.NoError(t, STEP800.Check(catalog.GetTvalMA{MotorID: 1}))
}

func TestValidMotorID(t *testing.T) {
	assert.True(t, STEP400.ValidMotorID(1))
	assert.True(t, STEP400.ValidMotorID(4))
	assert.False(t, STEP400.ValidMotorID(5))
	assert.True(t, STEP800.ValidMotorID(8))
	assert.True(t, STEP800.ValidMotorID(BroadcastMotorID))
	assert.False(t, STEP800.ValidMotorID(0))
}

func buildAny(t *testing.T, name string) catalog.Command {
	t.Helper()
	var args []string
	for n := 0; n <= 8; n++ {
		if cmd, err := catalog.Build(name, args...); err == nil {
			return cmd
		}
		args = append(args, "1")
	}
	t.Fatalf("could not build %s", name)
	return nil
}
