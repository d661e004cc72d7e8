package version

import (
	"testing"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Firmware
	}{
		{"1.0", Firmware{1, 0, 0}},
		{"1.0.3", Firmware{1, 0, 3}},
		{"v1.1.0", Firmware{1, 1, 0}},
		{" 2.10.23 ", Firmware{2, 10, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0.0",
		"1.x",
		"-1.0",
		"1..0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestFirmware_String(t *testing.T) {
	v, err := Parse("1.2")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != "1.2.0" {
		t.Errorf("String() = %q, want %q", got, "1.2.0")
	}
}

func TestFirmware_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0", "1.0.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, _ := Parse(tt.a)
			b, _ := Parse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := a.AtLeast(b); got != (tt.want >= 0) {
				t.Errorf("AtLeast = %v, want %v", got, tt.want >= 0)
			}
		})
	}
}

func TestFirmware_Compatible(t *testing.T) {
	v10, _ := Parse("1.0")
	v11, _ := Parse("1.1")
	v20, _ := Parse("2.0")

	if !v10.Compatible(v11) {
		t.Error("1.0 should be compatible with 1.1")
	}
	if v10.Compatible(v20) {
		t.Error("1.0 should not be compatible with 2.0")
	}
	if !v11.Supported() {
		t.Error("1.x should be supported")
	}
	if v20.Supported() {
		t.Error("2.x should not be supported")
	}
}

func TestFromResponse(t *testing.T) {
	v, err := FromResponse(&catalog.Version{FirmwareName: "STEP400_R1_unit", FirmwareVersion: "1.0.0", CompileDate: "Jan 1 2022 12:00:00"})
	if err != nil {
		t.Fatalf("FromResponse: %v", err)
	}
	if v != (Firmware{1, 0, 0}) {
		t.Errorf("FromResponse = %+v", v)
	}

	if _, err := FromResponse(nil); err == nil {
		t.Error("FromResponse(nil) should return error")
	}
	if _, err := FromResponse(&catalog.Version{FirmwareVersion: "unknown"}); err == nil {
		t.Error("FromResponse should reject a malformed version")
	}
}
