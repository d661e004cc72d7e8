// Package version parses and compares board firmware versions.
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

// SupportedMajor is the firmware major version whose OSC command set this
// library implements.
const SupportedMajor = 1

// Firmware is a parsed "major.minor[.patch]" firmware version.
type Firmware struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses a "major.minor" or "major.minor.patch" version string. A
// leading "v" is accepted.
func Parse(s string) (Firmware, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Firmware{}, fmt.Errorf("invalid firmware version %q: expected major.minor[.patch]", s)
	}

	nums := make([]uint16, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || p == "" {
			return Firmware{}, fmt.Errorf("invalid firmware version %q: bad component %q", s, p)
		}
		nums[i] = uint16(n)
	}
	return Firmware{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// FromResponse parses the version carried by a GetVersion reply.
func FromResponse(v *catalog.Version) (Firmware, error) {
	if v == nil {
		return Firmware{}, fmt.Errorf("nil version reply")
	}
	return Parse(v.FirmwareVersion)
}

// String returns the version as "major.minor.patch".
func (f Firmware) String() string {
	return fmt.Sprintf("%d.%d.%d", f.Major, f.Minor, f.Patch)
}

// Compare returns -1, 0 or +1 as f is older than, equal to or newer than
// other.
func (f Firmware) Compare(other Firmware) int {
	if c := cmp.Compare(f.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(f.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(f.Patch, other.Patch)
}

// AtLeast reports whether f is other or newer.
func (f Firmware) AtLeast(other Firmware) bool {
	return f.Compare(other) >= 0
}

// Compatible returns true if the other version has the same major version.
func (f Firmware) Compatible(other Firmware) bool {
	return f.Major == other.Major
}

// Supported reports whether this library speaks f's command set.
func (f Firmware) Supported() bool {
	return f.Major == SupportedMajor
}
