package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// compileDatePattern matches the __DATE__ __TIME__ stamp the firmware
// appends, for example "Jul 15 2021 12:00:00" or "Jul  5 2021 09:30:00".
var compileDatePattern = regexp.MustCompile(`\w+ ? \d{1,2} \d{4} .+`)

// Version is the reply to GetVersion.
type Version struct {
	FirmwareName    string
	FirmwareVersion string
	CompileDate     string
}

// Kind returns KindVersion.
func (*Version) Kind() Kind { return KindVersion }

// Address returns "/version".
func (*Version) Address() string { return "/version" }

// The firmware sends the version as free text split across one or more
// arguments. The compile date is located by pattern; the rest is name and
// version in that order.
func decodeVersion(r *argReader) Response {
	parts := make([]string, 0, 4)
	for _, a := range r.remaining() {
		parts = append(parts, fmt.Sprint(a))
	}
	text := strings.Join(parts, " ")

	var v Version
	loc := compileDatePattern.FindStringIndex(text)
	if loc == nil {
		r.err = fmt.Errorf("%w: compile date", ErrMissingArgument)
		return &v
	}
	v.CompileDate = text[loc[0]:loc[1]]

	fields := strings.Fields(text[:loc[0]] + text[loc[1]:])
	switch {
	case len(fields) < 2:
		r.err = fmt.Errorf("%w: firmware name and version", ErrMissingArgument)
	case len(fields) > 2:
		r.err = fmt.Errorf("%w: %d unread", ErrTrailingArguments, len(fields)-2)
	default:
		v.FirmwareName, v.FirmwareVersion = fields[0], fields[1]
	}
	return &v
}

var _ Response = (*Version)(nil)
