package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// argReader decodes OSC arguments positionally. The first failure sticks;
// later reads return zero values so decoders can be written as straight-line
// field assignments and checked once through finish.
type argReader struct {
	args []any
	pos  int
	err  error
}

func newArgReader(args []any) *argReader {
	return &argReader{args: args}
}

func (r *argReader) next(field string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	if r.pos >= len(r.args) {
		r.err = fmt.Errorf("%w: %s (position %d)", ErrMissingArgument, field, r.pos)
		return nil, false
	}
	v := r.args[r.pos]
	r.pos++
	return v, true
}

func (r *argReader) fail(field string, want string, got any) {
	r.err = fmt.Errorf("%w: %s (position %d) want %s, got %T", ErrArgumentType, field, r.pos-1, want, got)
}

func (r *argReader) readInt(field string) int {
	v, ok := r.next(field)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case bool:
		if n {
			return 1
		}
		return 0
	}
	r.fail(field, "int", v)
	return 0
}

func (r *argReader) readFloat(field string) float32 {
	v, ok := r.next(field)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float32:
		return n
	case float64:
		return float32(n)
	case int32:
		return float32(n)
	case int64:
		return float32(n)
	}
	r.fail(field, "float", v)
	return 0
}

func (r *argReader) readBool(field string) bool {
	v, ok := r.next(field)
	if !ok {
		return false
	}
	switch n := v.(type) {
	case bool:
		return n
	case int32:
		if n == 0 || n == 1 {
			return n == 1
		}
	case int64:
		if n == 0 || n == 1 {
			return n == 1
		}
	}
	r.fail(field, "bool", v)
	return false
}

func (r *argReader) readString(field string) string {
	v, ok := r.next(field)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	r.fail(field, "string", v)
	return ""
}

// optionalInt reads an int if any arguments remain.
func (r *argReader) optionalInt(field string) (int, bool) {
	if r.err != nil || r.pos >= len(r.args) {
		return 0, false
	}
	return r.readInt(field), r.err == nil
}

// remaining returns the unread arguments and consumes them.
func (r *argReader) remaining() []any {
	if r.err != nil || r.pos >= len(r.args) {
		return nil
	}
	rest := r.args[r.pos:]
	r.pos = len(r.args)
	return rest
}

func (r *argReader) finish() error {
	if r.err != nil {
		return r.err
	}
	if r.pos < len(r.args) {
		return fmt.Errorf("%w: %d unread", ErrTrailingArguments, len(r.args)-r.pos)
	}
	return nil
}

// argParser converts textual arguments for Build. Booleans accept 0/1 and
// true/false; OSC has no other representation the boards accept.
type argParser struct {
	args []string
	pos  int
	err  error
}

func newArgParser(args []string) *argParser {
	return &argParser{args: args}
}

func (p *argParser) next(field string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	if p.pos >= len(p.args) {
		p.err = fmt.Errorf("%w: %s", ErrMissingArgument, field)
		return "", false
	}
	s := p.args[p.pos]
	p.pos++
	return s, true
}

func (p *argParser) parseInt(field string) int {
	s, ok := p.next(field)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %v", ErrArgumentType, field, err)
		return 0
	}
	return int(n)
}

func (p *argParser) parseFloat(field string) float32 {
	s, ok := p.next(field)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) {
		p.err = fmt.Errorf("%w: %s: %q is not a number", ErrArgumentType, field, s)
		return 0
	}
	return float32(f)
}

func (p *argParser) parseBool(field string) bool {
	s, ok := p.next(field)
	if !ok {
		return false
	}
	switch strings.ToLower(s) {
	case "1", "true", "on":
		return true
	case "0", "false", "off":
		return false
	}
	p.err = fmt.Errorf("%w: %s: %q is not a boolean", ErrArgumentType, field, s)
	return false
}

func (p *argParser) parseString(field string) string {
	s, _ := p.next(field)
	return s
}

// remaining returns the unparsed arguments and consumes them.
func (p *argParser) remaining() []string {
	if p.err != nil || p.pos >= len(p.args) {
		return nil
	}
	rest := p.args[p.pos:]
	p.pos = len(p.args)
	return rest
}

func (p *argParser) finish() error {
	if p.err != nil {
		return p.err
	}
	if p.pos < len(p.args) {
		return fmt.Errorf("%w: %d unread", ErrTrailingArguments, len(p.args)-p.pos)
	}
	return nil
}
