package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// A position list names 4 motors on a STEP400 and 8 on a STEP800.
const (
	minPositionList = 4
	maxPositionList = 8
)

var errPositionCount = errors.New("position list needs 4 or 8 entries")

// PositionList is the reply to GetPositionList and the automatic report
// enabled by SetPositionListReportInterval. Positions[i] belongs to motor
// i+1.
type PositionList struct {
	Positions []int
}

// Kind returns KindPositionList.
func (*PositionList) Kind() Kind { return KindPositionList }

// Address returns "/positionList".
func (*PositionList) Address() string { return "/positionList" }

func decodePositionList(r *argReader) Response {
	v := PositionList{Positions: make([]int, 0, maxPositionList)}
	for i := 1; i <= minPositionList; i++ {
		v.Positions = append(v.Positions, r.readInt("position"+strconv.Itoa(i)))
	}
	for i := minPositionList + 1; i <= maxPositionList; i++ {
		p, ok := r.optionalInt("position" + strconv.Itoa(i))
		if !ok {
			break
		}
		v.Positions = append(v.Positions, p)
	}
	return &v
}

// SetTargetPositionList sets the servo target of every motor at once.
// Positions[i] is the target of motor i+1.
type SetTargetPositionList struct {
	Positions []int
}

// Name returns "SetTargetPositionList".
func (SetTargetPositionList) Name() string { return "SetTargetPositionList" }

// Address returns "/setTargetPositionList".
func (SetTargetPositionList) Address() string { return "/setTargetPositionList" }

// Args returns the positions in motor order.
func (c SetTargetPositionList) Args() []any {
	args := make([]any, len(c.Positions))
	for i, p := range c.Positions {
		args[i] = p
	}
	return args
}

// Validate checks the list length against the board layouts.
func (c SetTargetPositionList) Validate() error {
	if n := len(c.Positions); n != minPositionList && n != maxPositionList {
		return fmt.Errorf("%w: got %d", errPositionCount, n)
	}
	return nil
}

func buildSetTargetPositionList(p *argParser) Command {
	var c SetTargetPositionList
	for _, s := range p.remaining() {
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			p.err = fmt.Errorf("%w: position: %v", ErrArgumentType, err)
			return c
		}
		c.Positions = append(c.Positions, int(n))
	}
	if err := c.Validate(); err != nil {
		p.err = err
	}
	return c
}

var _ Response = (*PositionList)(nil)
