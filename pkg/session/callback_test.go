package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepseries/stepseries-go/pkg/catalog"
)

func TestRegistryAddIdempotent(t *testing.T) {
	r := newRegistry()
	cb := NewCallback(func(catalog.Response) {})

	assert.True(t, r.add(catalog.KindBusy, cb))
	assert.False(t, r.add(catalog.KindBusy, cb))
	assert.Equal(t, 1, r.count(catalog.KindBusy))

	// The same handle may be registered under another kind.
	assert.True(t, r.add(catalog.KindHiZ, cb))
}

func TestRegistryRemove(t *testing.T) {
	r := newRegistry()
	a := NewCallback(func(catalog.Response) {})
	b := NewCallback(func(catalog.Response) {})
	r.add(catalog.KindBusy, a)
	r.add(catalog.KindBusy, b)
	r.add(catalog.Any, a)

	assert.Equal(t, 2, r.remove(a))
	assert.Equal(t, []*Callback{b}, r.targets(catalog.KindBusy))
	assert.Equal(t, 0, r.count(catalog.Any))

	assert.Equal(t, 0, r.remove(a), "removing twice is a no-op")
	assert.Equal(t, 0, r.remove(NewCallback(nil)), "removing an unknown callback is a no-op")
}

func TestRegistryTargetsOrder(t *testing.T) {
	r := newRegistry()
	first := NewCallback(func(catalog.Response) {})
	second := NewCallback(func(catalog.Response) {})
	third := NewCallback(func(catalog.Response) {})

	r.add(catalog.Any, first)
	r.add(catalog.KindBusy, second)
	r.add(catalog.Any, third)
	r.add(catalog.KindHiZ, third)

	assert.Equal(t, []*Callback{first, second, third}, r.targets(catalog.KindBusy))
	assert.Equal(t, []*Callback{first, third}, r.targets(catalog.KindHiZ))
}

func TestRegistryTargetsDeduplicates(t *testing.T) {
	r := newRegistry()
	cb := NewCallback(func(catalog.Response) {})
	r.add(catalog.KindBusy, cb)
	r.add(catalog.Any, cb)

	assert.Equal(t, []*Callback{cb}, r.targets(catalog.KindBusy))
}

func TestRegistryParseErrorsReachWildcardOnly(t *testing.T) {
	r := newRegistry()
	typed := NewCallback(func(catalog.Response) {})
	wild := NewCallback(func(catalog.Response) {})
	r.add(catalog.KindParseError, typed)
	r.add(catalog.Any, wild)

	assert.Equal(t, []*Callback{wild}, r.targets(catalog.KindParseError))
}

func TestTypedCallback(t *testing.T) {
	var got []int
	cb := Typed(func(b *catalog.Busy) { got = append(got, b.MotorID) })

	cb.Call(&catalog.Busy{MotorID: 3})
	cb.Call(&catalog.HiZ{MotorID: 4})

	assert.Equal(t, []int{3}, got)
}
