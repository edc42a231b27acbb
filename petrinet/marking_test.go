package petrinet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMarkingDropsNonPositive(t *testing.T) {
	m := newMarking[string](map[string]int64{"a": 1, "b": 0, "c": -3})
	assert.Equal(t, int64(1), m.get("a"))
	assert.Equal(t, int64(0), m.get("b"))
	assert.Equal(t, int64(0), m.get("c"))
	_, ok := m["b"]
	assert.False(t, ok, "zero-count place must be absent, not stored")
	_, ok = m["c"]
	assert.False(t, ok, "negative-count place must be absent, not stored")
}

func TestMarkingGetAbsentIsZero(t *testing.T) {
	m := newMarking[string](nil)
	assert.Equal(t, int64(0), m.get("nowhere"))
}

func TestMarkingAddRestoresSparseInvariant(t *testing.T) {
	m := newMarking(map[string]int64{"p": 2})
	m.add("p", -2)
	_, ok := m["p"]
	assert.False(t, ok, "count reaching zero must remove the key")

	m.add("q", 3)
	assert.Equal(t, int64(3), m.get("q"))

	m.add("q", -5)
	assert.Equal(t, int64(0), m.get("q"))
	_, ok = m["q"]
	assert.False(t, ok)
}

func TestMarkingZero(t *testing.T) {
	m := newMarking(map[string]int64{"a": 5})
	m.zero("a")
	assert.Equal(t, int64(0), m.get("a"))
	_, ok := m["a"]
	assert.False(t, ok)
}

func TestMarkingSnapshotIndependence(t *testing.T) {
	m := newMarking(map[string]int64{"a": 1})
	cp := m.snapshot()
	cp.add("a", 1)
	assert.Equal(t, int64(1), m.get("a"), "mutating the snapshot must not affect the original")
	assert.Equal(t, int64(2), cp.get("a"))
}

func TestMarkingEqual(t *testing.T) {
	a := newMarking(map[string]int64{"x": 1, "y": 2})
	b := newMarking(map[string]int64{"y": 2, "x": 1})
	c := newMarking(map[string]int64{"x": 1})

	assert.True(t, a.equal(b))
	assert.False(t, a.equal(c))
	assert.False(t, c.equal(a))
}
