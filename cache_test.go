package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnceMapRebuildsAfterPanic(t *testing.T) {
	var m onceMap[int, *string]
	calls := 0
	build := func() *string {
		calls++
		if calls == 1 {
			panic("first build fails")
		}
		v := "built"
		return &v
	}

	assert.Panics(t, func() { m.getOrBuild(1, build) })

	first, found := m.getOrBuild(1, build)
	assert.True(t, found)
	if assert.NotNil(t, first) {
		assert.Equal(t, "built", *first)
	}

	second, _ := m.getOrBuild(1, build)
	assert.Same(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestOnceMapReset(t *testing.T) {
	var m onceMap[string, int]
	v, found := m.getOrBuild("a", func() int { return 1 })
	assert.Equal(t, 1, v)
	assert.False(t, found)
	assert.Equal(t, 1, m.len())

	m.reset()
	assert.Equal(t, 0, m.len())

	v, found = m.getOrBuild("a", func() int { return 2 })
	assert.Equal(t, 2, v)
	assert.False(t, found)
}

func TestLazyRetriesAfterPanic(t *testing.T) {
	calls := 0
	cell := newLazy(func() string {
		calls++
		if calls == 1 {
			panic("load failed")
		}
		return "loaded"
	})

	assert.Panics(t, func() { cell.get() })
	assert.Equal(t, "loaded", cell.get())
	assert.Equal(t, "loaded", cell.get())
	assert.Equal(t, 2, calls)

	assert.Equal(t, "x", fixed("x").get())
	var missing *lazy[int]
	assert.Equal(t, 0, missing.get())
}
