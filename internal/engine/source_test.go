package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedSource_Cycles(t *testing.T) {
	src := NewScriptedSource(0, 3, 5)

	assert.Equal(t, 0, src.IntN(4))
	assert.Equal(t, 3, src.IntN(4))
	assert.Equal(t, 1, src.IntN(4), "5 mod 4")
	assert.Equal(t, 0, src.IntN(2), "wraps to first pick")
	assert.Equal(t, 4, src.Calls())
}

func TestScriptedSource_Empty(t *testing.T) {
	src := NewScriptedSource()
	assert.Equal(t, 0, src.IntN(7))
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)
	for i := 0; i < 50; i++ {
		n := i%9 + 1
		va, vb := a.IntN(n), b.IntN(n)
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0)
		assert.Less(t, va, n)
	}
}
