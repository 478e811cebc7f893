package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceSequenceAt(t *testing.T) {
	seq := NewSequence([]interface{}{"a", "b", "c"})
	v, ok := seq.At(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = seq.At(3)
	assert.False(t, ok)
	_, ok = seq.At(-1)
	assert.False(t, ok)

	assert.Equal(t, 3, seq.Len())
}

func TestFuncSequenceMemoizesAndDetectsEnd(t *testing.T) {
	calls := 0
	source := []interface{}{10, 20, 30}
	seq := NewFuncSequence(func(i int) (interface{}, bool) {
		calls++
		if i >= len(source) {
			return nil, false
		}
		return source[i], true
	})

	v, ok := seq.At(0)
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = seq.At(2)
	assert.True(t, ok)
	assert.Equal(t, 30, v)

	// re-reading an already-produced index must not call gen again.
	callsBefore := calls
	_, _ = seq.At(0)
	_, _ = seq.At(1)
	assert.Equal(t, callsBefore, calls)

	assert.True(t, seq.Eov(3))
	assert.False(t, seq.Eov(2))

	assert.Equal(t, []interface{}{10, 20, 30}, seq.Materialize())
}
