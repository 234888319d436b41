package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupWindow(t *testing.T) {
	t.Run("membership", func(t *testing.T) {
		w := NewDedupWindow(100)

		assert.False(t, w.Contains("slf spotted"))
		w.Record("slf spotted")
		assert.True(t, w.Contains("slf spotted"))
		assert.False(t, w.Contains("slf spotted "), "membership is exact string match")
	})

	t.Run("fifo eviction at capacity", func(t *testing.T) {
		w := NewDedupWindow(100)

		for i := range 101 {
			w.Record(fmt.Sprintf("post %d", i))
		}

		assert.Equal(t, 100, w.Len())
		assert.False(t, w.Contains("post 0"), "oldest entry evicted")
		for i := 1; i <= 100; i++ {
			assert.True(t, w.Contains(fmt.Sprintf("post %d", i)))
		}
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		w := NewDedupWindow(5)

		for i := range 50 {
			w.Record(fmt.Sprintf("post %d", i))
			assert.LessOrEqual(t, w.Len(), 5)
		}
	})

	t.Run("duplicate of evicted entry survives re-record", func(t *testing.T) {
		w := NewDedupWindow(2)

		w.Record("a")
		w.Record("a")
		w.Record("b") // evicts the first "a"

		assert.True(t, w.Contains("a"))
		assert.True(t, w.Contains("b"))
	})

	t.Run("zero capacity falls back to default", func(t *testing.T) {
		w := NewDedupWindow(0)

		for i := range DefaultDedupCapacity + 1 {
			w.Record(fmt.Sprintf("post %d", i))
		}
		assert.Equal(t, DefaultDedupCapacity, w.Len())
	})
}
