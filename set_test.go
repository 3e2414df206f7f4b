package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("zero value is usable", func(t *testing.T) {
		var s Set[string]
		assert.False(t, s.Has("a"))
		s.Add("a", "b")
		assert.True(t, s.Has("a"))
		assert.True(t, s.Has("b"))
		assert.False(t, s.Has("c"))
	})
	t.Run("adding twice is a no-op", func(t *testing.T) {
		var s Set[int]
		s.Add(1)
		s.Add(1)
		assert.Len(t, s, 1)
	})
}
