package automaton

import (
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

func TestLogValue(t *testing.T) {
	groupOf := func(v slog.Value) map[string]slog.Value {
		attrs := map[string]slog.Value{}
		for _, a := range v.Group() {
			attrs[a.Key] = a.Value
		}
		return attrs
	}
	t.Run("groups current, terminal and stuck", func(t *testing.T) {
		m := abMachine()
		v := LogValue(m).LogValue()
		assert.Equal(t, slog.KindGroup, v.Kind())
		attrs := groupOf(v)
		assert.Equal(t, "s1", attrs["current"].Any())
		assert.False(t, attrs["terminal"].Bool())
		assert.False(t, attrs["stuck"].Bool())
	})
	t.Run("resolves at log time, not at wrap time", func(t *testing.T) {
		m := abMachine()
		lv := LogValue(m)
		for _, sym := range "aba" {
			assert.NoError(t, m.Advance(sym))
		}
		attrs := groupOf(lv.LogValue())
		assert.Equal(t, "s4", attrs["current"].Any())
		assert.True(t, attrs["terminal"].Bool())
	})
	t.Run("nil machine logs as <nil>", func(t *testing.T) {
		var m *Machine[string, rune]
		assert.Equal(t, "<nil>", LogValue(m).LogValue().String())
	})
	t.Run("works as a slog attribute", func(t *testing.T) {
		m := abMachine()
		log := slogt.New(t)
		log.Info("constructed", "machine", LogValue(m))
	})
}
