package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// abMachine accepts "ab" followed by one or more 'a'.
func abMachine() *Machine[string, rune] {
	return MustNew("s1", []string{"s4"},
		Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
		Edge[string, rune]{From: "s2", On: 'b', To: "s3"},
		Edge[string, rune]{From: "s3", On: 'a', To: "s4"},
		Edge[string, rune]{From: "s4", On: 'a', To: "s4"},
	)
}

// emailMachine accepts toy addresses over the alphabet {x, @, .}: one or
// more x, an @, one or more x, a dot, one or more x.
func emailMachine() *Machine[string, rune] {
	return MustNew("e1", []string{"e6"},
		Edge[string, rune]{From: "e1", On: 'x', To: "e2"},
		Edge[string, rune]{From: "e2", On: 'x', To: "e2"},
		Edge[string, rune]{From: "e2", On: '@', To: "e3"},
		Edge[string, rune]{From: "e3", On: 'x', To: "e4"},
		Edge[string, rune]{From: "e4", On: 'x', To: "e4"},
		Edge[string, rune]{From: "e4", On: '.', To: "e5"},
		Edge[string, rune]{From: "e5", On: 'x', To: "e6"},
		Edge[string, rune]{From: "e6", On: 'x', To: "e6"},
	)
}

// phoneMachine accepts phone numbers shaped ###-###-####.
func phoneMachine() *Machine[string, rune] {
	var edges []Edge[string, rune]
	digits := func(from, to string) {
		for _, d := range "0123456789" {
			edges = append(edges, Edge[string, rune]{From: from, On: d, To: to})
		}
	}
	dash := func(from, to string) {
		edges = append(edges, Edge[string, rune]{From: from, On: '-', To: to})
	}
	digits("p0", "p1")
	digits("p1", "p2")
	digits("p2", "p3")
	dash("p3", "p4")
	digits("p4", "p5")
	digits("p5", "p6")
	digits("p6", "p7")
	dash("p7", "p8")
	digits("p8", "p9")
	digits("p9", "p10")
	digits("p10", "p11")
	digits("p11", "p12")
	return MustNew("p0", []string{"p12"}, edges...)
}

func TestNew(t *testing.T) {
	t.Run("cursor starts on the initial state", func(t *testing.T) {
		m := abMachine()
		assert.Equal(t, "s1", m.Current())
		assert.Equal(t, "s1", m.Initial())
	})
	t.Run("identical duplicate declarations fold into one edge", func(t *testing.T) {
		m, err := New("s1", []string{"s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
		)
		assert.NoError(t, err)
		assert.Len(t, m.Edges(), 1)
	})
	t.Run("conflicting edges fail construction", func(t *testing.T) {
		m, err := New("s1", []string{"s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s3"},
		)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrNondeterministic)
	})
	t.Run("duplicate terminals fold away", func(t *testing.T) {
		m := MustNew("s1", []string{"s2", "s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
		)
		assert.Equal(t, []string{"s2"}, m.Terminals())
	})
	t.Run("terminal states may sit outside the transition table", func(t *testing.T) {
		m := MustNew[string, rune]("s1", []string{"s1", "ghost"})
		assert.Equal(t, []string{"s1", "ghost"}, m.Terminals())
		assert.Equal(t, []string{"s1"}, m.States(), "ghost has no edges, so it is not a state of the machine")
		assert.True(t, m.IsTerminal())
	})
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() { abMachine() })
	assert.Panics(t, func() {
		MustNew("s1", nil,
			Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s3"},
		)
	})
}

func TestAdvance(t *testing.T) {
	t.Run("moves the cursor along the matching edge", func(t *testing.T) {
		m := abMachine()
		assert.NoError(t, m.Advance('a'))
		assert.Equal(t, "s2", m.Current())
		assert.NoError(t, m.Advance('b'))
		assert.Equal(t, "s3", m.Current())
	})
	t.Run("refuses without a matching edge and stays put", func(t *testing.T) {
		m := abMachine()
		err := m.Advance('b')
		assert.ErrorIs(t, err, ErrNoTransition)
		assert.Equal(t, "s1", m.Current())
	})
	t.Run("reset returns the cursor to the initial state", func(t *testing.T) {
		m := abMachine()
		assert.NoError(t, m.Advance('a'))
		m.Reset()
		assert.Equal(t, "s1", m.Current())
	})
}

func TestOutEdges(t *testing.T) {
	t.Run("maps each symbol to its successor", func(t *testing.T) {
		m := emailMachine()
		assert.Equal(t, map[rune]string{'x': "e2"}, m.OutEdges())
		assert.NoError(t, m.Advance('x'))
		assert.Equal(t, map[rune]string{'x': "e2", '@': "e3"}, m.OutEdges())
	})
	t.Run("empty but non-nil on a state without out-edges", func(t *testing.T) {
		m := MustNew("s1", []string{"s2"},
			Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
		)
		assert.NoError(t, m.Advance('a'))
		assert.Empty(t, m.OutEdges())
		assert.NotNil(t, m.OutEdges())
	})
	t.Run("the returned map is a copy", func(t *testing.T) {
		m := abMachine()
		delete(m.OutEdges(), 'a')
		assert.Equal(t, map[rune]string{'a': "s2"}, m.OutEdges())
		assert.Equal(t, "s1", m.Current(), "introspection never moves the cursor")
	})
}

func TestIsTerminal(t *testing.T) {
	m := abMachine()
	assert.False(t, m.IsTerminal())
	for _, sym := range "aba" {
		assert.NoError(t, m.Advance(sym))
	}
	assert.True(t, m.IsTerminal())
}

func TestIsStuck(t *testing.T) {
	m := MustNew("s1", []string{"s2"},
		Edge[string, rune]{From: "s1", On: 'a', To: "s2"},
	)
	assert.False(t, m.IsStuck())
	assert.NoError(t, m.Advance('a'))
	assert.True(t, m.IsStuck(), "s2 has no out-edges")
	assert.True(t, m.IsTerminal(), "stuck and terminal are independent")
}

func TestIntrospection(t *testing.T) {
	m := abMachine()
	t.Run("States in declaration order, initial first", func(t *testing.T) {
		assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, m.States())
	})
	t.Run("Edges in declaration order", func(t *testing.T) {
		assert.Equal(t, []Edge[string, rune]{
			{From: "s1", On: 'a', To: "s2"},
			{From: "s2", On: 'b', To: "s3"},
			{From: "s3", On: 'a', To: "s4"},
			{From: "s4", On: 'a', To: "s4"},
		}, m.Edges())
	})
	t.Run("Alphabet lists distinct symbols in declaration order", func(t *testing.T) {
		assert.Equal(t, []rune{'a', 'b'}, m.Alphabet())
	})
	t.Run("returned slices are copies", func(t *testing.T) {
		m.States()[0] = "clobbered"
		m.Edges()[0].From = "clobbered"
		m.Terminals()[0] = "clobbered"
		m.Alphabet()[0] = 'z'
		assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, m.States())
		assert.Equal(t, "s1", m.Edges()[0].From)
		assert.Equal(t, []string{"s4"}, m.Terminals())
		assert.Equal(t, []rune{'a', 'b'}, m.Alphabet())
	})
}

func TestClone(t *testing.T) {
	m := abMachine()
	c := m.Clone()
	assert.NoError(t, c.Advance('a'))
	assert.Equal(t, "s2", c.Current())
	assert.Equal(t, "s1", m.Current(), "advancing the clone leaves the original alone")
}

func TestMachineString(t *testing.T) {
	assert.Equal(t, "Machine(4 states, 4 edges, at s1)", abMachine().String())
	var m *Machine[string, rune]
	assert.Equal(t, "<nil>", m.String())
}
