package automaton

// Set is a nil-safe collection of unique comparable values.
// Add on the zero value allocates, so `var s Set[string]; s.Add("a")` works.
type Set[T comparable] map[T]struct{}

func (s *Set[T]) Add(vs ...T) {
	if *s == nil {
		*s = make(Set[T], len(vs))
	}
	for _, v := range vs {
		(*s)[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
