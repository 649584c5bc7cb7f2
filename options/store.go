package options

import "sort"

// Store keeps named option values for one writer session. The set of
// supported names is fixed at construction; mutations addressing a name
// outside that set are silently ignored.
//
// NOTE: the silent-ignore policy lets callers probe optional capabilities of
// a writer without failing, but it also swallows typos - a misspelled option
// name configures nothing and reports nothing. Kept for compatibility with
// existing callers; do not upgrade to an error without a migration path.
//
// A store belongs to exactly one writer and is not safe for concurrent use.
type Store struct {
	supported map[Name]struct{}
	values    map[Name]Value
}

// NewStore creates a store supporting exactly the given names. Defaults are
// applied through the same whitelist, so a default under an unsupported name
// is dropped as well.
func NewStore(supported []Name, defaults map[Name]Value) *Store {
	s := &Store{
		supported: make(map[Name]struct{}, len(supported)),
		values:    make(map[Name]Value),
	}
	for _, n := range supported {
		s.supported[n] = struct{}{}
	}
	for n, v := range defaults {
		s.Set(n, v)
	}
	return s
}

// Supported reports whether the store accepts the given name.
func (s *Store) Supported(name Name) bool {
	_, ok := s.supported[name]
	return ok
}

// SupportedNames returns the whitelist in lexical order.
func (s *Store) SupportedNames() []Name {
	out := make([]Name, 0, len(s.supported))
	for n := range s.supported {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Set stores v under name, replacing any previous scalar or list. An
// unsupported name is a no-op.
func (s *Store) Set(name Name, v Value) {
	if !s.Supported(name) {
		return
	}
	s.values[name] = v
}

// Add accumulates v under name: an unset option becomes a one-element list,
// a scalar is promoted to a two-element list, a list grows by one. An
// unsupported name is a no-op.
func (s *Store) Add(name Name, v Value) {
	if !s.Supported(name) {
		return
	}
	existing, ok := s.values[name]
	if !ok {
		s.values[name] = List(v)
		return
	}
	s.values[name] = existing.appended(v)
}

// Get returns the stored value and whether the option was ever set, so an
// unset option is distinguishable from one set to a zero value.
func (s *Store) Get(name Name) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}
