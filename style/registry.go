package style

// User styles start at 1 - downstream serializers reserve 0 for the format's
// built-in default cell format.
const firstStyleID = 1

// Registrar is the capability set shared by all registry flavors: intern a
// descriptor and list the distinct interned descriptors in identity order.
type Registrar interface {
	Register(s *Style) *Style
	RegisteredStyles() []*Style
}

// Registry interns style descriptors. Structurally identical descriptors
// collapse to a single entry; identities are assigned sequentially in
// first-seen order, which is also the order style definitions must be
// serialized in so that integer references emitted for cells stay valid.
//
// A registry belongs to exactly one writer session and is not safe for
// concurrent use.
type Registry struct {
	byValue map[key]*Style
	order   []*Style // identity assignment order
	nextID  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byValue: make(map[key]*Style),
		nextID:  firstStyleID,
	}
}

// Register interns s and returns the registry's canonical descriptor for its
// formatting. Submitting a descriptor that already carries an identity is a
// no-op returning the same instance - the same style is typically submitted
// once per row while streaming. A structurally equal duplicate returns the
// previously interned descriptor without minting a new identity. A nil style
// is returned as is.
func (r *Registry) Register(s *Style) *Style {
	if s == nil {
		return nil
	}
	if s.registered {
		return s
	}
	k := s.key()
	if existing, ok := r.byValue[k]; ok {
		return existing
	}
	s.id = r.nextID
	s.registered = true
	r.nextID++
	r.byValue[k] = s
	r.order = append(r.order, s)
	return s
}

// RegisteredStyles returns all distinct interned styles in identity order.
// The returned slice is a copy and safe to keep.
func (r *Registry) RegisteredStyles() []*Style {
	out := make([]*Style, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct interned styles.
func (r *Registry) Len() int {
	return len(r.order)
}
