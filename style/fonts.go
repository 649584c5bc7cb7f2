package style

// FontRegistry wraps a base Registry for formats that emit a consolidated
// font table (ODS): besides interning it keeps the set of distinct font
// names in first-registration order. Composition instead of subclassing -
// the dedup algorithm stays in one place and format-specific bookkeeping
// rides along.
type FontRegistry struct {
	base  *Registry
	seen  map[string]struct{}
	fonts []string // first-registration order
}

// NewFontRegistry creates an empty font-tracking registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		base: NewRegistry(),
		seen: make(map[string]struct{}),
	}
}

// Register interns s like Registry.Register and records the style's font
// name. Re-registration never grows the font set.
func (r *FontRegistry) Register(s *Style) *Style {
	registered := r.base.Register(s)
	if registered == nil {
		return nil
	}
	name := registered.Font().Name
	if _, ok := r.seen[name]; !ok {
		r.seen[name] = struct{}{}
		r.fonts = append(r.fonts, name)
	}
	return registered
}

// RegisteredStyles returns all distinct interned styles in identity order.
func (r *FontRegistry) RegisteredStyles() []*Style {
	return r.base.RegisteredStyles()
}

// Len returns the number of distinct interned styles.
func (r *FontRegistry) Len() int {
	return r.base.Len()
}

// UsedFonts returns distinct font names across all registered styles, each
// exactly once, in the order they first appeared. The font table serializer
// relies on this order being stable.
func (r *FontRegistry) UsedFonts() []string {
	out := make([]string, len(r.fonts))
	copy(out, r.fonts)
	return out
}
