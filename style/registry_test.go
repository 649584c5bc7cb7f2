package style

import (
	"testing"
)

func TestRegisterAssignsIncreasingIDs(t *testing.T) {
	reg := NewRegistry()

	styles := []*Style{
		NewBuilder().Bold().Build(),
		NewBuilder().Italic().Build(),
		NewBuilder().FontName("Calibri").Build(),
	}

	prev := 0
	for i, s := range styles {
		registered := reg.Register(s)
		id, ok := registered.ID()
		if !ok {
			t.Fatalf("style %d has no identity after registration", i)
		}
		if id <= prev {
			t.Errorf("style %d: id = %d, want > %d", i, id, prev)
		}
		prev = id
	}

	got := reg.RegisteredStyles()
	if len(got) != len(styles) {
		t.Fatalf("RegisteredStyles() length = %d, want %d", len(got), len(styles))
	}
	for i := 1; i < len(got); i++ {
		prevID, _ := got[i-1].ID()
		curID, _ := got[i].ID()
		if curID <= prevID {
			t.Errorf("RegisteredStyles()[%d] id = %d, not after %d", i, curID, prevID)
		}
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := NewRegistry()

	s := NewBuilder().Bold().Build()
	first := reg.Register(s)
	second := reg.Register(first)

	if first != second {
		t.Errorf("re-registering returned a different instance")
	}
	id1, _ := first.ID()
	id2, _ := second.ID()
	if id1 != id2 {
		t.Errorf("re-registering changed identity: %d vs %d", id1, id2)
	}
	if reg.Len() != 1 {
		t.Errorf("registry size = %d after re-registration, want 1", reg.Len())
	}
}

func TestRegisterDedupsStructurally(t *testing.T) {
	reg := NewRegistry()

	a := NewBuilder().FontName("Arial").Bold().Build()
	b := NewBuilder().FontName("Arial").Bold().Build()
	c := NewBuilder().FontName("Arial").Bold().Italic().Build()

	ra := reg.Register(a)
	rb := reg.Register(b)
	rc := reg.Register(c)

	if ra != rb {
		t.Errorf("structurally equal styles were not merged")
	}
	idA, _ := ra.ID()
	idC, _ := rc.ID()
	if idA == idC {
		t.Errorf("styles differing in one field share id %d", idA)
	}
	if reg.Len() != 2 {
		t.Errorf("registry size = %d, want 2", reg.Len())
	}
}

func TestRegisterNil(t *testing.T) {
	reg := NewRegistry()
	if got := reg.Register(nil); got != nil {
		t.Errorf("Register(nil) = %v, want nil", got)
	}
	if reg.Len() != 0 {
		t.Errorf("registry size = %d after nil registration, want 0", reg.Len())
	}
}

func TestEqual(t *testing.T) {
	a := NewBuilder().FontColor("FF0000").Build()
	b := NewBuilder().FontColor("FF0000").Build()
	c := NewBuilder().FontColor("00FF00").Build()

	if !Equal(a, b) {
		t.Errorf("Equal(a, b) = false for identical formatting")
	}
	if Equal(a, c) {
		t.Errorf("Equal(a, c) = true for different colors")
	}
	if !Equal(nil, nil) {
		t.Errorf("Equal(nil, nil) = false")
	}
	if Equal(a, nil) || Equal(nil, a) {
		t.Errorf("nil compared equal to a non-nil style")
	}

	// identity must not take part in equality
	reg := NewRegistry()
	reg.Register(a)
	if !Equal(a, b) {
		t.Errorf("registration changed structural equality")
	}
}

func TestFontRegistryTracksFontsInOrder(t *testing.T) {
	reg := NewFontRegistry()

	reg.Register(NewBuilder().FontName("Arial").Build())
	reg.Register(NewBuilder().FontName("Calibri").Build())
	reg.Register(NewBuilder().FontName("Arial").Italic().Build())

	got := reg.UsedFonts()
	want := []string{"Arial", "Calibri"}
	if len(got) != len(want) {
		t.Fatalf("UsedFonts() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UsedFonts()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFontRegistryEndToEnd(t *testing.T) {
	// A and B are structurally equal, C differs: expect two identities and
	// two fonts in first-seen order.
	reg := NewFontRegistry()

	a := reg.Register(NewBuilder().FontName("Arial").Build())
	b := reg.Register(NewBuilder().FontName("Arial").Build())
	c := reg.Register(NewBuilder().FontName("Calibri").Build())

	if a != b {
		t.Errorf("A and B did not merge to one registry entry")
	}
	idA, _ := a.ID()
	idC, _ := c.ID()
	if idA == idC {
		t.Errorf("A and C share identity %d", idA)
	}
	if got := reg.Len(); got != 2 {
		t.Errorf("registry size = %d, want 2", got)
	}

	fonts := reg.UsedFonts()
	if len(fonts) != 2 || fonts[0] != "Arial" || fonts[1] != "Calibri" {
		t.Errorf("UsedFonts() = %v, want [Arial Calibri]", fonts)
	}
}

func TestFontRegistryResultIsACopy(t *testing.T) {
	reg := NewFontRegistry()
	reg.Register(NewBuilder().FontName("Arial").Build())

	fonts := reg.UsedFonts()
	fonts[0] = "mutated"

	if got := reg.UsedFonts()[0]; got != "Arial" {
		t.Errorf("UsedFonts() affected by caller mutation: %q", got)
	}
}
