package pricing

import "testing"

func TestDefaultRegistry_Order(t *testing.T) {
	want := []string{
		SlugCutGuillotine, SlugCutPlotter, SlugLaser, SlugLamination, SlugPrintWide,
		SlugCuttingEdge, SlugPacking, SlugShipment, SlugSticker, SlugBanner,
	}
	entries := DefaultRegistry().Entries()
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Slug != want[i] {
			t.Fatalf("entries[%d] = %s, want %s", i, e.Slug, want[i])
		}
		if e.Calc == nil || e.Name == "" {
			t.Fatalf("entry %s is incomplete", e.Slug)
		}
	}
}

func TestRegistry_LookupAndReplace(t *testing.T) {
	r := NewRegistry(
		Entry{Slug: "a", Name: "first"},
		Entry{Slug: "b"},
		Entry{Slug: "a", Name: "second"},
	)
	e, ok := r.Lookup("a")
	if !ok || e.Name != "second" {
		t.Fatalf("Lookup(a) = %+v, %v", e, ok)
	}
	if got := r.Entries(); len(got) != 2 || got[0].Slug != "a" {
		t.Fatalf("entries = %+v, want a then b", got)
	}
	if _, ok := r.Lookup("zzz"); ok {
		t.Fatalf("unknown slug must not resolve")
	}
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	r := DefaultRegistry()
	r.Entries()[0].Slug = "changed"
	if r.Entries()[0].Slug != SlugCutGuillotine {
		t.Fatalf("Entries must not expose internal state")
	}
}
