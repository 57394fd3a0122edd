package tagfilter

import (
	"reflect"
	"testing"
)

func TestRecommendedPrefixFiltering(t *testing.T) {
	t.Parallel()

	w := New([]string{"fire", "frost", "melee"})
	w.SetQuery("fr")
	if got := w.Recommended(); !reflect.DeepEqual(got, []string{"frost"}) {
		t.Fatalf("Recommended() = %v, want [frost]", got)
	}

	// Prefix matching is case-sensitive.
	w.SetQuery("Fr")
	if got := w.Recommended(); len(got) != 0 {
		t.Fatalf("Recommended() = %v, want empty for mismatched case", got)
	}

	w.SetQuery("")
	if got := w.Recommended(); !reflect.DeepEqual(got, []string{"fire", "frost", "melee"}) {
		t.Fatalf("Recommended() = %v, want full catalog", got)
	}
}

func TestSelectRemovesFromRecommended(t *testing.T) {
	t.Parallel()

	w := New([]string{"fire", "frost", "melee"})
	w.Select("fire")
	if got := w.Recommended(); !reflect.DeepEqual(got, []string{"frost", "melee"}) {
		t.Fatalf("Recommended() = %v", got)
	}
	if got := w.Selected(); !reflect.DeepEqual(got, []string{"fire"}) {
		t.Fatalf("Selected() = %v", got)
	}
}

func TestSelectDeduplicatesAndKeepsOrder(t *testing.T) {
	t.Parallel()

	w := New([]string{"fire", "frost", "melee"})
	w.Select("melee")
	w.Select("fire")
	w.Select("melee")
	if got := w.Selected(); !reflect.DeepEqual(got, []string{"melee", "fire"}) {
		t.Fatalf("Selected() = %v, want insertion order without duplicates", got)
	}
}

func TestDeselectRecomputesAgainstQuery(t *testing.T) {
	t.Parallel()

	w := New([]string{"fire", "frost", "melee"})
	w.Select("frost")
	w.SetQuery("f")
	if got := w.Recommended(); !reflect.DeepEqual(got, []string{"fire"}) {
		t.Fatalf("Recommended() = %v before deselect", got)
	}
	w.Deselect("frost")
	if got := w.Recommended(); !reflect.DeepEqual(got, []string{"fire", "frost"}) {
		t.Fatalf("Recommended() = %v after deselect", got)
	}
	w.Deselect("never-selected")
	if got := w.Selected(); len(got) != 0 {
		t.Fatalf("Selected() = %v, want empty", got)
	}
}

func TestClearResetsEverything(t *testing.T) {
	t.Parallel()

	w := New([]string{"fire", "frost"})
	w.Select("fire")
	w.SetQuery("zz")
	w.Clear()
	if w.Query() != "" {
		t.Fatalf("Query() = %q, want empty", w.Query())
	}
	if got := w.Recommended(); !reflect.DeepEqual(got, []string{"fire", "frost"}) {
		t.Fatalf("Recommended() = %v, want full catalog", got)
	}
	if got := w.Selected(); len(got) != 0 {
		t.Fatalf("Selected() = %v, want empty", got)
	}
}

func TestSuggestForItem(t *testing.T) {
	t.Parallel()

	catalog := []string{"fire", "frost", "melee", "Faith"}

	got := SuggestForItem(catalog, []string{"frost"}, "")
	if !reflect.DeepEqual(got, []string{"fire", "melee", "Faith"}) {
		t.Fatalf("SuggestForItem(empty prefix) = %v", got)
	}

	// Item edit suggestions match case-insensitively, unlike the
	// catalog filter widget.
	got = SuggestForItem(catalog, nil, "fa")
	if !reflect.DeepEqual(got, []string{"Faith"}) {
		t.Fatalf("SuggestForItem(fa) = %v", got)
	}

	got = SuggestForItem(catalog, []string{"fire", "frost", "melee", "Faith"}, "")
	if len(got) != 0 {
		t.Fatalf("SuggestForItem(all used) = %v, want empty", got)
	}
}
