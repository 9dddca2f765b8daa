package services

import (
	"reflect"
	"testing"
)

func TestOrderedSetDeduplicatesAndKeepsOrder(t *testing.T) {
	t.Parallel()

	set := newOrderedSet()
	set.Add("Zinc A.A.C.")
	set.Add("Quercetin")
	set.Add("Zinc A.A.C.")
	set.Add("MCT Powder")

	want := []string{"Zinc A.A.C.", "Quercetin", "MCT Powder"}
	if got := set.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}

	if !set.Contains("Quercetin") {
		t.Fatal("expected set to contain an added value")
	}
	if set.Contains("Ashwagandha") {
		t.Fatal("expected set not to contain an absent value")
	}
}

func TestOrderedSetValuesReturnsCopy(t *testing.T) {
	t.Parallel()

	set := newOrderedSet()
	set.Add("Probiotic")

	values := set.Values()
	values[0] = "mutated"

	if got := set.Values()[0]; got != "Probiotic" {
		t.Fatalf("expected internal slice untouched, got %q", got)
	}
}
