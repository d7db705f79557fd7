package main

import "testing"

// testCatalog declares conflicts one-directionally on purpose: keto lists
// vegan and high_carb, vegan lists carnivore, and the other entries list
// nothing. Symmetric behavior must come from the resolver, not the data.
func testCatalog() []preferenceEntry {
	return []preferenceEntry{
		{ID: "vegan", Label: "Vegan", Conflicts: []string{"carnivore"}},
		{ID: "keto", Label: "Keto", Conflicts: []string{"vegan", "high_carb"}},
		{ID: "carnivore", Label: "Carnivore"},
		{ID: "high_carb", Label: "High Carb"},
		{ID: "gluten_free", Label: "Gluten Free"},
	}
}

/* ─── findConflicts ──────────────────────────────────────────────────── */

// TestFindConflicts_SymmetricDeclaration verifies that a pair declared from
// only one side is still reported, whichever side is listed first.
func TestFindConflicts_SymmetricDeclaration(t *testing.T) {
	catalog := testCatalog()

	got := findConflicts([]string{"vegan", "keto"}, catalog)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(got), got)
	}
	if got[0].IDA != "keto" || got[0].IDB != "vegan" {
		t.Errorf("conflict pair = (%s, %s), want (keto, vegan)", got[0].IDA, got[0].IDB)
	}
	if got[0].LabelA != "Keto" || got[0].LabelB != "Vegan" {
		t.Errorf("labels = (%s, %s), want (Keto, Vegan)", got[0].LabelA, got[0].LabelB)
	}

	// Reversed selection order reports the same single pair.
	reversed := findConflicts([]string{"keto", "vegan"}, catalog)
	if len(reversed) != 1 || reversed[0] != got[0] {
		t.Errorf("selection order changed the result: %v vs %v", reversed, got)
	}
}

// TestFindConflicts_NoDuplicatesNoSelfPairs verifies that duplicate ids in
// the selection cannot produce duplicate pairs or self-conflicts.
func TestFindConflicts_NoDuplicatesNoSelfPairs(t *testing.T) {
	catalog := testCatalog()

	got := findConflicts([]string{"keto", "keto", "vegan", "vegan"}, catalog)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(got), got)
	}
	for _, c := range got {
		if c.IDA == c.IDB {
			t.Errorf("self-conflict reported: %v", c)
		}
	}
}

// TestFindConflicts_MultiplePairs verifies enumeration across a selection
// with more than one incompatible pair, in deterministic order.
func TestFindConflicts_MultiplePairs(t *testing.T) {
	catalog := testCatalog()

	got := findConflicts([]string{"keto", "vegan", "carnivore", "gluten_free"}, catalog)
	want := []preferenceConflict{
		{IDA: "carnivore", IDB: "vegan", LabelA: "Carnivore", LabelB: "Vegan"},
		{IDA: "keto", IDB: "vegan", LabelA: "Keto", LabelB: "Vegan"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d conflicts, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("conflict[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestFindConflicts_CleanSelection verifies that compatible selections and
// empty selections report nothing.
func TestFindConflicts_CleanSelection(t *testing.T) {
	catalog := testCatalog()

	if got := findConflicts([]string{"keto", "carnivore", "gluten_free"}, catalog); len(got) != 0 {
		t.Errorf("expected no conflicts, got %v", got)
	}
	if got := findConflicts(nil, catalog); len(got) != 0 {
		t.Errorf("expected no conflicts for empty selection, got %v", got)
	}
}

// TestFindConflicts_UnknownIDs verifies that ids absent from the catalog
// are treated as having empty conflict sets.
func TestFindConflicts_UnknownIDs(t *testing.T) {
	got := findConflicts([]string{"keto", "mystery_diet"}, testCatalog())
	if len(got) != 0 {
		t.Errorf("expected no conflicts with an unknown id, got %v", got)
	}
}

/* ─── isDisabled ─────────────────────────────────────────────────────── */

// TestIsDisabled_BothDirections verifies the symmetric lookup: keto lists
// vegan, vegan does not list keto, and both directions must still disable.
func TestIsDisabled_BothDirections(t *testing.T) {
	catalog := testCatalog()

	if !isDisabled("vegan", []string{"keto"}, catalog) {
		t.Error("vegan should be disabled while keto is selected (declared side)")
	}
	if !isDisabled("keto", []string{"vegan"}, catalog) {
		t.Error("keto should be disabled while vegan is selected (undeclared side)")
	}
}

// TestIsDisabled_SelectedNeverDisabled verifies that an id already in the
// selection is never reported as disabled, even amid conflicts.
func TestIsDisabled_SelectedNeverDisabled(t *testing.T) {
	catalog := testCatalog()

	if isDisabled("keto", []string{"keto", "vegan"}, catalog) {
		t.Error("a selected id must never be disabled")
	}
}

// TestIsDisabled_NoConflict verifies compatible and unknown candidates stay
// enabled.
func TestIsDisabled_NoConflict(t *testing.T) {
	catalog := testCatalog()

	if isDisabled("gluten_free", []string{"keto", "carnivore"}, catalog) {
		t.Error("gluten_free has no conflicts and should stay enabled")
	}
	if isDisabled("mystery_diet", []string{"keto", "vegan"}, catalog) {
		t.Error("unknown ids have empty conflict sets and should stay enabled")
	}
	if isDisabled("vegan", nil, catalog) {
		t.Error("nothing selected: nothing should be disabled")
	}
}
