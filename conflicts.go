package main

import "sort"

// preferenceEntry is one dietary-preference tag in the catalog. Conflicts
// are declared one-directionally by convention (e.g. "keto" may list
// "vegan" without vegan listing keto back); resolution must treat the
// relation as symmetric.
type preferenceEntry struct {
	ID        string   `json:"id"        db:"id"`
	Label     string   `json:"label"     db:"label"`
	Conflicts []string `json:"conflicts" db:"conflicts"`
}

// preferenceConflict is one incompatible pair found within a selection.
type preferenceConflict struct {
	IDA    string `json:"id_a"`
	IDB    string `json:"id_b"`
	LabelA string `json:"label_a"`
	LabelB string `json:"label_b"`
}

// catalogIndex builds lookup maps from a catalog: label by id, and the
// declared (one-directional) conflict set per id. Unknown ids simply won't
// appear, which downstream code treats as an empty conflict set.
func catalogIndex(catalog []preferenceEntry) (labels map[string]string, conflicts map[string]map[string]bool) {
	labels = make(map[string]string, len(catalog))
	conflicts = make(map[string]map[string]bool, len(catalog))
	for _, e := range catalog {
		labels[e.ID] = e.Label
		set := make(map[string]bool, len(e.Conflicts))
		for _, c := range e.Conflicts {
			set[c] = true
		}
		conflicts[e.ID] = set
	}
	return labels, conflicts
}

// conflictsWith reports whether a and b are incompatible, checking both
// declaration directions. A naive single-direction check misses roughly
// half of all conflicts because the catalog only declares each pair from
// one side.
func conflictsWith(a, b string, declared map[string]map[string]bool) bool {
	if a == b {
		return false
	}
	return declared[a][b] || declared[b][a]
}

// findConflicts enumerates every unordered pair within the selection where
// either side declares the other as a conflict. Each pair is reported once
// and ids never pair with themselves. Output order is deterministic
// (selection sorted, pairs in lexicographic order) so callers can render
// a stable conflict list.
func findConflicts(selected []string, catalog []preferenceEntry) []preferenceConflict {
	labels, declared := catalogIndex(catalog)

	// Dedupe and sort the selection so duplicate ids can't produce
	// duplicate pairs.
	seen := make(map[string]bool, len(selected))
	ids := make([]string, 0, len(selected))
	for _, id := range selected {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var found []preferenceConflict
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if conflictsWith(ids[i], ids[j], declared) {
				found = append(found, preferenceConflict{
					IDA:    ids[i],
					IDB:    ids[j],
					LabelA: labels[ids[i]],
					LabelB: labels[ids[j]],
				})
			}
		}
	}
	return found
}

// isDisabled reports whether candidateID should be greyed out given the
// current selection: true when the candidate is not itself selected and it
// conflicts (in either declaration direction) with any selected id.
// Unknown ids have empty conflict sets, so they are never disabled.
func isDisabled(candidateID string, selected []string, catalog []preferenceEntry) bool {
	_, declared := catalogIndex(catalog)

	for _, id := range selected {
		if id == candidateID {
			// Already selected — never disable the user's own choice.
			return false
		}
	}
	for _, id := range selected {
		if conflictsWith(candidateID, id, declared) {
			return true
		}
	}
	return false
}
