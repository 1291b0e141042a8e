package match

import "sort"

// SortByInput reorders matches into the original input order of their
// File side. Matches whose File is not present in the input (or is
// empty) sort after all indexed files, ordered deterministically by
// file path and record identity.
func SortByInput(matches []Match, input []string) {
	index := make(map[string]int, len(input))
	for i, f := range input {
		if _, ok := index[f]; !ok {
			index[f] = i
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		oi, iok := index[matches[i].File]
		oj, jok := index[matches[j].File]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		}
		if matches[i].File != matches[j].File {
			return matches[i].File < matches[j].File
		}
		return recordKey(matches[i]) < recordKey(matches[j])
	})
}

func recordKey(m Match) string {
	if m.Record == nil {
		return ""
	}
	if id := m.Record.RecordID(); id != "" {
		return id
	}
	return m.Record.RecordName()
}
