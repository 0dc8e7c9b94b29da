package q3log

import "sort"

// Tally is one name-to-count pair from an aggregate map, in a shape
// report formatters can sort and range over.
type Tally struct {
	Name  string
	Count int
}

// SortedTallies converts an aggregate map into a slice sorted by count
// descending. Equal counts order lexically by name; the core maps carry
// no ordering of their own, so the tie-break is a presentation choice
// made here.
func SortedTallies(m map[string]int) []Tally {
	out := make([]Tally, 0, len(m))
	for name, count := range m {
		out = append(out, Tally{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}
