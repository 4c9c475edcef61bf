package domain

import "sort"

// Tally counts occurrences keyed by error ID or severity name
type Tally map[string]int

// Add increments the count for key. Empty keys are ignored so findings
// missing an attribute never pollute the tally.
func (t Tally) Add(key string) {
	if key == "" {
		return
	}
	t[key]++
}

// Total returns the sum of all counts
func (t Tally) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Entry is one (key, count) pair rendered from a tally
type Entry struct {
	Key   string
	Count int
}

// ByCountAscending returns entries sorted by count, smallest first.
// Ties are broken by key so repeated runs produce identical output.
func (t Tally) ByCountAscending() []Entry {
	entries := t.entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count < entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// ByKey returns entries sorted alphabetically by key
func (t Tally) ByKey() []Entry {
	entries := t.entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

func (t Tally) entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for k, c := range t {
		entries = append(entries, Entry{Key: k, Count: c})
	}
	return entries
}
