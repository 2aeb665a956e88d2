package wfc

import "iter"

// PatternEntry is a cell's private instance of a catalog pattern: the
// catalog index plus whether the pattern is still admissible here.
type PatternEntry struct {
	Pattern    int
	Admissible bool
}

// Filter is a lazy view over the admissible entries of a cell. It holds no
// state of its own, so every enumeration reads the flags as they are now.
type Filter struct {
	entries []PatternEntry
}

// Admissible returns the filter over entries.
func Admissible(entries []PatternEntry) Filter {
	return Filter{entries: entries}
}

// Each calls fn for every admissible entry in stored order with its index.
// Enumeration stops early when fn returns false.
func (f Filter) Each(fn func(e PatternEntry, idx int) bool) {
	for i := range f.entries {
		if !f.entries[i].Admissible {
			continue
		}
		if !fn(f.entries[i], i) {
			return
		}
	}
}

// All is Each as a range-over-func sequence of (index, entry).
func (f Filter) All() iter.Seq2[int, PatternEntry] {
	return func(yield func(int, PatternEntry) bool) {
		f.Each(func(e PatternEntry, idx int) bool {
			return yield(idx, e)
		})
	}
}

// Count returns the number of admissible entries.
func (f Filter) Count() int {
	n := 0
	f.Each(func(PatternEntry, int) bool {
		n++
		return true
	})
	return n
}

// Any reports whether at least one entry is admissible.
func (f Filter) Any() bool {
	found := false
	f.Each(func(PatternEntry, int) bool {
		found = true
		return false
	})
	return found
}
