package utils

// DuplicateFilter remembers words it has already seen
type DuplicateFilter struct {
	seenWords map[string]struct{}
}

// NewDuplicateFilter creates an empty filter
func NewDuplicateFilter() *DuplicateFilter {
	return &DuplicateFilter{seenWords: make(map[string]struct{})}
}

// ShouldInclude returns true the first time a word is seen, false afterwards
func (f *DuplicateFilter) ShouldInclude(word string) bool {
	if _, ok := f.seenWords[word]; ok {
		return false
	}
	f.seenWords[word] = struct{}{}
	return true
}

// Len returns the number of distinct words seen
func (f *DuplicateFilter) Len() int {
	return len(f.seenWords)
}
