package utils

import "strings"

// CapitalInfo holds the positions of upper-case ASCII letters in a string
type CapitalInfo struct {
	positions []int
}

// ProcessCapitals returns the lowercase form of s and where its capitals
// were. The info is nil when s had no capitals.
func ProcessCapitals(s string) (string, *CapitalInfo) {
	var info *CapitalInfo
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			if info == nil {
				info = &CapitalInfo{positions: make([]int, 0, 4)}
			}
			info.positions = append(info.positions, i)
		}
	}
	return strings.ToLower(s), info
}

// ApplyCapitals re-capitalizes word at the recorded positions that exist in it
func ApplyCapitals(word string, info *CapitalInfo) string {
	if info == nil {
		return word
	}
	b := []byte(word)
	for _, pos := range info.positions {
		if pos < len(b) && b[pos] >= 'a' && b[pos] <= 'z' {
			b[pos] -= 'a' - 'A'
		}
	}
	return string(b)
}
