package trie

// IsOneEdit reports whether a and b differ by at most one substitution,
// insertion or deletion of a single byte. Identical strings qualify.
// Transpositions count as two edits.
func IsOneEdit(a, b string) bool {
	la, lb := len(a), len(b)
	if la-lb > 1 || lb-la > 1 {
		return false
	}

	i, j, edits := 0, 0, 0
	for i < la && j < lb {
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		edits++
		if edits > 1 {
			return false
		}
		switch {
		case la > lb:
			i++
		case la < lb:
			j++
		default:
			i++
			j++
		}
	}
	return true
}
