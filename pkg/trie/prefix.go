package trie

// PrefixSearch returns every stored word starting with prefix, in
// lexicographic order. A prefix with no path yields an empty result.
func (t *Trie) PrefixSearch(prefix string) ([]string, error) {
	if err := Validate(prefix); err != nil {
		return nil, err
	}
	n := t.find(prefix)
	if n == nil {
		return []string{}, nil
	}

	result := []string{}
	buf := make([]byte, len(prefix), len(prefix)+16)
	copy(buf, prefix)
	collect(n, buf, &result)
	return result, nil
}

// collect appends the terminating paths of the subtree at n, depth first,
// visiting child slots a through z.
func collect(n *node, path []byte, result *[]string) {
	if n.terminating {
		*result = append(*result, string(path))
	}
	for i, child := range n.children {
		if child != nil {
			collect(child, append(path, letter(i)), result)
		}
	}
}
