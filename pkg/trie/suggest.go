package trie

// pending is a queued node together with the path that reaches it.
type pending struct {
	n    *node
	path string
}

// Suggest returns the stored words within one edit of word (see IsOneEdit),
// which includes word itself when it is stored.
//
// Every node of the tree is visited breadth first; the scan is not limited
// to a prefix or a length window. Results are deduplicated through a set and
// come back in the set's iteration order, which is unspecified.
func (t *Trie) Suggest(word string) ([]string, error) {
	if err := Validate(word); err != nil {
		return nil, err
	}

	found := make(map[string]struct{})
	queue := []pending{{n: t.root}}
	for len(queue) > 0 {
		curr := queue[0]
		queue[0] = pending{}
		queue = queue[1:]

		if curr.n.terminating && IsOneEdit(word, curr.path) {
			found[curr.path] = struct{}{}
		}
		for i, child := range curr.n.children {
			if child != nil {
				queue = append(queue, pending{n: child, path: curr.path + string(letter(i))})
			}
		}
	}

	result := make([]string, 0, len(found))
	for w := range found {
		result = append(result, w)
	}
	return result, nil
}
