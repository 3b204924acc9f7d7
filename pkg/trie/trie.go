/*
Package trie implements the word index behind wordcheck.

The index is a prefix tree over the 26 lowercase Latin letters. Every node
has a fixed array of child slots, one per letter, and a flag telling whether
the path from the root spells a stored word. Nodes are created lazily on
insert and never reclaimed: deleting a word only clears its flag.

	t := trie.New()
	_ = t.Insert("cart")
	words, _ := t.PrefixSearch("ca") // [cart]
	close, _ := t.Suggest("cort")    // [cart]

All operations validate their input and return an error wrapping
ErrInvalidCharacter for anything outside a-z. A Trie is not safe for
concurrent use; it is meant to be owned by a single caller.
*/
package trie

// Trie owns the root node and every node below it.
type Trie struct {
	root  *node
	words int
	nodes int
}

// New returns an empty trie holding only the root (empty prefix) node.
func New() *Trie {
	return &Trie{root: &node{}, nodes: 1}
}

// Insert stores word, creating any missing nodes along its path.
// Inserting a word twice has no further effect.
func (t *Trie) Insert(word string) error {
	if err := Validate(word); err != nil {
		return err
	}
	t.insert(word)
	return nil
}

func (t *Trie) insert(word string) {
	curr := t.root
	for i := 0; i < len(word); i++ {
		idx := slot(word[i])
		if curr.children[idx] == nil {
			curr.children[idx] = &node{}
			t.nodes++
		}
		curr = curr.children[idx]
	}
	if !curr.terminating {
		curr.terminating = true
		t.words++
	}
}

// find walks the path of word and returns its node, or nil when some
// child slot along the way is empty.
func (t *Trie) find(word string) *node {
	curr := t.root
	for i := 0; i < len(word); i++ {
		curr = curr.children[slot(word[i])]
		if curr == nil {
			return nil
		}
	}
	return curr
}

// Delete unmarks word. It reports false only when the path of word does not
// exist; if the path exists it reports true even when word was merely a
// prefix of other stored words. Nodes are never pruned.
func (t *Trie) Delete(word string) (bool, error) {
	if err := Validate(word); err != nil {
		return false, err
	}
	return t.unmark(word), nil
}

func (t *Trie) unmark(word string) bool {
	n := t.find(word)
	if n == nil {
		return false
	}
	if n.terminating {
		t.words--
	}
	n.terminating = false
	return true
}

// Update deletes oldWord and, if Delete reported true, inserts newWord.
// Both words are validated before anything is changed.
func (t *Trie) Update(oldWord, newWord string) (bool, error) {
	if err := Validate(oldWord); err != nil {
		return false, err
	}
	if err := Validate(newWord); err != nil {
		return false, err
	}
	if !t.unmark(oldWord) {
		return false, nil
	}
	t.insert(newWord)
	return true, nil
}

// Search reports whether word is stored.
func (t *Trie) Search(word string) (bool, error) {
	if err := Validate(word); err != nil {
		return false, err
	}
	n := t.find(word)
	return n != nil && n.terminating, nil
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.words
}

// Nodes returns the number of allocated nodes, root included.
// It only ever grows.
func (t *Trie) Nodes() int {
	return t.nodes
}
