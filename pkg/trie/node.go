package trie

// alphabetSize is the number of child slots per node, one per letter a-z.
const alphabetSize = 26

// node is one position in the alphabet-prefix space.
// Each non-nil child is owned by this node alone.
type node struct {
	children    [alphabetSize]*node
	terminating bool
}

// slot maps a validated lowercase letter to its child index.
func slot(c byte) int {
	return int(c - 'a')
}

// letter is the inverse of slot.
func letter(i int) byte {
	return byte('a' + i)
}
