// Package suggest is the query layer over the trie: it answers the shell's
// per-token questions and caches prefix enumerations between mutations.
package suggest

// IChecker defines the interface the shell and the IPC server drive.
type IChecker interface {
	// Check runs prefix, exact and, on a miss, fuzzy lookup for one token
	Check(word string) (Result, error)

	// Complete returns stored words starting with prefix, sorted
	Complete(prefix string) ([]string, error)

	// Search reports whether word is stored
	Search(word string) (bool, error)

	// Suggest returns stored words within one edit of word, unordered
	Suggest(word string) ([]string, error)

	// Insert adds a word, Delete and Update follow the trie's contract
	Insert(word string) error
	Delete(word string) (bool, error)
	Update(oldWord, newWord string) (bool, error)

	// Stats returns counters about the index and the cache
	Stats() map[string]int
}
