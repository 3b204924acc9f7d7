package suggest

import (
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
)

// Result is the answer to one shell token.
type Result struct {
	Word        string
	Found       bool
	Matches     []string // stored words with Word as prefix, sorted
	Suggestions []string // only filled when Found is false
}

// Checker owns the trie and the prefix cache in front of it.
// Like the trie, it is meant for a single caller.
type Checker struct {
	trie  *trie.Trie
	cache *Cache
}

// NewChecker creates an empty checker caching up to cacheSize prefixes.
func NewChecker(cacheSize int) *Checker {
	return &Checker{
		trie:  trie.New(),
		cache: NewCache(cacheSize),
	}
}

// Insert adds word to the index.
func (c *Checker) Insert(word string) error {
	if err := c.trie.Insert(word); err != nil {
		return err
	}
	c.cache.Invalidate(word)
	return nil
}

// Delete unmarks word; see trie.Delete for when it reports true.
func (c *Checker) Delete(word string) (bool, error) {
	ok, err := c.trie.Delete(word)
	if ok {
		c.cache.Invalidate(word)
	}
	return ok, err
}

// Update replaces oldWord with newWord; see trie.Update.
func (c *Checker) Update(oldWord, newWord string) (bool, error) {
	ok, err := c.trie.Update(oldWord, newWord)
	if ok {
		c.cache.Invalidate(oldWord)
		c.cache.Invalidate(newWord)
	}
	return ok, err
}

// Search reports whether word is stored.
func (c *Checker) Search(word string) (bool, error) {
	return c.trie.Search(word)
}

// Complete returns the stored words starting with prefix.
func (c *Checker) Complete(prefix string) ([]string, error) {
	if words, ok := c.cache.Get(prefix); ok {
		return words, nil
	}
	words, err := c.trie.PrefixSearch(prefix)
	if err != nil {
		return nil, err
	}
	c.cache.Put(prefix, words)
	return words, nil
}

// Suggest returns the stored words within one edit of word.
func (c *Checker) Suggest(word string) ([]string, error) {
	return c.trie.Suggest(word)
}

// Check answers one token: its prefix matches, whether it is stored, and
// when it is not, the words within one edit of it.
func (c *Checker) Check(word string) (Result, error) {
	res := Result{Word: word}

	matches, err := c.Complete(word)
	if err != nil {
		return res, err
	}
	res.Matches = matches

	if res.Found, err = c.trie.Search(word); err != nil {
		return res, err
	}
	if res.Found {
		return res, nil
	}

	if res.Suggestions, err = c.trie.Suggest(word); err != nil {
		return res, err
	}
	log.Debugf("'%s' not found, %d suggestions", word, len(res.Suggestions))
	return res, nil
}

// Stats returns index and cache counters.
func (c *Checker) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": c.trie.Len(),
		"totalNodes": c.trie.Nodes(),
	}
	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
