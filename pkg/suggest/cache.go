package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Cache keeps PrefixSearch results keyed by prefix. Keys live in a patricia
// trie so that a mutation of word w can drop exactly the cached prefixes of w.
type Cache struct {
	entries     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	hits        int
	misses      int
}

// NewCache returns a cache bounded to maxEntries prefixes. A zero bound
// disables caching.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		entries:    patricia.NewTrie(),
		accessTime: make(map[string]int64),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached result for prefix.
func (c *Cache) Get(prefix string) ([]string, bool) {
	if c.maxEntries == 0 || prefix == "" {
		return nil, false
	}
	item := c.entries.Get(patricia.Prefix(prefix))
	if item == nil {
		c.misses++
		return nil, false
	}
	c.hits++
	c.markAccessed(prefix)
	words := item.([]string)
	return append([]string{}, words...), true
}

// Put stores a copy of words under prefix, evicting the least recently
// used prefix when full.
func (c *Cache) Put(prefix string, words []string) {
	if c.maxEntries == 0 || prefix == "" {
		return
	}
	if _, ok := c.accessTime[prefix]; !ok && len(c.accessTime) >= c.maxEntries {
		c.evictLRU()
	}
	c.entries.Set(patricia.Prefix(prefix), append([]string{}, words...))
	c.markAccessed(prefix)
}

// Invalidate drops every cached prefix of word, word itself included.
func (c *Cache) Invalidate(word string) {
	if len(c.accessTime) == 0 {
		return
	}
	var stale []patricia.Prefix
	err := c.entries.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, append(patricia.Prefix(nil), p...))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting cached prefixes of %q: %v", word, err)
		return
	}
	for _, p := range stale {
		c.entries.Delete(p)
		delete(c.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes of '%s'", len(stale), word)
	}
}

// Len returns the number of cached prefixes.
func (c *Cache) Len() int {
	return len(c.accessTime)
}

// Stats returns cache counters.
func (c *Cache) Stats() map[string]int {
	return map[string]int{
		"cacheEntries": len(c.accessTime),
		"maxCache":     c.maxEntries,
		"cacheHits":    c.hits,
		"cacheMisses":  c.misses,
	}
}

func (c *Cache) markAccessed(prefix string) {
	c.accessCount++
	c.accessTime[prefix] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldest string
	var oldestTime int64 = 9223372036854775807

	for prefix, t := range c.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = prefix
		}
	}
	if oldest != "" {
		c.entries.Delete(patricia.Prefix(oldest))
		delete(c.accessTime, oldest)
		log.Debugf("Evicted prefix '%s' from cache", oldest)
	}
}
