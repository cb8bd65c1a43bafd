package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"nlpwalk/internal/domain"
	"nlpwalk/internal/port"
)

// TagCache memoizes tagging results keyed by the token sequence.
type TagCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
	gen     uint64
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	tagged    []domain.TaggedToken
	timestamp time.Time
	gen       uint64
}

func NewTagCache(maxSize int, ttl time.Duration) *TagCache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &TagCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Each token is length-prefixed so that no two token sequences share an
// encoding.
func cacheKey(tokens []string) string {
	h := sha256.New()
	var n [binary.MaxVarintLen64]byte
	for _, t := range tokens {
		h.Write(n[:binary.PutUvarint(n[:], uint64(len(t)))])
		h.Write([]byte(t))
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func (c *TagCache) Get(tokens []string) ([]domain.TaggedToken, bool) {
	key := cacheKey(tokens)

	c.mu.RLock()
	entry, exists := c.entries[key]
	currentGen := c.gen
	c.mu.RUnlock()

	if !exists {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.gen != currentGen {
		c.mu.Lock()
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.moveToEnd(key)
	c.mu.Unlock()
	return clone(entry.tagged), true
}

func (c *TagCache) Put(tokens []string, tagged []domain.TaggedToken) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(tokens)
	entry := &cacheEntry{
		tagged:    clone(tagged),
		timestamp: time.Now(),
		gen:       c.gen,
	}

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = entry
	c.order = append(c.order, key)
}

// Invalidate drops every entry, e.g. after the tagger model changes.
func (c *TagCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.gen++
}

func (c *TagCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *TagCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *TagCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *TagCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *TagCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func clone(tagged []domain.TaggedToken) []domain.TaggedToken {
	if tagged == nil {
		return nil
	}
	out := make([]domain.TaggedToken, len(tagged))
	copy(out, tagged)
	return out
}

// CachedTagger wraps a tagger with a TagCache. Failed taggings are not cached.
type CachedTagger struct {
	tagger port.Tagger
	cache  *TagCache
}

var _ port.Tagger = (*CachedTagger)(nil)

func NewCachedTagger(tagger port.Tagger, cache *TagCache) *CachedTagger {
	return &CachedTagger{
		tagger: tagger,
		cache:  cache,
	}
}

func (t *CachedTagger) Tag(tokens []string) ([]domain.TaggedToken, error) {
	if tagged, hit := t.cache.Get(tokens); hit {
		return tagged, nil
	}

	tagged, err := t.tagger.Tag(tokens)
	if err != nil {
		return nil, err
	}

	t.cache.Put(tokens, tagged)
	return tagged, nil
}

func (t *CachedTagger) Cache() *TagCache {
	return t.cache
}
