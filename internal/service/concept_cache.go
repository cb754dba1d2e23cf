package service

import (
	"sync"

	"essay-assess/internal/assess"
	"essay-assess/internal/util"

	"golang.org/x/sync/singleflight"
)

// ConceptCache memoizes key-concept extraction per (reference answer,
// question text) pair. The reference answer is immutable for a given
// question, so entries never need invalidation; Reset exists for tests
// and for scoring disjoint question sets in isolation.
//
// It is an explicit, injectable object rather than package state:
// concurrent scoring calls for the same question share one extraction
// through singleflight, and different engines can hold disjoint caches.
type ConceptCache struct {
	mu      sync.RWMutex
	entries map[string]assess.ConceptSet
	group   singleflight.Group
}

// NewConceptCache creates an empty ConceptCache.
func NewConceptCache() *ConceptCache {
	return &ConceptCache{entries: make(map[string]assess.ConceptSet)}
}

// GetOrExtract returns the cached concept set for the reference answer,
// computing it at most once per key even under concurrent first access.
// Extraction is a pure function of its inputs, so it does not matter
// which caller wins the race.
func (c *ConceptCache) GetOrExtract(referenceAnswer, questionText string) assess.ConceptSet {
	key := util.HashString(referenceAnswer + "\x00" + questionText)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	result, _, _ := c.group.Do(key, func() (interface{}, error) {
		set := assess.ExtractConcepts(assess.Normalize(referenceAnswer), questionText)
		c.mu.Lock()
		c.entries[key] = set
		c.mu.Unlock()
		return set, nil
	})
	return result.(assess.ConceptSet)
}

// Len returns the number of cached concept sets.
func (c *ConceptCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops all cached entries.
func (c *ConceptCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]assess.ConceptSet)
}
