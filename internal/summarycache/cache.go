// Package summarycache memoizes full summaries keyed by a content hash of their snapshot.
package summarycache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"sync"

	"github.com/goccy/go-json"

	"github.com/Simplici0/costbook/internal/pricing"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 32

// Cache holds the most recent summaries. Oldest entries are evicted first.
type Cache struct {
	capacity int
	mu       sync.Mutex
	entries  map[string]pricing.CalculationResults
	order    []string
	hits     int
	misses   int
}

// Stats reports cache usage.
type Stats struct {
	Size   int
	Hits   int
	Misses int
}

// New creates a cache holding at most capacity summaries.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]pricing.CalculationResults),
	}
}

// Key returns the content hash of a snapshot. Map keys are encoded in sorted order,
// so equal snapshots always hash the same.
func Key(in pricing.Snapshot) (string, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// Summary returns the cached summary for in, computing and storing it on a miss.
// Failed calculations are not cached. Each call returns its own copy.
func (c *Cache) Summary(in pricing.Snapshot) (pricing.CalculationResults, error) {
	key, err := Key(in)
	if err != nil {
		return pricing.CalculationResults{}, err
	}

	c.mu.Lock()
	if res, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return clone(res), nil
	}
	c.misses++
	c.mu.Unlock()

	res, err := pricing.CalcFullSummary(in)
	if err != nil {
		return pricing.CalculationResults{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.entries[key] = clone(res)
		c.order = append(c.order, key)
		for len(c.order) > c.capacity {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}
	}
	return res, nil
}

func clone(res pricing.CalculationResults) pricing.CalculationResults {
	res.Technicians = slices.Clone(res.Technicians)
	res.ExpenseCategories = slices.Clone(res.ExpenseCategories)
	res.JobTypes = slices.Clone(res.JobTypes)
	res.Warnings = slices.Clone(res.Warnings)
	return res
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.entries), Hits: c.hits, Misses: c.misses}
}
