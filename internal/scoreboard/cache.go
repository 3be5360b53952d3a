package scoreboard

import (
	"sync"
	"time"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
)

// Cache keeps one normalized event list per sport with a freshness window.
// Entries are replaced wholesale and never deleted; with four supported
// sports the cache is bounded at four entries, so there is no eviction.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[domain.SportKey]cacheEntry
}

type cacheEntry struct {
	events    []domain.Event
	fetchedAt time.Time
}

// EntrySummary describes one sport's cache state for diagnostics.
type EntrySummary struct {
	Present bool   `json:"present"`
	AgeMS   *int64 `json:"ageMs"`
}

// NewCache constructs an empty cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[domain.SportKey]cacheEntry),
	}
}

// Get returns the cached events and fetch time for a sport. ok is true only
// when an entry exists and is still within the TTL window.
func (c *Cache) Get(sport domain.SportKey) ([]domain.Event, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, present := c.entries[sport]
	if !present {
		return nil, time.Time{}, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, time.Time{}, false
	}
	return entry.events, entry.fetchedAt, true
}

// Set replaces the entry for a sport, stamps it with the current time, and
// returns the stamp so callers report the same fetch time the cache holds.
func (c *Cache) Set(sport domain.SportKey, events []domain.Event) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	fetchedAt := c.now()
	c.entries[sport] = cacheEntry{
		events:    events,
		fetchedAt: fetchedAt,
	}
	return fetchedAt
}

// Summary reports, for every supported sport, whether an entry exists and its
// age. Read-only; sports never queried report Present=false with a nil age.
func (c *Cache) Summary() map[domain.SportKey]EntrySummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := make(map[domain.SportKey]EntrySummary, len(domain.Sports()))
	for _, sport := range domain.Sports() {
		entry, present := c.entries[sport]
		if !present {
			summary[sport] = EntrySummary{}
			continue
		}
		age := c.now().Sub(entry.fetchedAt).Milliseconds()
		summary[sport] = EntrySummary{Present: true, AgeMS: &age}
	}
	return summary
}
