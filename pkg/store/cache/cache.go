package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

// Checksum returns the key identifying a raw dataset: the hex SHA-256 of its
// bytes. Identical inputs always map to the same key.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ReportCache memoizes computed reports by input identity. It is owned by
// whoever constructs it (the HTTP layer here) and supports explicit
// invalidation; the aggregation core knows nothing about it. Oldest entries
// are evicted first once capacity is reached. Safe for concurrent use.
type ReportCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*domain.AggregateReport
	order    []string
}

// New returns a cache holding up to capacity reports. A capacity of zero or
// less disables caching entirely.
func New(capacity int) *ReportCache {
	if capacity < 0 {
		capacity = 0
	}
	return &ReportCache{
		capacity: capacity,
		entries:  make(map[string]*domain.AggregateReport),
	}
}

func (c *ReportCache) Get(key string) (*domain.AggregateReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	report, ok := c.entries[key]
	return report, ok
}

func (c *ReportCache) Put(key string, report *domain.AggregateReport) {
	if c.capacity == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = report
}

func (c *ReportCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
