package sequence

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes derived sequences per (antigen, gene) pair for the
// lifetime of the in-memory database. The dataset is immutable after
// load, so there is no invalidation path.
//
// Cache is safe for concurrent use: concurrent requests for the same
// key compute at most once, and cached keys are served without
// blocking unrelated keys. Errors are not cached; the computation is
// deterministic, so retries fail identically without extra cost.
type Cache struct {
	group singleflight.Group
	mu    sync.RWMutex
	seqs  map[string]string
}

// NewCache returns an empty sequence cache.
func NewCache() *Cache {
	return &Cache{seqs: make(map[string]string)}
}

// GetOrCompute returns the cached sequence for the (antigenID, gene)
// pair, invoking compute on the first request.
func (c *Cache) GetOrCompute(
	antigenID, gene string,
	compute func() (string, error),
) (string, error) {
	key := antigenID + "\x00" + gene

	c.mu.RLock()
	seq, ok := c.seqs[key]
	c.mu.RUnlock()
	if ok {
		return seq, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have stored the value between the
		// read above and entering the flight.
		c.mu.RLock()
		seq, ok := c.seqs[key]
		c.mu.RUnlock()
		if ok {
			return seq, nil
		}

		seq, err := compute()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.seqs[key] = seq
		c.mu.Unlock()
		return seq, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Len returns the number of cached (antigen, gene) pairs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seqs)
}
