// rupcache provides a RAM cache of serialized rupture summaries for
// earthquake sources.  Enumerating and serializing a large source is much
// more expensive than serving the result, so summaries are built once per
// source through groupcache and shared between requests.
package rupcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/GeoNet/hazard/internal/eq/model"
	"github.com/golang/groupcache"
)

// A Summary is one rupture of a source as served to clients.
type Summary struct {
	Magnitude float64 `json:"magnitude"`
	Rate      float64 `json:"rate"`
	Rake      float64 `json:"rake"`
}

// A Lookup resolves a source id to a source.  It must be safe for concurrent
// use.
type Lookup func(id int) (model.Source, bool)

type Cache struct {
	lookup Lookup
	group  *groupcache.Group
}

// InitCache returns a Cache ready for use.
// size is the max size in bytes of the RAM cache for serialized summaries.
func InitCache(name string, size int64, lookup Lookup) *Cache {
	c := &Cache{lookup: lookup}
	c.group = groupcache.NewGroup(name, size, groupcache.GetterFunc(c.getter))
	return c
}

// Ruptures returns the rupture summaries for the source with id.  The result
// is cached; sources are immutable after model load so entries never need
// busting.
func (c *Cache) Ruptures(id int) ([]Summary, error) {
	var b []byte

	err := c.group.Get(nil, strconv.Itoa(id), groupcache.AllocatingByteSliceSink(&b))
	if err != nil {
		return nil, err
	}

	var s []Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	return s, nil
}

// Stats returns the main cache stats for logging.
func (c *Cache) Stats() groupcache.CacheStats {
	return c.group.CacheStats(groupcache.MainCache)
}

func (c *Cache) getter(ctx context.Context, key string, dest groupcache.Sink) error {
	id, err := strconv.Atoi(key)
	if err != nil {
		return fmt.Errorf("bad cache key %q: %w", key, err)
	}

	src, ok := c.lookup(id)
	if !ok {
		return fmt.Errorf("no source with id %d", id)
	}

	rr, err := src.Ruptures()
	if err != nil {
		return err
	}

	s := make([]Summary, 0, src.Size())
	for rr.Next() {
		r := rr.Rupture()
		s = append(s, Summary{Magnitude: r.Mag, Rate: r.Rate, Rake: r.Rake})
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return dest.SetBytes(b)
}
