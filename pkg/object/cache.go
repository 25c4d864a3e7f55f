package object

import (
	"go-minirt/pkg/heap"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
	"github.com/pkg/errors"
)

const defaultMethodCacheSize = 256

type selectorKey struct {
	table    heap.Word
	selector string
}

func hashSelector(k selectorKey) uint32 {
	return uint32(xxhash.Sum64String(k.selector) ^ uint64(k.table))
}

// methodCache memoises selector to slot resolution per dispatch table.
type methodCache struct {
	lru    *freelru.LRU[selectorKey, int]
	hits   uint64
	misses uint64
}

func newMethodCache(size uint32) (*methodCache, error) {
	if size == 0 {
		size = defaultMethodCacheSize
	}

	lru, err := freelru.New[selectorKey, int](size, hashSelector)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create method cache")
	}
	return &methodCache{lru: lru}, nil
}

func (c *methodCache) resolve(t *Table, selector string) (int, error) {
	key := selectorKey{t.id, selector}
	if slot, ok := c.lru.Get(key); ok {
		c.hits++
		return slot, nil
	}

	c.misses++
	slot, ok := t.Slot(selector)
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchMethod, "%s.%s", t.class, selector)
	}
	c.lru.Add(key, slot)
	return slot, nil
}
