package fuzzy

import "container/list"

// cache is a small LRU over query strings. The matcher runs inside a
// single-threaded editing session, so no synchronization is needed.
type cache struct {
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	query   string
	results []Result
}

func newCache(maxSize int) *cache {
	return &cache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *cache) get(query string) ([]Result, bool) {
	elem, ok := c.items[query]
	if !ok {
		return nil, false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*cacheEntry).results, true
}

func (c *cache) set(query string, results []Result) {
	if elem, ok := c.items[query]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).results = results
		return
	}
	if c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).query)
		}
	}
	c.items[query] = c.lru.PushFront(&cacheEntry{query: query, results: results})
}

func (c *cache) clear() {
	c.items = make(map[string]*list.Element)
	c.lru.Init()
}
