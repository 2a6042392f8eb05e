package generator

// Cache memoizes values by absolute path. Values are computed at most once
// per key and never evicted; failed computations are not stored.
type Cache[V any] struct {
	entries map[string]V
}

// NewCache creates an empty cache
func NewCache[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// GetOrCompute returns the value stored under key, calling compute to fill
// it on a miss.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = v
	return v, nil
}

func (c *Cache[V]) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

func (c *Cache[V]) Len() int {
	return len(c.entries)
}
