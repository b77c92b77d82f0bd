// Package insight holds the derived views computed over fetched records:
// grouping, per-day weather aggregates and price trends.
package insight

// Groups is a partition of records keyed by K. Keys keep first-seen order.
type Groups[K comparable, T any] struct {
	keys  []K
	items map[K][]T
}

// GroupBy partitions items by key. Every item lands in exactly one group
// and items keep their input order within a group.
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{items: make(map[K][]T)}
	for _, item := range items {
		k := key(item)
		if _, ok := g.items[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(g.items[k], item)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Groups[K, T]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

func (g *Groups[K, T]) Get(key K) []T {
	return g.items[key]
}

func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// Each visits the groups in key order.
func (g *Groups[K, T]) Each(fn func(key K, items []T)) {
	for _, k := range g.keys {
		fn(k, g.items[k])
	}
}
