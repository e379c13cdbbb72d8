package vin

import "sync"

// memo lazily computes and caches a (value, error) pair exactly once,
// playing the role of Rust's OnceCell in this port: no interior-mutable
// handle, just a sync.Once guarding a plain field pair.
type memo[T any] struct {
	once sync.Once
	val  T
	err  error
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.once.Do(func() {
		m.val, m.err = compute()
	})
	return m.val, m.err
}
