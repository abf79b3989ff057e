// Package memo содержит кэши для мемоизации чистых функций.
// Кэш не влияет на результат вычисления: его можно отключить (Noop) или сбросить (Purge) в любой момент.
package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache интерфейс кэша мемоизации
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Add(key K, value V)
	Purge()
	Len() int
}

// LRU ограниченный по размеру кэш с вытеснением давно неиспользуемых записей.
// Безопасен для конкурентного использования.
type LRU[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

// NewLRU создаёт LRU кэш на size записей
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("memo: create lru cache: %w", err)
	}
	return &LRU[K, V]{cache: cache}, nil
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	return c.cache.Get(key)
}

func (c *LRU[K, V]) Add(key K, value V) {
	c.cache.Add(key, value)
}

func (c *LRU[K, V]) Purge() {
	c.cache.Purge()
}

func (c *LRU[K, V]) Len() int {
	return c.cache.Len()
}

// Noop кэш, который ничего не хранит
type Noop[K comparable, V any] struct{}

func (Noop[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}

func (Noop[K, V]) Add(K, V) {}
func (Noop[K, V]) Purge()   {}
func (Noop[K, V]) Len() int { return 0 }

// New возвращает LRU на size записей или Noop, если size <= 0
func New[K comparable, V any](size int) (Cache[K, V], error) {
	if size <= 0 {
		return Noop[K, V]{}, nil
	}
	cache, err := NewLRU[K, V](size)
	if err != nil {
		return nil, err
	}
	return cache, nil
}
