package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

type Options struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
	Metrics     bool
}

// DefaultOptions 每个条目成本为 1，MaxCost 即最多缓存的手牌数
func DefaultOptions() Options {
	return Options{
		NumCounters: 1e6,
		MaxCost:     1 << 17,
		BufferItems: 64,
	}
}

// Cache 基于 ristretto 的本地缓存，按值类型包装
type Cache[V any] struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New[V any](opts Options) (*Cache[V], error) {
	def := DefaultOptions()
	if opts.NumCounters <= 0 {
		opts.NumCounters = def.NumCounters
	}
	if opts.MaxCost <= 0 {
		opts.MaxCost = def.MaxCost
	}
	if opts.BufferItems <= 0 {
		opts.BufferItems = def.BufferItems
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: opts.NumCounters,
		MaxCost:     opts.MaxCost,
		BufferItems: opts.BufferItems,
		Metrics:     opts.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 ristretto 缓存失败: %w", err)
	}
	return &Cache[V]{cache: c, ttl: opts.TTL}, nil
}

// Set ttl 为 0 时不过期；写入是异步的，可能被准入策略丢弃
func (c *Cache[V]) Set(key string, value V) bool {
	if c.ttl > 0 {
		return c.cache.SetWithTTL(key, value, 1, c.ttl)
	}
	return c.cache.Set(key, value, 1)
}

func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	v, ok := c.cache.Get(key)
	if !ok {
		return zero, false
	}
	out, ok := v.(V)
	if !ok {
		return zero, false
	}
	return out, true
}

func (c *Cache[V]) Delete(key string) {
	c.cache.Del(key)
}

// Wait 等待缓冲区中的写入生效
func (c *Cache[V]) Wait() {
	c.cache.Wait()
}

// Stats 命中/未命中次数，未开启 Metrics 时均为 0
func (c *Cache[V]) Stats() (hits, misses uint64) {
	return c.cache.Metrics.Hits(), c.cache.Metrics.Misses()
}

func (c *Cache[V]) Close() {
	c.cache.Close()
}
