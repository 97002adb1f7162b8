// Package cache is a two level byte cache: an in-process ccache tier in front
// of an optional shared memcached tier.
package cache

import (
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"go.uber.org/zap"
)

type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

// remote is the subset of *memcache.Client the cache uses.
type remote interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type TwoLevel struct {
	local  *ccache.Cache[[]byte]
	remote remote
	// memcached does not report an item's expiration on Get, so values
	// pulled from it live this long in the local tier.
	refillTTL time.Duration
	log       *zap.Logger
}

// New builds the cache. An empty memcachedAddr keeps everything in process.
func New(localMaxSize int64, memcachedAddr string, refillTTL time.Duration, log *zap.Logger) *TwoLevel {
	if log == nil {
		log = zap.NewNop()
	}
	if localMaxSize <= 0 {
		localMaxSize = 1000
	}
	if refillTTL <= 0 {
		refillTTL = time.Minute
	}

	c := &TwoLevel{
		local:     ccache.New(ccache.Configure[[]byte]().MaxSize(localMaxSize)),
		refillTTL: refillTTL,
		log:       log,
	}
	if memcachedAddr != "" {
		c.remote = memcache.New(memcachedAddr)
		log.Info("cache: memcached tier enabled", zap.String("addr", memcachedAddr))
	}
	return c
}

func (c *TwoLevel) Get(key string) ([]byte, bool) {
	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}
	if c.remote == nil {
		return nil, false
	}

	it, err := c.remote.Get(key)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			c.log.Warn("cache: memcached get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	c.local.Set(key, it.Value, c.refillTTL)
	return it.Value, true
}

func (c *TwoLevel) Set(key string, value []byte, ttl time.Duration) {
	c.local.Set(key, value, ttl)
	if c.remote == nil {
		return
	}

	secs := int32(ttl / time.Second)
	if secs < 1 {
		secs = 1
	}
	if err := c.remote.Set(&memcache.Item{Key: key, Value: value, Expiration: secs}); err != nil {
		c.log.Warn("cache: memcached set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *TwoLevel) Delete(key string) {
	c.local.Delete(key)
	if c.remote == nil {
		return
	}
	if err := c.remote.Delete(key); err != nil && err != memcache.ErrCacheMiss {
		c.log.Warn("cache: memcached delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Stop releases the ccache worker goroutine.
func (c *TwoLevel) Stop() {
	c.local.Stop()
}

// GetJSON decodes a cached JSON value into dst.
func GetJSON(s Store, key string, dst any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func SetJSON(s Store, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Set(key, raw, ttl)
	return nil
}
