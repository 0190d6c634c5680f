package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type CacheRepository struct {
	cache *cache.Cache
}

func NewCacheRepository() *CacheRepository {
	// Purge expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CacheRepository{
		cache: c,
	}
}

func (r *CacheRepository) Set(key string, value interface{}, ttl time.Duration) {
	r.cache.Set(key, value, ttl)
}

func (r *CacheRepository) Get(key string) (interface{}, bool) {
	return r.cache.Get(key)
}

func (r *CacheRepository) Delete(key string) {
	r.cache.Delete(key)
}
