package inmemorycache

import (
	"encoding/json"
	"sync"
	"time"
)

// PlaceCacheData is the cached outcome of a reverse-geocoding lookup.
// Only successful lookups are cached; degraded names are recomputed per
// request so a transient upstream failure doesn't stick for the TTL.
type PlaceCacheData struct {
	DisplayName string `json:"display_name"`
}

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(key string) (*PlaceCacheData, bool, error)
	Set(key string, data *PlaceCacheData, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
	}

	go provider.startCleanup()

	return provider
}

func (m *InMemoryCache) Get(key string) (*PlaceCacheData, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, key)
		return nil, false, nil
	}

	var data PlaceCacheData
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, false, err
	}

	return &data, true, nil
}

func (m *InMemoryCache) Set(key string, data *PlaceCacheData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[key] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mutex.Lock()
		now := time.Now()
		for k, v := range m.cache {
			if now.After(v.expiration) {
				delete(m.cache, k)
			}
		}
		m.mutex.Unlock()
	}
}
