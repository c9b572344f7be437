package client

import "sync"

// Cache keys, mirroring what a browser client would keep in local storage.
const (
	cacheKeyUser         = "auth_user"
	cacheKeyRole         = "auth_role"
	cacheKeyRefreshToken = "auth_refresh_token"
	cacheKeyExpiresAt    = "auth_expires_at"
)

// TokenCache is the session's persistent store for auth state that must
// survive a restart. Implementations may back it with a file, a keyring or
// anything else.
type TokenCache interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryTokenCache is the in-process default.
type MemoryTokenCache struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{values: make(map[string]string)}
}

func (c *MemoryTokenCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *MemoryTokenCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

func (c *MemoryTokenCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
}
