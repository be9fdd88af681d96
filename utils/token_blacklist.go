package utils

import (
	"context"
	"sync"
	"time"
)

// blacklistEntry keeps expiration metadata for a revoked token.
type blacklistEntry struct {
	expiresAt time.Time
}

var (
	blacklist   = map[string]blacklistEntry{}
	blacklistMu sync.RWMutex
)

// BlacklistToken revokes a token until its natural expiration. Redis is the
// primary store so revocation survives restarts; an in-memory map covers the
// case where Redis is unreachable.
func BlacklistToken(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := GetRedis().Set(ctx, "jwt:blacklist:"+token, "1", ttl).Err(); err == nil {
		return
	}

	blacklistMu.Lock()
	blacklist[token] = blacklistEntry{expiresAt: expiresAt}
	blacklistMu.Unlock()
}

// IsTokenBlacklisted checks if a token was revoked before natural expiration.
func IsTokenBlacklisted(token string) bool {
	blacklistMu.RLock()
	entry, ok := blacklist[token]
	blacklistMu.RUnlock()
	if ok {
		if time.Now().Before(entry.expiresAt) {
			return true
		}
		blacklistMu.Lock()
		delete(blacklist, token)
		blacklistMu.Unlock()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := GetRedis().Exists(ctx, "jwt:blacklist:"+token).Result()
	if err != nil {
		// Fail open rather than locking out every caller when Redis is down.
		return false
	}
	return n > 0
}
