package auth

import (
	"sync"
	"time"
)

// RevocationList tracks logged-out token ids until their natural
// expiry, after which the guard's expiry check takes over.
type RevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]time.Time)}
}

func (l *RevocationList) Add(jti string, expiresAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for id, exp := range l.revoked {
		if exp.Before(now) {
			delete(l.revoked, id)
		}
	}

	l.revoked[jti] = expiresAt
}

func (l *RevocationList) IsRevoked(jti string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.revoked[jti]
	return ok
}
