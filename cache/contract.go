package cache

import (
	"fmt"

	"notes-api/models"
)

type (
	// Cache is the per-user note listing cache. Writers only ever
	// invalidate; reads populate on miss.
	Cache interface {
		Get(key string) ([]models.Note, bool)
		Set(key string, notes []models.Note)
		Invalidate(key string)
	}
)

// UserKey is the cache key for a user's note listing.
func UserKey(userID int) string {
	return fmt.Sprintf("notes.user.%d", userID)
}
