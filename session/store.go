// Package session provides per-visitor cookie sessions for Gin with a
// pluggable backing store. The session carries the visitor's cart, the
// authenticated user id and flash messages; everything round-trips
// through JSON on its way to the store.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"gorm.io/gorm"
)

const (
	CookieName = "freshmart_session"
	TTL        = 24 * time.Hour
)

// Store persists session payloads keyed by session id. A missing id
// yields an empty map, not an error.
type Store interface {
	Get(ctx context.Context, id string) (map[string]any, error)
	Set(ctx context.Context, id string, data map[string]any) error
	Delete(ctx context.Context, id string) error
}

// StoreFromEnv picks the driver named by SESSION_DRIVER: "redis" needs
// REDIS_ADDR, "database" reuses the gorm handle, anything else falls
// back to the in-process memory store.
func StoreFromEnv(db *gorm.DB) Store {
	switch os.Getenv("SESSION_DRIVER") {
	case "redis":
		return NewRedisStore(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
	case "database":
		return NewDatabaseStore(db)
	default:
		return NewMemoryStore()
	}
}

// newID generates a cryptographically random 32-byte hex session id.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
