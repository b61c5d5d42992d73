package game

import "github.com/google/uuid"

// NewShareCode returns an 8-character token for read-only session sharing.
// Collisions are statistically negligible and not checked against the store.
func NewShareCode() string {
	return uuid.New().String()[:8]
}
