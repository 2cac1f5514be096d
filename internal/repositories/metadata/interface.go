// Package metadata stores small key/value vault metadata, such as the
// Argon2 salt and the master-key verifier.
package metadata

import "context"

// Keys used by the vault unlock flow.
const (
	KeySalt     = "salt"
	KeyVerifier = "verifier"
)

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
}
