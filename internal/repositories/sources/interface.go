package sources

import "context"

// Repository is the persistence contract for otpauth source URIs.
// Implementations are responsible for deduplication: at most one row exists
// per distinct URI.
type Repository interface {
	// Add stores a new URI. Returns common.ErrorAlreadyExists when the URI
	// is already present.
	Add(ctx context.Context, uri string) error

	// ListURIs returns all stored URIs in insertion order.
	ListURIs(ctx context.Context) ([]string, error)

	// RemoveURI removes the row matching uri. Removing a URI that is not
	// present is a no-op, not an error.
	RemoveURI(ctx context.Context, uri string) error
}
