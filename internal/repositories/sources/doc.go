// Package sources provides the persistence layer for otpauth source URIs.
//
// # Overview
//
// The package defines a Repository interface for storing, listing, and
// removing otpauth:// URI strings, and a SQLite-backed implementation
// (SQLiteRepository). Read-then-write operations run inside a transaction
// via dbx.WithTx.
//
// # Data Model
//
// Each row stores the URI encrypted with AES-GCM under the vault master key
// plus the per-row nonce. Listing preserves insertion order (rowid order),
// which downstream code relies on for stable display ordering.
//
// # Semantics
//
//   - Add rejects duplicates with common.ErrorAlreadyExists; the store, not
//     its callers, owns the at-most-one-row-per-URI invariant.
//   - RemoveURI of an absent URI is an idempotent no-op.
//
// Typical Usage
//
//	repo := sources.NewSQLiteRepository(db, masterKey)
//	_ = repo.Add(ctx, uri)
//	uris, _ := repo.ListURIs(ctx)
//	_ = repo.RemoveURI(ctx, uri)
package sources
