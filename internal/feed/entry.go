package feed

import (
	"context"

	"github.com/dmitrijs2005/otpkeeper/internal/otpauth"
)

// Generator produces the current code for one entry.
// It must be pure given wall-clock time.
type Generator interface {
	Generate() (string, error)
}

// Parser turns an otpauth URI string into structured parameters.
type Parser interface {
	Parse(uri string) (otpauth.Params, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(uri string) (otpauth.Params, error)

func (f ParserFunc) Parse(uri string) (otpauth.Params, error) { return f(uri) }

// GeneratorFactory builds one Generator bound to the given parameters.
type GeneratorFactory interface {
	New(p otpauth.Params) (Generator, error)
}

// FactoryFunc adapts a plain function to the GeneratorFactory interface.
type FactoryFunc func(p otpauth.Params) (Generator, error)

func (f FactoryFunc) New(p otpauth.Params) (Generator, error) { return f(p) }

// SourceStore is the narrow view of the persistence layer the feed needs.
type SourceStore interface {
	ListURIs(ctx context.Context) ([]string, error)
	RemoveURI(ctx context.Context, uri string) error
}

// Entry is one tracked OTP account's live state. Entries are created only
// during bootstrap and destroyed only by a delete event; Code is the only
// field that changes, and only by whole-value replacement during reduction.
// The source URI is the entry's identity.
type Entry struct {
	Code        string
	AccountName string
	Issuer      string
	URI         string

	gen Generator
}

// Snapshot is the complete ordered collection of entries at one point in the
// event sequence. It is never mutated in place: each reduction produces a
// wholly new slice, so captured snapshots stay valid.
type Snapshot []Entry

// DisplayItem is a read-only projection of one Entry, recomputed fresh from
// every snapshot. Delete requests removal of exactly the entry this item was
// derived from, regardless of position shifts in later snapshots.
type DisplayItem struct {
	Code    string
	Account string
	Issuer  string

	Delete func() error
}
