package feed

import (
	"context"
	"fmt"
)

// SkippedURI records one stored URI that could not be turned into an entry
// during bootstrap.
type SkippedURI struct {
	Index int // position in the store listing
	Err   error
}

// Bootstrap builds the seed snapshot: it lists every stored URI in order,
// parses each one, binds a generator to it, and generates the initial code.
//
// A URI that fails to parse or generate is skipped and reported rather than
// aborting the whole collection; the returned snapshot keeps the store's
// ordering for the entries that succeeded. A store listing failure is fatal.
func Bootstrap(ctx context.Context, store SourceStore, parser Parser, factory GeneratorFactory) (Snapshot, []SkippedURI, error) {
	uris, err := store.ListURIs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list uris: %w", err)
	}

	snapshot := make(Snapshot, 0, len(uris))
	var skipped []SkippedURI

	for i, uri := range uris {
		params, err := parser.Parse(uri)
		if err != nil {
			skipped = append(skipped, SkippedURI{Index: i, Err: fmt.Errorf("parse: %w", err)})
			continue
		}

		gen, err := factory.New(params)
		if err != nil {
			skipped = append(skipped, SkippedURI{Index: i, Err: fmt.Errorf("bind generator: %w", err)})
			continue
		}

		code, err := gen.Generate()
		if err != nil {
			skipped = append(skipped, SkippedURI{Index: i, Err: fmt.Errorf("initial code: %w", err)})
			continue
		}

		snapshot = append(snapshot, Entry{
			Code:        code,
			AccountName: params.AccountName,
			Issuer:      params.Issuer,
			URI:         uri,
			gen:         gen,
		})
	}

	return snapshot, skipped, nil
}
