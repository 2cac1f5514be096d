package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/otpkeeper/internal/otpauth"
)

// Add prompts for an otpauth:// URI, validates it, and stores it in the
// vault. Entries are materialized from the store only at startup, so the new
// account shows up on the next run.
func (a *App) Add(ctx context.Context) error {
	uri, err := GetSimpleText(a.reader, "Enter otpauth:// URI", a.out)
	if err != nil {
		return fmt.Errorf("read uri: %w", err)
	}

	if _, err := otpauth.Parse(uri); err != nil {
		return err
	}

	if err := a.srcRepo.Add(ctx, uri); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "stored; the entry will appear after the next start")
	return nil
}
