package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/otpkeeper/internal/feed"
)

// List prints the most recent view of the collection, one entry per line.
func (a *App) List(_ context.Context) error {
	printItems(a.out, a.currentItems())
	return nil
}

func printItems(w io.Writer, items []feed.DisplayItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no entries")
		return
	}
	for i, item := range items {
		label := item.Account
		if item.Issuer != "" {
			label = item.Issuer + ": " + item.Account
		}
		fmt.Fprintf(w, "%3d  %-40s %s\n", i+1, label, item.Code)
	}
}
