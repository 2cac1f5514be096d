package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Delete removes the arg-th entry (1-based, as printed by List) from the
// collection and the vault. The removal request carries the exact displayed
// entry, so a list that shifted since the last print cannot misdirect it.
func (a *App) Delete(_ context.Context, arg string) error {
	items := a.currentItems()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		return fmt.Errorf("delete expects an entry number between 1 and %d", len(items))
	}

	item := items[n-1]
	if err := item.Delete(); err != nil {
		return fmt.Errorf("request deletion: %w", err)
	}

	fmt.Fprintf(a.out, "deleted %s\n", item.Account)
	return nil
}
