package cli

import (
	"context"
	"fmt"
)

// Watch streams each refreshed view to the terminal until the user presses
// Enter. The subscription is private to this command; the REPL's cached view
// keeps updating independently.
//
// The Enter keystroke comes through the app's shared reader, and Watch
// returns to the REPL only once that read completes, so the pending read
// cannot swallow the next command. A closed subscription just stops the
// stream and keeps waiting for Enter; context cancellation (process
// shutdown) is the one path that abandons the read.
func (a *App) Watch(ctx context.Context) error {
	items, cancel := a.feed.Subscribe()
	defer cancel()

	fmt.Fprintln(a.out, "watching; press Enter to stop")

	stop := make(chan struct{})
	go func() {
		defer close(stop)
		_, _ = a.reader.ReadString('\n')
	}()

	for {
		select {
		case view, ok := <-items:
			if !ok {
				items = nil
				continue
			}
			fmt.Fprintln(a.out, "---")
			printItems(a.out, view)
		case <-stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}
