package feed

import "context"

// run is the single consumer of the event channel. It owns the current
// snapshot for the whole lifetime of the feed; no other goroutine ever
// touches it. Events are applied strictly one at a time in arrival order.
// On cancellation, events already queued are drained before exiting.
func (f *Feed) run(ctx context.Context, current Snapshot) {
	defer close(f.done)
	defer f.pub.close()

	for {
		select {
		case ev := <-f.events:
			current = f.reduce(ctx, current, ev)
		case <-ctx.Done():
			for {
				select {
				case ev := <-f.events:
					current = f.reduce(ctx, current, ev)
				default:
					return
				}
			}
		}
	}
}

// reduce applies one event, producing a wholly new snapshot, and publishes
// its projection. Reduction never runs re-entrantly: it is only ever called
// from run.
func (f *Feed) reduce(ctx context.Context, current Snapshot, ev Event) Snapshot {
	var next Snapshot

	switch e := ev.(type) {
	case Regenerate:
		next = f.regenerateAll(ctx, current)
	case Delete:
		next = removeByURI(current, e.Entry.URI)
		// The store removal is attempted even when the entry is already
		// gone from the collection; the store treats absence as a no-op.
		// WithoutCancel so a delete queued before shutdown still lands.
		if err := f.store.RemoveURI(context.WithoutCancel(ctx), e.Entry.URI); err != nil {
			f.logger.Error(ctx, "failed to remove uri from store", "error", err)
		}
	default:
		f.logger.Warn(ctx, "ignoring unknown event type")
		return current
	}

	f.pub.publish(f.project(next))
	return next
}

// regenerateAll rebuilds every entry with a freshly generated code,
// preserving order and count. A failing generator isolates to its own entry:
// the previous code is kept and the error logged.
func (f *Feed) regenerateAll(ctx context.Context, current Snapshot) Snapshot {
	next := make(Snapshot, len(current))
	for i, e := range current {
		code, err := e.gen.Generate()
		if err != nil {
			f.logger.Error(ctx, "code generation failed, keeping previous code",
				"account", e.AccountName, "error", err)
			code = e.Code
		}
		next[i] = Entry{
			Code:        code,
			AccountName: e.AccountName,
			Issuer:      e.Issuer,
			URI:         e.URI,
			gen:         e.gen,
		}
	}
	return next
}

// removeByURI returns a new snapshot without the entry whose source URI
// matches. Identity is the URI, not field equality: two accounts may
// transiently share code, name, and issuer, and only one of them is the
// deletion target.
func removeByURI(current Snapshot, uri string) Snapshot {
	next := make(Snapshot, 0, len(current))
	for _, e := range current {
		if e.URI == uri {
			continue
		}
		next = append(next, e)
	}
	return next
}

// project maps a snapshot, entry by entry in order, onto display items. Each
// item's Delete closure captures the exact entry value it was derived from,
// so a delete issued against a stale view still targets the right entry.
func (f *Feed) project(s Snapshot) []DisplayItem {
	items := make([]DisplayItem, len(s))
	for i, e := range s {
		entry := e
		items[i] = DisplayItem{
			Code:    e.Code,
			Account: e.AccountName,
			Issuer:  e.Issuer,
			Delete: func() error {
				return f.submit(Delete{Entry: entry})
			},
		}
	}
	return items
}
