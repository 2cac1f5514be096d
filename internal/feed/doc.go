// Package feed maintains the live collection of OTP entries shown to the
// user and keeps their codes fresh.
//
// # Overview
//
// A Feed owns one authoritative snapshot of entries. The snapshot is advanced
// exclusively by a serialized stream of events: periodic regenerate ticks
// emitted by an internal scheduler, and delete requests triggered through a
// DisplayItem. Both producers submit into one ordered channel; a single
// reducer goroutine consumes it, so exactly one event is applied at a time
// and no locking of the collection is needed.
//
// Every reduction replaces the snapshot wholesale with a new value and
// publishes a read-only projection ([]DisplayItem) to all subscribers, so a
// reader holding a previous view is never perturbed.
//
// # Lifecycle
//
//	f := feed.New(store, parser, factory, logger)
//	if err := f.Start(ctx); err != nil { ... }
//	items, cancel := f.Subscribe()
//	...
//	f.Close()
//	<-f.Done()
//
// Closing stops future ticks; events already queued are drained before the
// reducer exits.
package feed
