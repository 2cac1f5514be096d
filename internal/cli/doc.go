// Package cli provides the interactive otpkeeper command-line client.
//
// It wires configuration, the local encrypted store, and the live code feed
// into an interactive REPL. Typical flow: prompt for the master password,
// unlock the vault, bootstrap the feed, and execute user commands.
//
// Key features:
//   - List current one-time codes
//   - Watch codes refresh live
//   - Add an otpauth:// URI to the vault
//   - Delete an entry (removes it from the vault as well)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
