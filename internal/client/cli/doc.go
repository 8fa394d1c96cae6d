// Package cli provides the interactive storefront command-line client.
//
// It wires the application services into a REPL. On start it runs the
// session bootstrap once, so a user with a stored session lands signed in,
// and starts a background watcher that reports API reachability.
//
// Key features:
//   - Register / Login / Logout / WhoAmI
//   - Home (package list), search with history, brand filter, package detail
//   - Place and list orders
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
