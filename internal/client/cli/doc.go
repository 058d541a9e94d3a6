// Package cli provides the interactive Everli command-line client.
//
// It wires configuration, logging, the session client and the slot service
// into a small REPL. Typical flow: sign in (prompting for missing
// credentials), optionally resolve the delivery location, then browse stores
// and their delivery slots.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
