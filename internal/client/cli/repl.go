package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Init(ctx context.Context) error
	Stores(ctx context.Context, args []string) error
	Availability(ctx context.Context, args []string) error
	Earliest(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Everli CLI.
//
//	Not logged in:
//	  - help                              show available commands
//	  - login                             sign in
//	  - exit | quit                       leave the program
//
//	Logged in:
//	  - init                              resolve the delivery location
//	  - stores [location]                 list stores
//	  - availability <store> [location]   delivery slots of a store
//	  - earliest [location]               first free slot per store
//	  - whoami                            session details
//
// Lines are read from reader, the same reader the login prompts use, so no
// input is buffered away from them. Errors returned by command handlers are
// ignored here; handlers log their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("everli %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: init, (s)tores [location], (a)vailability <store> [location], earliest [location], whoami, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "init", "s", "stores", "a", "availability", "earliest", "whoami":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			dispatch(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "init":
		_ = a.Init(ctx)
	case "s", "stores":
		_ = a.Stores(ctx, args)
	case "a", "availability":
		if len(args) == 0 {
			printlnFn("Usage: availability <store> [location]")
			return
		}
		_ = a.Availability(ctx, args)
	case "earliest":
		_ = a.Earliest(ctx, args)
	case "whoami":
		_ = a.WhoAmI(ctx)
	}
}
