package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(signed out)"
	}
	s := a.config.Email
	if loc := a.client.Location(); loc != "" {
		s += " @" + loc
	}
	return fmt.Sprintf("(%s)", s)
}

// Root signs in when credentials are configured and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Everli CLI (type 'help' for commands)")

	if a.config.Email != "" && a.config.Password != "" {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
