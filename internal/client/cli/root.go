package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.state.User(); ok {
		s = u.Email + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the session bootstrap, starts the connectivity watcher and then
// blocks in the REPL until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the storefront CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	if o := a.auth.Restore(ctx); o.Authenticated() {
		u, _ := o.Profile()
		fmt.Fprintf(a.out, "Signed in as %s\n", u.Email)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
