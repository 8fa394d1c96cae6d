package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestIsLoggedIn_FollowsState(t *testing.T) {
	a := newTestApp(t, "")
	assert.False(t, a.isLoggedIn())

	a.state.SetUser(models.User{ID: "u1", Email: "a@b.c"})
	assert.True(t, a.isLoggedIn())
}

func TestSetMode_ChangesAndPrintsOnce(t *testing.T) {
	a := newTestApp(t, "")

	a.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, a.Mode())
	assert.Equal(t, "Switched to online mode\n", a.out.String())

	a.out.Reset()
	a.setMode(ModeOnline)
	assert.Empty(t, a.out.String())

	a.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, a.Mode())
	assert.Equal(t, "Switched to offline mode\n", a.out.String())
}

func TestCheckOnline(t *testing.T) {
	a := newTestApp(t, "")

	a.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, a.Mode())

	a.auth.pingErr = errors.New("down")
	a.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, a.Mode())
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	a := newTestApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRoot_BootstrapsThenRunsREPL(t *testing.T) {
	silencePrintln(t)

	a := newTestApp(t, "whoami\nexit\n")
	a.auth.outcome = session.Authenticated(models.User{ID: "u1", Email: "alice@example.org", Name: "Alice"})

	a.Root(context.Background())

	out := a.out.String()
	assert.Contains(t, out, "Welcome to the storefront CLI")
	assert.Contains(t, out, "Signed in as alice@example.org")
	assert.Contains(t, out, "Alice <alice@example.org> (id u1)")
	assert.Equal(t, 2, a.auth.restoreCalls)
}

func TestGetStatus(t *testing.T) {
	a := newTestApp(t, "")
	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	assert.Equal(t, "(online)", a.getStatus())

	a.state.SetUser(models.User{ID: "u1", Email: "alice@example.org"})
	assert.Equal(t, "(alice@example.org online)", a.getStatus())
}
