package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type fakeAuth struct {
	mu sync.Mutex

	regEmail, regName string
	regPass           []byte
	regErr            error

	loginEmail string
	loginPass  []byte
	loginUser  models.User
	loginErr   error

	logoutCalled bool
	logoutErr    error

	restoreCalls int
	outcome      session.Outcome

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, email, name string, pw []byte) (models.User, error) {
	f.regEmail, f.regName, f.regPass = email, name, append([]byte(nil), pw...)
	return models.User{Email: email, Name: name}, f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email string, pw []byte) (models.User, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pw...)
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) Restore(context.Context) session.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restoreCalls++
	return f.outcome
}

func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

type fakeCatalog struct {
	pkgs     []models.Package
	pkg      models.Package
	history  []string
	err      error
	lastCall string
	lastArg  string
	cleared  bool
}

func (f *fakeCatalog) ListPackages(context.Context) ([]models.Package, error) {
	f.lastCall = "list"
	return f.pkgs, f.err
}

func (f *fakeCatalog) SearchPackages(_ context.Context, q string) ([]models.Package, error) {
	f.lastCall, f.lastArg = "search", q
	return f.pkgs, f.err
}

func (f *fakeCatalog) FilterByBrand(_ context.Context, id string) ([]models.Package, error) {
	f.lastCall, f.lastArg = "brand", id
	return f.pkgs, f.err
}

func (f *fakeCatalog) GetPackage(_ context.Context, id string) (models.Package, error) {
	f.lastCall, f.lastArg = "get", id
	return f.pkg, f.err
}

func (f *fakeCatalog) SearchHistory(context.Context) ([]string, error) { return f.history, f.err }

func (f *fakeCatalog) ClearSearchHistory(context.Context) error {
	f.cleared = true
	return f.err
}

type fakeOrders struct {
	placedID  string
	placedQty int
	order     models.Order
	list      []models.Order
	err       error
}

func (f *fakeOrders) PlaceOrder(_ context.Context, id string, qty int) (models.Order, error) {
	f.placedID, f.placedQty = id, qty
	return f.order, f.err
}

func (f *fakeOrders) ListOrders(context.Context) ([]models.Order, error) { return f.list, f.err }

type testApp struct {
	*App
	auth    *fakeAuth
	catalog *fakeCatalog
	orders  *fakeOrders
	out     *bytes.Buffer
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	cfg := &config.Config{}
	ta := &testApp{
		auth:    &fakeAuth{},
		catalog: &fakeCatalog{},
		orders:  &fakeOrders{},
		out:     &bytes.Buffer{},
	}
	ta.App = NewApp(cfg, Services{Auth: ta.auth, Catalog: ta.catalog, Orders: ta.orders},
		state.New(), logging.Nop(), strings.NewReader(input), ta.out)
	return ta
}

func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origField, origSecret := readField, readSecret
	i := 0
	readField = func(_ *bufio.Reader, _ io.Writer, _ string) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		i++
		return texts[i-1], nil
	}
	readSecret = func(_ *bufio.Reader, _ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		readField = origField
		readSecret = origSecret
	})
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
