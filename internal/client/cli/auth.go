package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// Input indirections, swapped in tests.
var (
	readField  = ReadField
	readSecret = ReadSecret
)

var errNotLoggedIn = errors.New("please log in first")

// Register prompts for an email, a display name and a password and creates
// an account. It does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := readField(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	name, err := readField(a.reader, a.out, "Name")
	if err != nil {
		return err
	}

	password, err := readSecret(a.reader, a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, email, name, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login prompts for credentials and signs in. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := readField(a.reader, a.out, "Email")
	if err != nil {
		return err
	}

	password, err := readSecret(a.reader, a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return errors.New("invalid email or password")
		}
		return err
	}

	who := u.Name
	if who == "" {
		who = u.Email
	}
	fmt.Fprintf(a.out, "Login successful. Hello, %s!\n", who)
	return nil
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI re-runs the session bootstrap and prints the result.
func (a *App) WhoAmI(ctx context.Context) error {
	o := a.auth.Restore(ctx)
	u, ok := o.Profile()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}
