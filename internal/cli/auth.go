package cli

import (
	"context"
	"errors"
	"fmt"

	"blogctl/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend. On
// success the token is persisted and the user greeted; on failure the error
// is shown and returned.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res := a.session.Login(ctx, email, string(password))
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render("Login failed: "+res.Error))
		return errors.New(res.Error)
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.Data.Name)
	return nil
}

// Register prompts for account details and creates a new account. Logging
// in afterwards is a separate step, matching the backend's flow.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res := a.session.Register(ctx, models.RegisterData{Name: name, Email: email, Password: string(password)})
	if !res.Success {
		fmt.Fprintln(a.out, errorStyle.Render("Registration failed: "+res.Error))
		return errors.New(res.Error)
	}

	fmt.Fprintln(a.out, res.Data+" You can login now.")
	return nil
}

// Logout drops the session. Safe to call repeatedly.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
