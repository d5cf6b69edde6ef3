package cli

import (
	"context"

	"github.com/dmitrijs2005/gophgallery/internal/client/router"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// loginPrompt asks for credentials and starts a session.
func (a *App) loginPrompt(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, username, password); err != nil {
		return err
	}

	// Let the background profile fetch land so the greeting has a name.
	a.session.Wait()
	a.printf("Welcome, %s!\n", a.session.DisplayName())
	return nil
}

// Login opens the login screen. The screen is guest-only, so with an active
// session the guard sends the user home instead.
func (a *App) Login(ctx context.Context) error {
	loc, err := a.router.Navigate(ctx, common.LoginPath)
	if err != nil {
		a.report(ctx, "login", err)
		return err
	}
	if loc.Route.Name != router.RouteLogin {
		a.printf("Already logged in as %s.\n", a.session.DisplayName())
		return nil
	}

	if err := a.loginPrompt(ctx); err != nil {
		a.report(ctx, "login", err)
		return err
	}
	_, _ = a.router.Navigate(ctx, common.HomePath)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Register(ctx, username, email, password); err != nil {
		a.report(ctx, "register", err)
		return err
	}
	a.printf("Account %s created, you can log in now.\n", username)
	return nil
}

// Logout ends the session locally and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("Not logged in.\n")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		a.report(ctx, "logout", err)
		return err
	}
	a.printf("Logged out.\n")
	_, _ = a.router.Navigate(ctx, common.HomePath)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("guest\n")
		return nil
	}
	p, name, err := a.authService.Profile(ctx)
	if err != nil {
		a.log.Debug(ctx, "profile refresh failed", "error", err)
	}
	if !a.isLoggedIn() {
		return err
	}
	switch {
	case p == nil:
		a.printf("%s\n", name)
	case p.Email != "":
		a.printf("%s <%s> (id %d)\n", name, p.Email, p.ID)
	default:
		a.printf("%s (id %d)\n", name, p.ID)
	}
	return nil
}
