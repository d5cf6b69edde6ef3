package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophgallery/internal/client/router"
)

// open navigates to path before a command runs. When the guard sends the
// user to the login screen the login prompt starts and, after a successful
// login, path is tried once more. It reports whether the command may proceed.
func (a *App) open(ctx context.Context, path string) (router.Location, bool) {
	loc, err := a.router.Navigate(ctx, path)
	if err != nil {
		a.report(ctx, "navigation", err)
		return loc, false
	}
	if loc.RedirectedFrom == "" {
		return loc, true
	}
	if loc.Route.Name != router.RouteLogin {
		return loc, false
	}

	a.printf("Please log in first.\n")
	if err := a.loginPrompt(ctx); err != nil {
		a.report(ctx, "login", err)
		return loc, false
	}

	loc, err = a.router.Navigate(ctx, path)
	if err != nil {
		a.report(ctx, "navigation", err)
		return loc, false
	}
	return loc, loc.RedirectedFrom == ""
}

func detailPath(id int64) string { return fmt.Sprintf("/detail/%d", id) }
func editPath(id int64) string   { return fmt.Sprintf("/edit/%d", id) }

// parseID reads the single <id> argument of a command.
func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one image id", ErrInvalidAnswer)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an image id", ErrInvalidAnswer, args[0])
	}
	return id, nil
}
