package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/gophgallery/internal/client/api"
	"github.com/dmitrijs2005/gophgallery/internal/client/config"
	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
	"github.com/dmitrijs2005/gophgallery/internal/client/localdb"
	"github.com/dmitrijs2005/gophgallery/internal/client/router"
	"github.com/dmitrijs2005/gophgallery/internal/client/services"
	"github.com/dmitrijs2005/gophgallery/internal/client/session"
	"github.com/dmitrijs2005/gophgallery/internal/client/theme"
	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
	"golang.org/x/term"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	router  *router.Router
	theme   *theme.Store
	palette *palette

	authService    services.AuthService
	galleryService services.GalleryService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client: storage, session, router, HTTP client and
// services. The session is hydrated before the router is created so the first
// navigation sees the restored credential.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop{}
	}

	db, err := localdb.InitDatabase(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store, err := session.Open(ctx, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	nav := router.New(router.DefaultRoutes(), store, log)

	pal := newPalette(isTerminal(out))
	notifier := &consoleNotifier{out: out, palette: pal}

	hc, err := httpclient.New(httpclient.Config{BaseURL: c.APIBaseURL, Timeout: c.RequestTimeout}, store, nav,
		httpclient.WithNotifier(notifier), httpclient.WithLogger(log))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	apiClient := api.NewHTTPClient(hc)
	store.BindProfileFetcher(apiClient)

	var source theme.SystemSource = theme.Static(false)
	if c.ColorSchemeFile != "" {
		source = theme.NewFileSource(c.ColorSchemeFile, log)
	}
	themes, err := theme.Open(ctx, db, source, pal, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:         c,
		log:            log,
		db:             db,
		session:        store,
		router:         nav,
		theme:          themes,
		palette:        pal,
		authService:    services.NewAuthService(apiClient, store),
		galleryService: services.NewGalleryService(apiClient),
		reader:         bufio.NewReader(in),
		out:            out,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run applies the theme, opens the start screen and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.theme.Init(ctx); err != nil {
		a.log.Warn(ctx, "system theme is not watched", "error", err)
	}

	a.printf("GophGallery CLI (type 'help' for commands)\n")
	if loc, err := a.router.Navigate(ctx, common.HomePath); err == nil && loc.Route.Name == router.RouteLogin {
		a.printf("Not logged in. Use 'login' or 'register'.\n")
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Close waits for background profile fetches and closes the database.
func (a *App) Close() error {
	a.session.Wait()
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.HasSession()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "guest"
	}
	return a.session.DisplayName()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// report prints a command failure. Failures the HTTP client has already
// shown to the user are not repeated. A rejected login is the exception: the
// client stays silent on the login screen, so the server reason is printed.
func (a *App) report(ctx context.Context, action string, err error) {
	if err == nil {
		return
	}
	a.log.Debug(ctx, "command failed", "action", action, "error", err)

	var respErr *httpclient.ResponseError
	switch {
	case errors.Is(err, context.Canceled):
		a.printf("%s canceled\n", action)
	case errors.As(err, &respErr) && respErr.StatusCode == http.StatusUnauthorized && action == "login":
		msg := respErr.Message
		if msg == "" {
			msg = "invalid username or password"
		}
		a.printf("%s failed: %s\n", action, msg)
	case errors.As(err, &respErr), errors.Is(err, httpclient.ErrUnavailable):
	case services.IsValidation(err), errors.Is(err, ErrInvalidAnswer):
		a.printf("Invalid input: %v\n", err)
	default:
		a.printf("%s failed: %v\n", action, err)
	}
}
