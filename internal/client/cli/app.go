package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/NodEm9/myflix-client/internal/client/api"
	"github.com/NodEm9/myflix-client/internal/client/config"
	"github.com/NodEm9/myflix-client/internal/client/repositories/state"
	"github.com/NodEm9/myflix-client/internal/client/services"
	"github.com/NodEm9/myflix-client/internal/client/session"
	"github.com/NodEm9/myflix-client/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive myFlix client. It owns the wired services and the
// terminal I/O, and doubles as the services' Router and Notifier: navigation
// signals move the prompt between views and notifications are printed inline.
type App struct {
	config    *config.Config
	auth      services.AuthService
	catalog   services.CatalogService
	favorites services.FavoritesService
	sessions  *session.Store
	log       logging.Logger
	reader    *bufio.Reader
	route     services.Route
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewText(os.Stderr, slog.LevelWarn)

	db, err := state.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	sessions := session.NewStore(db, log)
	apiClient := api.NewHTTPClient(c.APIBaseURL, sessions, c.RequestTimeout, log)

	a := &App{
		config:   c,
		sessions: sessions,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		route:    services.RouteWelcome,
	}
	a.auth = services.NewAuthService(apiClient, sessions, a, a, log)
	a.catalog = services.NewCatalogService(apiClient, state.NewSQLiteRepository(db), log)
	a.favorites = services.NewFavoritesService(apiClient, sessions, a, log)

	// A session may survive from a previous run; start on the movies view then.
	if sess, err := sessions.Load(ctx); err == nil && sess != nil {
		a.route = services.RouteMovies
	}

	return a, nil
}

// Navigate implements services.Router. The current route is reflected in the
// REPL prompt.
func (a *App) Navigate(route services.Route) {
	a.route = route
}

// Notify implements services.Notifier.
func (a *App) Notify(msg string) {
	printlnFn(msg)
}

// Run starts the REPL and blocks until the user exits or input is exhausted.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.auth.Close(ctx) }()

	fmt.Println("myFlix CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	sess, err := a.sessions.Load(context.Background())
	return err == nil && sess != nil
}

// status renders the prompt suffix: the signed-in username (if any) and the
// current view.
func (a *App) status() string {
	name := "guest"
	if sess, err := a.sessions.Load(context.Background()); err == nil && sess != nil {
		name = sess.User.Username
	}
	return fmt.Sprintf("%s @ %s", name, a.route)
}
