// Package cli implements the interactive NextRead client: a REPL whose
// commands open the application's screens (browse, book detail, reservations,
// profile, admin dashboard).
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nextread/nextread-cli/internal/client/api"
	"github.com/nextread/nextread-cli/internal/client/cache"
	"github.com/nextread/nextread-cli/internal/client/config"
	"github.com/nextread/nextread-cli/internal/client/services"
	"github.com/nextread/nextread-cli/internal/client/session"
	"github.com/nextread/nextread-cli/internal/logging"
)

// App wires the screens to the API client, catalog service and session.
type App struct {
	config  *config.Config
	api     api.Client
	catalog *services.CatalogService
	store   cache.Store
	session *session.Session
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	store, err := cache.NewSQLiteStore(ctx, cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("init catalogue cache: %w", err)
	}

	client := api.NewHTTPClient(cfg.ServerBaseURL, logger)

	return &App{
		config:  cfg,
		api:     client,
		catalog: services.NewCatalogService(client, store, logger),
		store:   store,
		session: session.New(),
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the cache database.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to NextRead (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) status() string {
	user := a.session.Current()
	if user == nil {
		return ""
	}
	if a.session.IsAdmin() {
		return fmt.Sprintf("(%s, admin)", user.Name)
	}
	return fmt.Sprintf("(%s)", user.Name)
}

func (a *App) isAuthenticated() bool { return a.session.IsAuthenticated() }
func (a *App) isAdmin() bool         { return a.session.IsAdmin() }

// reason extracts the user-facing text of a failure: the server-supplied
// message for API errors, the error string otherwise.
func reason(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
