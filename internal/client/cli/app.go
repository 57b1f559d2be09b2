package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/estatehub/internal/client/authz"
	"github.com/dmitrijs2005/estatehub/internal/client/client"
	"github.com/dmitrijs2005/estatehub/internal/client/config"
	"github.com/dmitrijs2005/estatehub/internal/client/output"
	"github.com/dmitrijs2005/estatehub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/estatehub/internal/client/services"
	"github.com/dmitrijs2005/estatehub/internal/client/session"
	"github.com/dmitrijs2005/estatehub/internal/client/storage"
	"github.com/dmitrijs2005/estatehub/internal/logging"
)

// TokenReader exposes the stored bearer token.
type TokenReader interface {
	Token(ctx context.Context) string
}

// App holds the services and terminal I/O shared by every command.
type App struct {
	config   *config.Config
	auth     services.AuthService
	listings services.ListingService
	admin    services.AdminService
	gate     *authz.Gate
	tokens   TokenReader
	store    *session.Store
	printer  *output.Printer
	logger   logging.Logger
	reader   *bufio.Reader
	now      func() time.Time
	closers  []func() error
}

// NewApp wires the local store, the API client and the services. The
// database is opened on first use; if it cannot be opened the app still
// runs with storage disabled.
func NewApp(cfg *config.Config, in io.Reader, out, errOut io.Writer) *App {
	logger := logging.NewTextLoggerAt(errOut, cfg.Level())
	a := &App{}

	store := session.NewLazy(func(ctx context.Context) (metadata.Repository, error) {
		db, err := storage.InitDatabase(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return metadata.NewSQLiteRepository(db), nil
	}, logger.With("component", "session"))

	a.wire(cfg, store, logger, in, out, errOut)
	return a
}

func (a *App) wire(cfg *config.Config, store *session.Store, logger logging.Logger, in io.Reader, out, errOut io.Writer) {
	api := client.NewHTTPClient(cfg.APIBaseURL,
		client.WithTokenSource(store),
		client.WithLogger(logger.With("component", "api")),
		client.WithTimeout(cfg.RequestTimeout),
	)

	a.config = cfg
	a.logger = logger
	a.printer = output.NewPrinterWithWriters(out, errOut, output.ResolveColors(cfg.NoColor))
	a.auth = services.NewAuthService(api, store)
	a.listings = services.NewListingService(api, store, logger.With("component", "listings"))
	a.admin = services.NewAdminService(api)
	a.gate = authz.NewGate(store)
	a.tokens = store
	a.store = store
	a.reader = bufio.NewReader(in)
	a.now = time.Now
}

// Close releases the local database if it was opened.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.auth.Session(ctx)
	return ok
}

// getStatus renders the prompt status: the signed-in name and role.
func (a *App) getStatus(ctx context.Context) string {
	sess, ok := a.auth.Session(ctx)
	if !ok {
		return ""
	}
	return "(" + sess.Name + " " + string(sess.Role) + ")"
}

// report prints err as a user-facing notification.
func (a *App) report(err error) {
	var (
		apiErr *client.APIError
		valErr *services.ValidationError
	)
	switch {
	case err == nil:
	case errors.As(err, &valErr):
		a.printer.Error("%s", valErr.Message)
	case errors.Is(err, services.ErrNotSignedIn):
		a.printer.Warning("Please log in first")
	case errors.As(err, &apiErr):
		a.printer.Error("%s", apiErr.Message)
	case errors.Is(err, client.ErrUnavailable):
		a.printer.Error("Cannot reach the server at %s", a.config.APIBaseURL)
	case errors.Is(err, client.ErrInvalidResponse):
		a.printer.Error("The server sent an unexpected response")
	case errors.Is(err, session.ErrStorageUnavailable):
		a.printer.Error("Local storage is unavailable; changes were not saved")
	case errors.Is(err, context.Canceled):
		a.printer.Warning("Cancelled")
	default:
		a.printer.Error("%s", err.Error())
	}
}

// stdio returns the process streams NewApp is normally built with.
func stdio() (io.Reader, io.Writer, io.Writer) {
	return os.Stdin, os.Stdout, os.Stderr
}
