package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/furball-art/furball/internal/client/client"
	"github.com/furball-art/furball/internal/client/config"
	"github.com/furball-art/furball/internal/client/identity"
	"github.com/furball-art/furball/internal/client/repositories/metadata"
	"github.com/furball-art/furball/internal/client/services"
	"github.com/furball-art/furball/internal/client/wallet"
	"github.com/furball-art/furball/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	wallet   *wallet.LocalSession
	identity *identity.Cache
	docs     client.Client

	profiles services.ProfileService
	artworks services.ArtworkService
	blobs    services.BlobService

	sessionReady bool
	out          io.Writer
}

// NewApp bootstraps the shell: local database and wallet session first,
// then the node connection. The DID session is set up lazily.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	docs, err := client.NewGRPCClient(c.NodeAddr,
		client.WithRequestTimeout(c.RequestTimeout),
		client.WithMaxMessageBytes(c.MaxMessageBytes),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a, err := newApp(ctx, c, log, db, docs, os.Stdout)
	if err != nil {
		_ = docs.Close()
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, db *sql.DB, docs client.Client, out io.Writer) (*App, error) {
	repo := metadata.NewSQLiteRepository(db)

	session, err := wallet.Restore(ctx, repo)
	if err != nil {
		return nil, err
	}

	if err := docs.Ping(ctx); err != nil {
		log.Warn(ctx, "document node is not reachable", "error", err)
	}

	cache := identity.NewCache(repo)
	blobs := services.NewBlobService(docs)

	return &App{
		config:   c,
		log:      log.With("module", "cli"),
		db:       db,
		wallet:   session,
		identity: cache,
		docs:     docs,
		profiles: services.NewProfileService(docs, cache, services.WithRecreateOnStale(c.RecreateStaleProfile)),
		artworks: services.NewArtworkService(docs, blobs),
		blobs:    blobs,
		out:      out,
	}, nil
}

// Run reads commands from in until EOF or "exit". A prompt is printed only
// when stdin is a terminal.
func (a *App) Run(ctx context.Context, in *os.File) {
	prompt := term.IsTerminal(int(in.Fd()))
	if prompt {
		a.println("furball shell (type 'help' for commands)")
	}
	runREPL(ctx, a, a.status, prompt, bufio.NewScanner(in))
}

func (a *App) Close() error {
	var firstErr error
	if err := a.docs.Close(); err != nil {
		firstErr = err
	}
	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (a *App) isSignedIn() bool {
	return a.wallet.IsSignedIn()
}

func (a *App) status() string {
	if !a.wallet.IsSignedIn() {
		return ""
	}
	return "(" + a.wallet.AccountID() + ")"
}

// ensureSession authenticates the local DID with the node once per process.
func (a *App) ensureSession(ctx context.Context) error {
	if a.sessionReady {
		return nil
	}
	p, err := a.identity.Provider(ctx)
	if err != nil {
		return err
	}
	if err := a.docs.SetDIDProvider(ctx, p); err != nil {
		return err
	}
	a.sessionReady = true
	a.log.Debug(ctx, "document session established", "did", p.DID())
	return nil
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
