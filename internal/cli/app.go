package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/config"
	"github.com/dmitrijs2005/otpkeeper/internal/feed"
	"github.com/dmitrijs2005/otpkeeper/internal/filex"
	"github.com/dmitrijs2005/otpkeeper/internal/logging"
	"github.com/dmitrijs2005/otpkeeper/internal/otpauth"
	"github.com/dmitrijs2005/otpkeeper/internal/otpgen"
	"github.com/dmitrijs2005/otpkeeper/internal/repositories/metadata"
	"github.com/dmitrijs2005/otpkeeper/internal/repositories/sources"
	"github.com/dmitrijs2005/otpkeeper/internal/storage"
)

const appName = "otpkeeper"

// App is the interactive otpkeeper client.
type App struct {
	config *config.Config
	logger logging.Logger

	db       *sql.DB
	metaRepo metadata.Repository
	srcRepo  sources.Repository
	feed     *feed.Feed

	reader *bufio.Reader
	out    io.Writer

	mu     sync.RWMutex
	latest []feed.DisplayItem
}

// NewApp opens the vault database and assembles an App. The vault stays
// locked until Run prompts for the master password.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	dsn := cfg.DatabaseDSN
	if dsn == "" {
		dir, err := filex.EnsureAppDir(appName)
		if err != nil {
			return nil, fmt.Errorf("resolve app dir: %w", err)
		}
		dsn = filepath.Join(dir, "vault.db")
	}

	db, err := storage.Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	return &App{
		config:   cfg,
		logger:   logger,
		db:       db,
		metaRepo: metadata.NewSQLiteRepository(db),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run unlocks the vault, starts the feed, and enters the REPL. It blocks
// until the user exits or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	masterKey, err := a.unlock(ctx)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(masterKey)

	a.srcRepo = sources.NewSQLiteRepository(a.db, masterKey)

	a.feed = feed.New(
		a.srcRepo,
		feed.ParserFunc(otpauth.Parse),
		feed.FactoryFunc(func(p otpauth.Params) (feed.Generator, error) {
			return otpgen.New(p)
		}),
		a.logger,
		feed.WithRefreshInterval(a.config.RefreshInterval),
	)

	// Subscribe before Start so the seed snapshot is the first tracked view.
	items, cancel := a.feed.Subscribe()
	defer cancel()
	go a.trackItems(items)

	if err := a.feed.Start(ctx); err != nil {
		return fmt.Errorf("start feed: %w", err)
	}
	defer func() {
		a.feed.Close()
		<-a.feed.Done()
	}()

	a.root(ctx)
	return nil
}

func (a *App) unlock(ctx context.Context) ([]byte, error) {
	password, err := GetPassword(a.out)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(password)

	key, err := UnlockVault(ctx, a.metaRepo, password)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// trackItems keeps the most recent published view available to commands.
func (a *App) trackItems(items <-chan []feed.DisplayItem) {
	for view := range items {
		a.mu.Lock()
		a.latest = view
		a.mu.Unlock()
	}
}

func (a *App) currentItems() []feed.DisplayItem {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.latest
}
