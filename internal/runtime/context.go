// Package runtime provides application runtime context for EzyTask.
package runtime

import (
	"github.com/ezytask/ezytask/internal/ai"
	"github.com/ezytask/ezytask/internal/config"
	"github.com/ezytask/ezytask/internal/logging"
	"github.com/ezytask/ezytask/internal/model"
	"github.com/ezytask/ezytask/internal/output"
	"github.com/ezytask/ezytask/internal/storage"
	"github.com/ezytask/ezytask/internal/store"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	BoardRepo *storage.BoardRepo
	Store     *store.Store
	Advisor   *ai.Advisor
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context: it opens the database, loads (or
// seeds) the store and wires the advisory client.
func New(opts Options) (*Context, error) {
	if opts.Debug {
		logging.InitDebug()
	} else {
		logging.Init(logging.DefaultConfig())
	}

	cfg := config.Load()
	logging.DebugLog("runtime configuration",
		"storage_path", cfg.Storage.Path,
		"ai_model", cfg.AI.Model,
		"ai_key", logging.MaskPartial(cfg.AI.APIKey, 4),
	)

	dbOpts := storage.Options{Path: storage.DefaultPath()}
	if cfg.Storage.Path == ":memory:" {
		dbOpts = storage.Options{InMemory: true}
	} else if cfg.Storage.Path != "" {
		dbOpts = storage.Options{Path: cfg.Storage.Path}
	}

	db, err := storage.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	repo := storage.NewBoardRepo(db)
	st := store.New(repo)
	if err := st.Load(); err != nil {
		db.Close()
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:    cfg,
		DB:        db,
		BoardRepo: repo,
		Store:     st,
		Advisor:   ai.NewAdvisor(ai.NewClient(cfg.AI)),
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Theme returns the stored theme preference, defaulting to light.
func (c *Context) Theme() string {
	theme, err := c.BoardRepo.LoadTheme()
	if err != nil || !model.ValidTheme(theme) {
		return model.ThemeLight
	}
	return theme
}
