package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/journal"
	"github.com/starford/dagaz/internal/query"
	"github.com/starford/dagaz/internal/storage"
)

// SetupLogger installs the default logger for one invocation. Diagnostics
// go to stderr; stdout is reserved for command output.
func SetupLogger(cfg *Config) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
}

// resolveRoot applies the journal root precedence: explicit --path first,
// then the configured default path.
func resolveRoot(explicit string, cfg *Config) string {
	if explicit != "" {
		return explicit
	}
	return cfg.DefaultPath
}

// CreateParams carries the inputs of the `new` command.
type CreateParams struct {
	Title string
	Note  string
	Path  string
}

// CreateEntry writes a new journal entry and returns its path. With no
// explicit path and no configured default the entry lands under the
// current working directory.
func CreateEntry(ctx context.Context, cfg *Config, p CreateParams) (string, error) {
	root := resolveRoot(p.Path, cfg)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		root = wd
	}

	store, err := storage.NewFS(root)
	if err != nil {
		return "", err
	}
	return journal.NewService(store).Create(ctx, p.Title, p.Note)
}

// GetParams carries the inputs of the `get` command. Nil day/month/year
// mean unset.
type GetParams struct {
	Day   *int
	Month *int
	Year  *int
	Week  bool
	Path  string
}

// GetEntries resolves a query against the journal tree. Unlike entry
// creation there is no working-directory fallback: querying without a
// configured journal is an error.
func GetEntries(ctx context.Context, cfg *Config, p GetParams) ([]string, error) {
	root := resolveRoot(p.Path, cfg)
	if root == "" {
		return nil, apperr.ErrNoJournalRoot
	}

	store, err := storage.NewFS(root)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var q query.Query
	if p.Week {
		q = query.Week{Anchor: now}
	} else {
		q = query.Criteria{Day: p.Day, Month: p.Month, Year: p.Year}.Query(now)
	}
	return query.NewEngine(store).Find(ctx, q)
}

// InitConfig bootstraps a config file: it prompts on in for the default
// journal path, then writes a TOML config to explicit or, when empty, the
// per-user config location. Returns the written path.
func InitConfig(in io.Reader, out io.Writer, explicit string) (string, error) {
	configPath := explicit
	if configPath == "" {
		p, err := UserConfigPath()
		if err != nil {
			return "", err
		}
		configPath = p
	}

	fmt.Fprintln(out, "Enter the default journal path (e.g. /home/user/journal):")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read journal path: %w", err)
	}

	cfg := Config{DefaultPath: strings.TrimSpace(line)}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write config %s: %w", configPath, err)
	}
	return configPath, nil
}
