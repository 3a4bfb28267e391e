package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/dagaz/internal"
)

func runNew(ctx context.Context, cmd *cli.Command) error {
	cfg, err := internal.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	internal.SetupLogger(cfg)

	if cmd.Args().Len() < 1 {
		return cli.Exit("Error: a title ending in .md is required", 1)
	}

	path, err := internal.CreateEntry(ctx, cfg, internal.CreateParams{
		Title: cmd.Args().Get(0),
		Note:  cmd.Args().Get(1),
		Path:  cmd.String("path"),
	})
	if err != nil {
		return err
	}

	fmt.Println("Created journal entry:", path)
	return nil
}

func runGet(ctx context.Context, cmd *cli.Command) error {
	cfg, err := internal.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	internal.SetupLogger(cfg)

	if cmd.Bool("week") && cmd.IsSet("day") {
		return cli.Exit("Error: --week cannot be combined with --day", 1)
	}

	format := cmd.String("format")
	if !cmd.IsSet("format") && cfg.DefaultFormat != "" {
		format = cfg.DefaultFormat
	}
	if err := internal.ValidateFormat(format); err != nil {
		return fmt.Errorf("invalid format %q: %w", format, err)
	}

	p := internal.GetParams{
		Week: cmd.Bool("week"),
		Path: cmd.String("path"),
	}
	if cmd.IsSet("day") {
		v := int(cmd.Int("day"))
		p.Day = &v
	}
	if cmd.IsSet("month") {
		v := int(cmd.Int("month"))
		p.Month = &v
	}
	if cmd.IsSet("year") {
		v := int(cmd.Int("year"))
		p.Year = &v
	}

	entries, err := internal.GetEntries(ctx, cfg, p)
	if err != nil {
		return err
	}
	if err := internal.Render(os.Stdout, format, entries); err != nil {
		return err
	}

	// Scripts rely on a non-zero exit when nothing matched.
	if len(entries) == 0 {
		return cli.Exit("no entries found", 1)
	}
	return nil
}

func runInit(_ context.Context, cmd *cli.Command) error {
	path, err := internal.InitConfig(os.Stdin, os.Stdout, cmd.String("path"))
	if err != nil {
		return err
	}
	fmt.Println("Created config at:", path)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "dagaz",
		Usage: "File-based journal: timestamped Markdown entries in a date-partitioned tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("DAGAZ_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "new",
				Usage:     "Create a new journal entry",
				ArgsUsage: "<title.md> [note]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Override the default journal path",
					},
				},
				Action: runNew,
			},
			{
				Name:  "get",
				Usage: "Get journal entries for a specific date",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "day",
						Aliases: []string{"d"},
						Usage:   "Day of month (1-31), defaults to today",
					},
					&cli.IntFlag{
						Name:    "month",
						Aliases: []string{"m"},
						Usage:   "Month (1-12), defaults to the current month",
					},
					&cli.IntFlag{
						Name:    "year",
						Aliases: []string{"y"},
						Usage:   "Year (e.g. 2026), defaults to the current year",
					},
					&cli.BoolFlag{
						Name:  "week",
						Usage: "Get entries for the current week (conflicts with --day)",
					},
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Override the default journal path",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: 'paths', 'content', or 'json'",
						Value:   internal.FormatPaths,
					},
				},
				Action: runGet,
			},
			{
				Name:  "init",
				Usage: "Initialize a new journal configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Path to write the config file to",
					},
				},
				Action: runInit,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
