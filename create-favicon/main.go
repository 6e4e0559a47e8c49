package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/datagaps/favicongen"
	"github.com/datagaps/favicongen/config"
	"github.com/datagaps/favicongen/ico"
	"github.com/datagaps/favicongen/logger"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "create-favicon",
		Usage:     "Write the Datagaps favicon into frontend/public and static",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to optional YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "Project root containing frontend/public and static (default: config root, then working directory)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override logging.level: debug, info, warn, error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logger.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)

			root, err := cfg.ResolveRoot(cmd.String("root"))
			if err != nil {
				return err
			}
			log.Debug("Starting favicon generation", "version", version, "root", root)

			e := &favicongen.Emitter{Root: root, Out: stdout, Log: log}
			_, err = e.Emit(ctx, favicongen.Encode())
			return err
		},
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "Print the image entries of an .ico file",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return fmt.Errorf("inspect expects exactly one FILE argument")
					}
					return inspect(stdout, cmd.Args().First())
				},
			},
		},
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.LoadFromFile(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	return cfg, nil
}

func inspect(w io.Writer, fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := ico.DecodeHeaders(f)
	if err != nil {
		return fmt.Errorf("Error reading icon file '%s': %w", fname, err)
	}
	fmt.Fprintf(w, "%s: %d image(s)\n", fname, len(entries))
	for i, e := range entries {
		fmt.Fprintf(w, "  #%d %dx%d %dbpp %d bytes at offset %d",
			i, ico.Dimension(e.Width), ico.Dimension(e.Height), e.BitCount, e.BytesInRes, e.ImageOffset)
		if bmp, err := ico.DecodeBitmapHeader(f, e); err == nil {
			fmt.Fprintf(w, " (DIB, height field %d)", bmp.Height)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
