// Package cmds implements the texttable command line.
package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/texttable/internal/logger"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:  "texttable",
		Usage: "render tables as plain-text grids",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("TEXTTABLE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json)",
				Value: "text",
				Validator: func(s string) error {
					if s == "text" || s == "json" {
						return nil
					}
					return fmt.Errorf("unknown log format: %s", s)
				},
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg := logger.DefaultConfig()
			cfg.Level = logger.ParseLevel(c.String("log-level"))
			cfg.Format = c.String("log-format")
			if c.ErrWriter != nil {
				cfg.Output = c.ErrWriter
			}
			logger.Setup(cfg)
			return ctx, nil
		},
		Commands: []*cli.Command{
			newRenderCmd(),
			newLayoutsCmd(),
			newVersionCmd(),
		},
	}
}

// Execute runs the command line with args, which include the program name.
func Execute(ctx context.Context, args []string) error {
	return newRootCmd().Run(ctx, args)
}
