// Package command defines the wellbe CLI. Every command runs against an app.App built
// from configuration, so the same commands work in mock and live mode.
package command

import (
	"context"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/urfave/cli/v2"

	"github.com/jrsteele09/wellbe/internal/app"
	"github.com/jrsteele09/wellbe/internal/config"
	"github.com/jrsteele09/wellbe/internal/logging"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

const appKey = "wellbe"

// App creates the CLI application. Extra app options are applied when the client is
// built, e.g. to inject a store in tests.
func App(opts ...app.Option) *cli.App {
	return &cli.App{
		Name:    "wellbe",
		Usage:   "wellbe nutrition and workout client",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			AuthCommand(),
			FoodCommand(),
			ExerciseCommand(),
			WorkoutCommand(),
		},
		Before: func(c *cli.Context) error {
			return setup(c, opts)
		},
		After: func(c *cli.Context) error {
			if a := fromContext(c); a != nil {
				return a.Close()
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			banner(c)
			return cli.ShowAppHelp(c)
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"WELLBE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml",
			Value:   string(FormatJSON),
		},
	}
}

func setup(c *cli.Context, opts []app.Option) error {
	var loadOpts []config.Option
	if path := c.String("config"); path != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(path))
	}
	cfg, err := config.New(loadOpts...)
	if err != nil {
		return err
	}
	logging.Setup(cfg.GetLogLevel(), cfg.GetLogFormat(), c.App.ErrWriter)

	a, err := app.New(context.Background(), cfg, opts...)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[appKey] = a
	return nil
}

func fromContext(c *cli.Context) *app.App {
	a, _ := c.App.Metadata[appKey].(*app.App)
	return a
}

func banner(c *cli.Context) {
	name := "wellbe"
	if a := fromContext(c); a != nil {
		name = a.Config.GetAppName()
	}
	fmt.Fprintln(c.App.Writer, figure.NewFigure(name, "cybermedium", true).String())
}
