package main

import (
	"fmt"
	"os"
	"resort/config"
	"resort/helper"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func direction(name string, dir helper.Direction, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(*cli.Context) error {
			return helper.Migrate(config.Get(), dir)
		},
	}
}

func main() {
	logger.InitConsoleLogger(os.Stderr)

	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the resort database schema",
		Commands: []*cli.Command{
			direction("up", helper.DirectionUp, "apply every pending migration"),
			direction("down", helper.DirectionDown, "roll back the latest migration"),
			direction("step-up", helper.DirectionStepUp, "apply the next migration"),
			direction("drop", helper.DirectionDrop, "roll back every migration"),
			{
				Name:  "version",
				Usage: "print the applied schema version",
				Action: func(c *cli.Context) error {
					version, dirty, err := helper.Version(config.Get())
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)

					return nil
				},
			},
			{
				Name:  "seed-admin",
				Usage: "create the first admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"SEED_ADMIN_PASSWORD"}},
					&cli.StringFlag{Name: "name", Value: "Administrator"},
				},
				Action: func(c *cli.Context) error {
					return helper.SeedAdmin(config.Get(), c.String("email"), c.String("password"), c.String("name"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("Migration command failed")
	}
}
