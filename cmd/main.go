package main

import (
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/relayhq/relay"
	"github.com/relayhq/relay/cmd/migrate"
	"github.com/relayhq/relay/cmd/server"
	"github.com/relayhq/relay/cmd/version"
	"github.com/relayhq/relay/config"
	"github.com/relayhq/relay/database/postgres"
	"github.com/relayhq/relay/internal/pkg/cli"
	"github.com/relayhq/relay/pkg/log"
)

func main() {
	err := os.Setenv("TZ", "") // Use UTC by default :)
	if err != nil {
		log.Fatal("failed to set env - ", err)
	}

	app := &cli.App{}
	app.Version = relay.GetVersion()

	c := cli.NewCli(app)

	var configFile string

	c.Flags().StringVar(&configFile, "config", "./relay.json", "Configuration file for relay")

	c.PersistentPreRunE(func(cmd *cobra.Command, args []string) error {
		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		err = config.LoadConfig(cfgPath)
		if err != nil {
			return err
		}

		cfg, err := config.Get()
		if err != nil {
			return err
		}

		lo := log.NewLogger(os.Stdout)

		lvl, err := log.ParseLevel(cfg.Logger.Level)
		if err != nil {
			return err
		}
		lo.SetLevel(lvl)

		db, err := postgres.NewDB(cfg)
		if err != nil {
			return err
		}

		app.DB = db
		app.Logger = lo

		return nil
	})

	c.PersistentPostRunE(func(cmd *cobra.Command, args []string) error {
		if postgresDB, ok := app.DB.(*postgres.Postgres); ok {
			return postgresDB.Close()
		}
		return nil
	})

	c.AddCommand(server.AddServerCommand(app))
	c.AddCommand(migrate.AddMigrateCommand(app))
	c.AddCommand(version.AddVersionCommand())

	if err := c.Execute(); err != nil {
		log.Fatal(err)
	}
}
