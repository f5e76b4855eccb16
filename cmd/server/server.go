package server

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/relayhq/relay/api"
	"github.com/relayhq/relay/config"
	"github.com/relayhq/relay/database/postgres"
	"github.com/relayhq/relay/internal/pkg/cli"
	"github.com/relayhq/relay/internal/pkg/server"
	"github.com/relayhq/relay/net"
	"github.com/relayhq/relay/pkg/log"
	"github.com/relayhq/relay/util"
)

func AddServerCommand(a *cli.App) *cobra.Command {
	var env string
	var logLevel string

	var port uint32
	var dispatchTimeout uint64

	cmd := &cobra.Command{
		Use:     "server",
		Aliases: []string{"serve", "s"},
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// override config with cli flags
			cliConfig, err := buildServerCliConfiguration(cmd)
			if err != nil {
				return err
			}

			if err = config.Override(cliConfig); err != nil {
				return err
			}

			err = StartRelayServer(a)
			if err != nil {
				a.Logger.Errorf("Error starting relay server: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&env, "env", "development", "Relay environment")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level")
	cmd.Flags().Uint32Var(&port, "port", 0, "Server port")
	cmd.Flags().Uint64Var(&dispatchTimeout, "dispatch-timeout", 0, "Outbound webhook timeout in seconds")

	return cmd
}

func StartRelayServer(a *cli.App) error {
	cfg, err := config.Get()
	if err != nil {
		a.Logger.WithError(err).Fatal("Failed to load configuration")
		return err
	}

	start := time.Now()
	a.Logger.Info("Starting Relay server...")

	if cfg.Server.HTTP.Port <= 0 {
		return errors.New("please provide the HTTP port in the relay.json file")
	}

	lo := a.Logger.(*log.Logger)
	lo.SetPrefix("api server")

	lvl, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return err
	}
	lo.SetLevel(lvl)

	srv := server.NewServer(cfg.Server.HTTP.Port, func() {})

	integrationRepo := postgres.NewIntegrationRepo(a.DB)
	dispatcher := net.NewDispatcher(time.Duration(cfg.Dispatcher.TimeoutSeconds) * time.Second)

	handler := api.NewApplicationHandler(lo, integrationRepo, dispatcher)

	srv.SetHandler(handler.BuildRoutes())

	lo.Infof("Started Relay server in %s", time.Since(start))
	srv.Listen()

	return nil
}

func buildServerCliConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	c, err := config.Get()
	if err != nil {
		return nil, err
	}

	env, err := cmd.Flags().GetString("env")
	if err != nil {
		return nil, err
	}

	if !util.IsStringEmpty(env) {
		c.Environment = env
	}

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	if !util.IsStringEmpty(logLevel) {
		c.Logger.Level = logLevel
	}

	port, err := cmd.Flags().GetUint32("port")
	if err != nil {
		return nil, err
	}

	if port != 0 {
		c.Server.HTTP.Port = port
	}

	dispatchTimeout, err := cmd.Flags().GetUint64("dispatch-timeout")
	if err != nil {
		return nil, err
	}

	if dispatchTimeout != 0 {
		c.Dispatcher.TimeoutSeconds = dispatchTimeout
	}

	return &c, nil
}
