package migrate

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/relayhq/relay/internal/pkg/cli"
	"github.com/relayhq/relay/internal/pkg/migrator"
	"github.com/relayhq/relay/pkg/log"
)

func AddMigrateCommand(a *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Relay migrations",
	}

	cmd.AddCommand(addUpCommand(a))
	cmd.AddCommand(addDownCommand(a))
	cmd.AddCommand(addCreateCommand())

	return cmd
}

func addUpCommand(a *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Aliases: []string{"migrate-up"},
		Short:   "Run all pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			m := migrator.New(a.DB)
			err := m.Up()
			if err != nil {
				log.Fatalf("migration up failed with error: %+v", err)
			}

			log.Info("migration up succeeded")
		},
	}

	return cmd
}

func addDownCommand(a *cli.App) *cobra.Command {
	var maxDown int

	cmd := &cobra.Command{
		Use:     "down",
		Aliases: []string{"migrate-down"},
		Short:   "Rollback migrations",
		Run: func(cmd *cobra.Command, args []string) {
			m := migrator.New(a.DB)
			err := m.Down(maxDown)
			if err != nil {
				log.Fatalf("migration down failed with error: %+v", err)
			}

			log.Info("migration down succeeded")
		},
	}

	cmd.Flags().IntVar(&maxDown, "max", 1, "The maximum number of migrations to rollback")

	return cmd
}

func addCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"migrate-create"},
		Short:   "creates a new migration file",
		Run: func(cmd *cobra.Command, args []string) {
			fileName := fmt.Sprintf("sql/%v.sql", time.Now().Unix())
			f, err := os.Create(fileName)
			if err != nil {
				log.Fatal(err)
			}

			defer f.Close()

			lines := []string{"-- +migrate Up", "-- +migrate Down"}
			for _, line := range lines {
				_, err := f.WriteString(line + "\n\n")
				if err != nil {
					log.Fatal(err)
				}
			}
		},
	}

	return cmd
}
