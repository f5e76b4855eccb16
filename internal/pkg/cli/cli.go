package cli

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/relayhq/relay/database"
	"github.com/relayhq/relay/pkg/log"
)

// App is the core dependency of the entire binary.
type App struct {
	Version string
	DB      database.Database
	Logger  log.StdLogger
}

type RelayCli struct {
	cmd *cobra.Command
}

func NewCli(app *App) *RelayCli {
	cmd := &cobra.Command{
		Use:     "Relay",
		Version: app.Version,
		Short:   "Workspace notification fan-out service",
	}

	return &RelayCli{cmd: cmd}
}

func (c *RelayCli) Flags() *flag.FlagSet {
	return c.cmd.PersistentFlags()
}

func (c *RelayCli) PersistentPreRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPreRunE = fn
}

func (c *RelayCli) PersistentPostRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPostRunE = fn
}

func (c *RelayCli) AddCommand(subCmd *cobra.Command) {
	c.cmd.AddCommand(subCmd)
}

func (c *RelayCli) Execute() error {
	return c.cmd.Execute()
}
