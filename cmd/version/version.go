package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relayhq/relay"
)

func AddVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(relay.GetVersion())
			return nil
		},
	}

	return cmd
}
