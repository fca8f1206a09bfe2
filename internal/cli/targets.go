package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/nodes/backend"
)

func (c *CLI) targetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the registered render targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			def := backend.Default()
			if def == nil {
				printError(w, "no render target registered")
				return backend.ErrTargetNotAvailable
			}
			defer def.Close()
			for _, name := range backend.Available() {
				if name == def.Name() {
					printSuccess(w, "%s (default)", name)
					continue
				}
				printInfo(w, "%s", name)
			}
			return nil
		},
	}
}
