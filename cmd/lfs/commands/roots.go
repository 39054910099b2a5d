package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Print the ordered search roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.open(cmd)
			if err != nil {
				return err
			}

			roots := ws.Roots()
			if digest, _ := cmd.Flags().GetBool("digest"); digest {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), roots.Digest())
				return nil
			}

			for _, root := range roots {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), root)
			}
			return nil
		},
	}
	cmd.Flags().Bool("digest", false, "Print a fingerprint of the root list instead of the roots")
	return cmd
}
