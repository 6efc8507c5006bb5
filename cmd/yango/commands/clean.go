package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/yango/internal/app"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the hash caches so every file is processed again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, _ := cmd.Flags().GetStringSlice("operation")

			opts := app.CleanOptions{ConfigPath: c.flags.configPath}
			for _, name := range names {
				op, err := domain.ParseOperation(name)
				if err != nil {
					return err
				}
				if !op.IsBatch() {
					return zerr.With(domain.ErrUnsupportedOperation, "operation", name)
				}
				opts.Operations = append(opts.Operations, op)
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceP("operation", "o", nil, "Only clean the caches of these operations (format, convert, compile)")

	return cmd
}
