package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/yango/internal/app"
	"go.trai.ch/yango/internal/core/domain"
)

var operationShort = map[domain.Operation]string{
	domain.OperationFormat:  "Rewrite YANG modules in canonical form",
	domain.OperationConvert: "Produce a YIN file next to each YANG module",
	domain.OperationCompile: "Validate YANG modules without changing them",
}

func (c *CLI) newOperationCmd(op domain.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   op.String() + " [directories...]",
		Short: operationShort[op],
		Long: operationShort[op] + ".\n\n" +
			"Directories override the configured source directories. Files whose\n" +
			"content is unchanged since the last successful run are skipped.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), op, app.RunOptions{
				ConfigPath: c.flags.configPath,
				Overrides:  c.overrides(cmd, args),
				NoCache:    c.flags.noCache,
			})
		},
	}
}
