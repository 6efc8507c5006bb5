package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the translator is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Doctor(cmd.Context(), c.flags.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "tool:        %s\n", res.Banner)
			_, _ = fmt.Fprintf(out, "recommended: %s\n", res.Recommended)
			if !res.Matches() {
				_, _ = fmt.Fprintf(out, "status:      version mismatch (using %s)\n", res.Version)
				return nil
			}
			_, _ = fmt.Fprintln(out, "status:      ok")
			return nil
		},
	}
}
