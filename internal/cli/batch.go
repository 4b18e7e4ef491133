package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/anuvada"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <text>...",
		Short: "Translate several texts in one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp anuvada.BatchResponse
			if err := a.client.TranslateBatch(cmd.Context(), args).Decode(&resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pair := range resp.Translations {
				kannada := pair.Kannada
				if kannada == "" {
					kannada = "(no translation)"
				}
				fmt.Fprintf(out, "%s → %s\n", pair.English, kannada)
			}
			return nil
		},
	}
}
