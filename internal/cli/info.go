package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/anuvada"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp anuvada.HealthResponse
			if err := a.client.HealthCheck(cmd.Context()).Decode(&resp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (version %s)\n", resp.Service, resp.Status, resp.Version)
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the API and its endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp anuvada.InfoResponse
			if err := a.client.GetInfo(cmd.Context()).Decode(&resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n%s\n\n", resp.Name, resp.Version, resp.Description)

			names := make([]string, 0, len(resp.Endpoints))
			for name := range resp.Endpoints {
				names = append(names, name)
			}
			sort.Strings(names)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, name := range names {
				ep := resp.Endpoints[name]
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, ep.Method, ep.Path)
			}
			return tw.Flush()
		},
	}
}
