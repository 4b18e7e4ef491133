package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/anuvada/internal/controller"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.history.Load(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			entries := a.history.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No translation history")
				return nil
			}
			for i, e := range entries {
				fmt.Fprintf(out, "%2d. %s → %s (%s)\n", i+1, e.English, e.Kannada, humanize.Time(e.Timestamp))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the translation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.history.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <n>",
		Short: "Print entry n (1 is the newest) as both panels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry number %q", args[0])
			}

			view := newTerminalView(cmd.ErrOrStderr())
			ctrl := controller.New(a.client, view, a.history, controller.WithLogger(a.logger))
			ctrl.Init()
			if err := ctrl.Restore(n - 1); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "English: %s\n", view.Text(controller.PanelEnglish))
			fmt.Fprintf(out, "Kannada: %s\n", view.Text(controller.PanelKannada))
			return nil
		},
	})

	return cmd
}
