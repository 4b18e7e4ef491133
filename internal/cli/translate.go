package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/anuvada/internal/controller"
)

func newTranslateCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate English text to Kannada",
		Long:  "Translate English text to Kannada. Without arguments the text is read from stdin. Successful translations are added to the history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(data)
			}

			statusOut := cmd.ErrOrStderr()
			if quiet {
				statusOut = io.Discard
			}
			view := newTerminalView(statusOut)
			view.SetText(controller.PanelEnglish, text)

			ctrl := controller.New(a.client, view, a.history, controller.WithLogger(a.logger))
			ctrl.Init()
			ctrl.Translate(cmd.Context())

			if message, level := view.lastStatus(); level == controller.LevelError {
				return errors.New(message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.Text(controller.PanelKannada))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print status messages")
	return cmd
}
