package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ambiyansyah-risyal/anuvada"
)

func newSpeakCmd(a *app) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "speak <text>...",
		Short: "Ask the API to speak text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := anuvada.Language(strings.ToLower(language))
			if !lang.Valid() {
				return fmt.Errorf("invalid language %q, expected english|kannada", language)
			}

			var resp anuvada.SpeakResponse
			if err := a.client.Speak(cmd.Context(), strings.Join(args, " "), lang).Decode(&resp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", resp.Message, resp.Language)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", string(anuvada.English), "language of the text (english|kannada)")
	return cmd
}
