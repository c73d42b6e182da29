package cli

import (
	"fmt"

	"github.com/rickgorman/conval/internal/menu"
	"github.com/rickgorman/conval/internal/ui"
	"github.com/spf13/cobra"
)

func newMenuCmd(s *settings) *cobra.Command {
	var (
		title string
		pick  bool
	)

	cmd := &cobra.Command{
		Use:   "menu CHOICE...",
		Short: "Render a numbered menu",
		Long: `Render a numbered menu with an optional centered title.

With --pick the menu is shown on stderr, a choice number is read and the
chosen text is printed on stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := menu.NewWithTitle(title, args...)

			out := cmd.OutOrStdout()
			if pick {
				out = ui.Out
			}
			for line := range m.Show() {
				fmt.Fprintln(out, line)
			}
			if !pick {
				return nil
			}

			idx, err := ui.AskChoice(s.reader(), "Select", len(m.Choices))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Choices[idx])
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title centered above the choices")
	cmd.Flags().BoolVar(&pick, "pick", false, "Read a choice number and print the chosen text")
	return cmd
}
