package cli

import (
	"fmt"
	"strings"

	"github.com/rickgorman/conval/internal/ui"
	"github.com/rickgorman/conval/pkg/validate"
	"github.com/spf13/cobra"
)

func newColorCmd(s *settings) *cobra.Command {
	var (
		prompt string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Read a console color name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				names := make([]string, 0, 16)
				for _, c := range validate.Colors() {
					names = append(names, c.Sprint(c.String()))
				}
				ui.DimMsg("Colors: %s", strings.Join(names, ", "))
				ui.BlankLine()
			}
			if prompt != "" {
				ui.PromptLabel(prompt)
			}

			c, err := s.reader().ReadColor()
			if err != nil {
				return err
			}
			ui.Success("Selected %s", c.Sprint(c.String()))
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt label printed before the input")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Show the available colors first")
	return cmd
}
