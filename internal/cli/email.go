package cli

import (
	"fmt"

	"github.com/rickgorman/conval/internal/ui"
	"github.com/spf13/cobra"
)

func newEmailCmd(s *settings) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Read an email address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt != "" {
				ui.PromptLabel(prompt)
			}
			email, err := s.reader().ReadEmail()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt label printed before the input")
	return cmd
}
