package cli

import (
	"encoding/json"
	"errors"

	"github.com/rickgorman/conval/internal/form"
	"github.com/rickgorman/conval/internal/ui"
	"github.com/spf13/cobra"
)

func newFormCmd(s *settings) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "form [FILE]",
		Short: "Run an HCL form and print the submission as JSON",
		Long: `Run an HCL form and print the submission as JSON.

FILE defaults to CONVAL_FORM. See the form package documentation for the
file format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.config.FormPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no form file given (pass FILE or set CONVAL_FORM)")
			}

			f, err := form.Load(path)
			if err != nil {
				return err
			}

			r := s.reader()
			sub, err := form.Run(r, f)
			if err != nil {
				return err
			}

			if confirm {
				ui.BlankLine()
				ok, err := ui.AskYesNo(r, "Submit?")
				if err != nil {
					return err
				}
				if !ok {
					ui.Warn("Discarded")
					return nil
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sub)
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Ask before printing the submission")
	return cmd
}
