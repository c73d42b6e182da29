package cli

import (
	"fmt"
	"time"

	"github.com/rickgorman/conval/pkg/validate"
	"github.com/spf13/cobra"
)

func newDateCmd(s *settings) *cobra.Command {
	var (
		format string
		styles []string
	)

	cmd := &cobra.Command{
		Use:   "date TEXT",
		Short: "Check a date against an exact format",
		Long: `Parse TEXT against exactly one format and print it as RFC 3339.

The format is a Go layout ("02/01/2006") or a strftime format ("%d/%m/%Y").
It defaults to CONVAL_DATE_LAYOUT, or 2006-01-02.

Styles: AllowLeadingWhite, AllowTrailingWhite, AllowWhiteSpaces,
AssumeLocal, AssumeUniversal, AdjustToUniversal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = s.config.DateLayout
			}
			st, err := validate.ParseDateStyles(styles...)
			if err != nil {
				return err
			}
			if err := validate.CheckDateFormat(format, st); err != nil {
				return err
			}

			t, ok := s.reader().ReadDateTime(args[0], format, st)
			if !ok {
				return fmt.Errorf("%q does not match format %q", args[0], format)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Exact date format")
	cmd.Flags().StringSliceVar(&styles, "styles", nil, "Parsing styles, comma-separated")
	return cmd
}
