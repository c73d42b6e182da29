package cli

import (
	"fmt"
	"strings"

	"github.com/rickgorman/conval/internal/ui"
	"github.com/rickgorman/conval/pkg/validate"
	"github.com/spf13/cobra"
)

func newAskCmd(s *settings) *cobra.Command {
	var (
		kindName   string
		prompt     string
		policyName string
		min, max   float64
		oneOf      []string
		column     int
	)

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Read a value of the given kind",
		Long: `Read a value of the given kind, re-prompting until it converts.

Conditions (--min, --max, --one-of) are combined by --policy:
  all    every condition must accept (default)
  first  only the first condition is consulted
  any    one accepting condition is enough`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := validate.ParseKind(kindName)
			if err != nil {
				return err
			}
			policy, err := validate.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			var conditions []validate.Condition
			if cmd.Flags().Changed("min") {
				conditions = append(conditions, validate.Min(min))
			}
			if cmd.Flags().Changed("max") {
				conditions = append(conditions, validate.Max(max))
			}
			if len(oneOf) > 0 {
				conditions = append(conditions, validate.OneOf(oneOf...))
			}

			col := 0
			if prompt != "" {
				col = ui.PromptLabel(prompt)
			}
			if cmd.Flags().Changed("column") {
				col = column
			}

			v, err := s.reader().ReadWithPolicy(policy, kind, col, conditions...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "text", "Value kind: "+kindList())
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Prompt label printed before the input")
	cmd.Flags().StringVar(&policyName, "policy", "all", "How conditions combine: all, first or any")
	cmd.Flags().Float64Var(&min, "min", 0, "Reject numbers below this")
	cmd.Flags().Float64Var(&max, "max", 0, "Reject numbers above this")
	cmd.Flags().StringSliceVar(&oneOf, "one-of", nil, "Accept only these values (case-insensitive)")
	cmd.Flags().IntVar(&column, "column", 0, "Column input starts at (defaults to the prompt width)")

	return cmd
}

func kindList() string {
	names := make([]string, 0, len(validate.Kinds()))
	for _, k := range validate.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
