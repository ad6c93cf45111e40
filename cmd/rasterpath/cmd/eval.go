package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rasterpath/formula"
)

func newEvalCmd() *cobra.Command {
	var (
		vars  []string
		names bool
	)
	c := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a traversability or cost formula",
		Long: `Compile a formula and evaluate it against the given variables. Comparisons
print True or False, arithmetic prints a number.

Examples:
  rasterpath eval "2 ** 10"
  rasterpath eval "1 < val1 <= 5" --var val1=3
  rasterpath eval "x + y * val2" --var x=1 --var y=2 --var val2=0.5
  rasterpath eval --names "val1 / (x + 1)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if names {
				f, err := formula.Compile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(f.Names(), " "))
				return nil
			}
			bindings, err := parseVars(vars)
			if err != nil {
				return err
			}
			v, err := formula.Evaluate(args[0], bindings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
	c.Flags().StringArrayVar(&vars, "var", nil, "bind a variable as name=value (repeatable)")
	c.Flags().BoolVar(&names, "names", false, "print the variables the formula reads instead of evaluating it")
	return c
}

// parseVars turns name=value pairs into bindings.
func parseVars(pairs []string) (formula.Vars, error) {
	vars := make(formula.Vars, len(pairs))
	for _, p := range pairs {
		name, raw, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: want name=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", p, err)
		}
		vars[name] = v
	}
	return vars, nil
}
