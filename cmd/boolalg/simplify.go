package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nihei9/boolalg/expr"
	"github.com/nihei9/boolalg/qm"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify <expression>",
	Short: "Simplify a boolean expression into minimized sum-of-products form",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}

func runSimplify(cmd *cobra.Command, args []string) error {
	n, err := expr.Parse(args[0])
	if err != nil {
		return err
	}

	result, contradictory, err := qm.CompleteSimplify(n)
	if err != nil {
		return err
	}
	for _, bad := range contradictory {
		if bad {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: a contradictory term (a variable ANDed with its own negation) was encoded as always-true")
			break
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
