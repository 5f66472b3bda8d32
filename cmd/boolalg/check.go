package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nihei9/boolalg/driver/oracle"
	"github.com/nihei9/boolalg/expr"
)

var checkCmd = &cobra.Command{
	Use:   "check <expression> <expression>",
	Short: "Check whether two boolean expressions are equivalent",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

var checkTrials int

func init() {
	checkCmd.Flags().IntVar(&checkTrials, "trials", oracle.DefaultTrials, "number of random assignments to sample")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := expr.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := expr.Parse(args[1])
	if err != nil {
		return err
	}

	ok, err := oracle.Equivalent(a, b, checkTrials, nil)
	if err != nil {
		var mismatch *oracle.Mismatch
		if errors.As(err, &mismatch) {
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
			fmt.Fprintln(cmd.OutOrStdout(), mismatch.Error())
			return nil
		}
		return err
	}
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "not equivalent (differing variable sets)")
	}
	return nil
}
