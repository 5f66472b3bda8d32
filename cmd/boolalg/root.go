package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boolalg",
	Short: "Simplify and compare boolean expressions",
	Long: `boolalg provides two features:
- Simplifies a boolean expression into sum-of-products form.
- Checks whether two boolean expressions are equivalent, by random sampling.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
