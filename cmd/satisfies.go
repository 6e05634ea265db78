package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verbound/vercmp/internal/log"
	"github.com/verbound/vercmp/vercmp/version"
)

var satisfiesCmd = &cobra.Command{
	Use:   "satisfies VERSION CONSTRAINT",
	Short: "Check a version against a range constraint",
	Long: `Check whether a version satisfies a range expression, e.g.:

    vercmp satisfies 1.5.0 '>= 1.0, < 2.0'
    vercmp satisfies 3.1 '< 1.0 || = 3.1'

The exit code mirrors the result (0 = satisfied, 1 = not satisfied).
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runSatisfiesCmd(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(satisfiesCmd)
}

func runSatisfiesCmd(_ *cobra.Command, args []string) int {
	ver, err := version.NewVersion(args[0], appConfig.FormatOpt)
	if err != nil {
		log.Errorf("could not parse version: %+v", err)
		return 1
	}

	constraint, err := version.GetConstraint(args[1], appConfig.FormatOpt)
	if err != nil {
		log.Errorf("could not parse constraint: %+v", err)
		return 1
	}

	satisfied, err := constraint.Satisfied(ver)
	if err != nil {
		log.Errorf("could not check constraint: %+v", err)
		return 1
	}

	fmt.Println(satisfied)
	if !satisfied {
		return 1
	}
	return 0
}
