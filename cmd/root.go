package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verbound/vercmp/internal"
	"github.com/verbound/vercmp/internal/format"
	"github.com/verbound/vercmp/internal/log"
	"github.com/verbound/vercmp/vercmp/version"
)

var leftFlagNames []string
var rightFlagNames []string

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [flags] LEFT RIGHT", internal.ApplicationName),
	Short: "Compare two version strings",
	Long: format.Tprintf(`Compare two version strings under a flexible, scheme-tolerant grammar:
    {{.appName}} 1.0 1.0.1                        plain comparison
    {{.appName}} -f deb 1:1.0-1 1:1.0-2           compare under a specific scheme
    {{.appName}} --left-flag p-is-patch 1.0p1 1.0 per-side interpretation flags
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(cmd, args))
	},
}

func init() {
	// output & formatting options
	flag := "output"
	rootCmd.Flags().StringP(
		flag, "o", "text",
		"result output format (available=[text, json])",
	)
	if err := viper.BindPFlag(flag, rootCmd.Flags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v\n", flag, err)
		os.Exit(1)
	}

	rootCmd.Flags().StringArrayVar(&leftFlagNames, "left-flag", nil, "interpretation flag for the left version (repeatable; one of p-is-patch, any-is-patch, lower-bound, upper-bound)")
	rootCmd.Flags().StringArrayVar(&rightFlagNames, "right-flag", nil, "interpretation flag for the right version (repeatable)")
}

type comparisonResult struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

func relation(comparison int) string {
	switch {
	case comparison < 0:
		return "<"
	case comparison > 0:
		return ">"
	}
	return "="
}

func relationWord(comparison int) string {
	switch {
	case comparison < 0:
		return "less"
	case comparison > 0:
		return "greater"
	}
	return "equal"
}

func runDefaultCmd(_ *cobra.Command, args []string) int {
	left, right := args[0], args[1]

	comparison, err := compareArgs(left, right)
	if err != nil {
		log.Errorf("could not compare versions: %+v", err)
		return 1
	}

	switch outputOption := viper.GetString("output"); outputOption {
	case "text":
		fmt.Printf("%s %s %s\n", left, relation(comparison), right)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(comparisonResult{Left: left, Right: right, Result: relationWord(comparison)}); err != nil {
			log.Errorf("could not encode result: %+v", err)
			return 1
		}
	default:
		log.Errorf("unsupported output format: %s", outputOption)
		return 1
	}

	return 0
}

func compareArgs(left, right string) (int, error) {
	formatOpt := appConfig.FormatOpt

	if formatOpt == version.GenericFormat {
		leftFlags, err := version.ParseFlags(leftFlagNames)
		if err != nil {
			return 0, err
		}
		rightFlags, err := version.ParseFlags(rightFlagNames)
		if err != nil {
			return 0, err
		}
		return version.CompareWithFlags(left, right, leftFlags, rightFlags), nil
	}

	if len(leftFlagNames) > 0 || len(rightFlagNames) > 0 {
		return 0, fmt.Errorf("interpretation flags are only supported for the %s format", version.GenericFormat)
	}

	leftVer, err := version.NewVersion(left, formatOpt)
	if err != nil {
		return 0, err
	}
	rightVer, err := version.NewVersion(right, formatOpt)
	if err != nil {
		return 0, err
	}

	return leftVer.Compare(rightVer)
}
