package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verbound/vercmp/internal/log"
	"github.com/verbound/vercmp/vercmp/version"
)

var boundCmd = &cobra.Command{
	Use:   "bound {lower|upper} PREFIX",
	Short: "Derive a range bound for a version prefix",
	Long: `Derive a string that sorts below (lower) or above (upper) every version
extending the given prefix, e.g. all of "1.2.*" lies between:

    vercmp bound lower 1.2
    vercmp bound upper 1.2
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runBoundCmd(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(boundCmd)
}

func runBoundCmd(_ *cobra.Command, args []string) int {
	kind, err := version.ParseBoundKind(args[0])
	if err != nil {
		log.Errorf("could not derive bound: %+v", err)
		return 1
	}

	fmt.Println(version.Bound(args[1], kind))
	return 0
}
