package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate a shell completion for vercmp",
	Long: `To load completions:

Bash:

$ source <(vercmp completion bash)

# To load completions for each session, execute once:
Linux:
  $ vercmp completion bash > /etc/bash_completion.d/vercmp
MacOS:
  $ vercmp completion bash > /usr/local/etc/bash_completion.d/vercmp

Zsh:

# To load completions for each session, execute once:
$ vercmp completion zsh > "${fpath[1]}/_vercmp"

# You will need to start a new shell for this setup to take effect.

Fish:

$ vercmp completion fish | source

# To load completions for each session, execute once:
$ vercmp completion fish > ~/.config/fish/completions/vercmp.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			err = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			err = cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		if err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
