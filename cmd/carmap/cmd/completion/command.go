// Package completion implements the completion command.
package completion

import (
	"github.com/spf13/cobra"
)

// Shells lists the shells a completion script can be generated for.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(carmap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ carmap completion bash > /etc/bash_completion.d/carmap
  # macOS:
  $ carmap completion bash > $(brew --prefix)/etc/bash_completion.d/carmap

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ carmap completion zsh > "${fpath[1]}/_carmap"

Fish:

  $ carmap completion fish | source

  # To load completions for each session, execute once:
  $ carmap completion fish > ~/.config/fish/completions/carmap.fish

PowerShell:

  PS> carmap completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
