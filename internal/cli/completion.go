package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command. Scripts complete
// subcommands, flags, demo scenario names and fixture files.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for bash, zsh, fish or powershell.

Once loaded, "linkviz demo <TAB>" offers the built-in scenarios and
"linkviz render <TAB>" offers fixture files.`,
		Example: `  # current bash session
  source <(linkviz completion bash)

  # zsh, permanently
  linkviz completion zsh > "${fpath[1]}/_linkviz"

  # fish
  linkviz completion fish > ~/.config/fish/completions/linkviz.fish

  # powershell
  linkviz completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.Out, true)
			case "zsh":
				return root.GenZshCompletion(c.Out)
			case "fish":
				return root.GenFishCompletion(c.Out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(c.Out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// fixtureExtensions limits file completion for fixture arguments.
var fixtureExtensions = []string{"json", "toml", "yaml", "yml"}

// completeFixture is the ValidArgsFunction of commands taking one fixture.
func completeFixture(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return fixtureExtensions, cobra.ShellCompDirectiveFilterFileExt
}
