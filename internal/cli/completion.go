package cli

import (
	"github.com/spf13/cobra"
)

// inputExts are the file extensions offered when completing an input file.
var inputExts = []string{"csv", "xlsx"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for chartblocks.

Input file arguments of render, inspect and serve complete to .csv and .xlsx
files; --output-dir completes to directories.

Bash:
  $ source <(chartblocks completion bash)

Zsh:
  $ chartblocks completion zsh > "${fpath[1]}/_chartblocks"

Fish:
  $ chartblocks completion fish > ~/.config/fish/completions/chartblocks.fish

PowerShell:
  PS> chartblocks completion powershell | Out-String | Invoke-Expression

Start a new shell after installing a script.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(c.out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}

// completeInputFile offers chart tables for the single file argument.
func completeInputFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return inputExts, cobra.ShellCompDirectiveFilterFileExt
}

func completeDir(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
