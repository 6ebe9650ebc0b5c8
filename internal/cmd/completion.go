package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCompletionCmd writes shell completion scripts to stdout
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `Generate a shell completion script for syntaxdemo.

  Bash:       source <(syntaxdemo completion bash)
  Zsh:        syntaxdemo completion zsh > "${fpath[1]}/_syntaxdemo"
  Fish:       syntaxdemo completion fish | source
  PowerShell: syntaxdemo completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported shell type: %s", args[0])
			}
		},
	}

	// Completion needs neither the config file nor the file logger.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return nil
	}

	return cmd
}
