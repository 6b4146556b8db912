package main

import (
	"context"
	"os"
	"strings"

	"github.com/blububb/cart/internal/ops"
	"github.com/blububb/cart/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for cart.

Bash:
  $ source <(cart completion bash)

Zsh:
  $ cart completion zsh > "${fpath[1]}/_cart"

Fish:
  $ cart completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd, completionZshCmd, completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeProductIDs completes the IDs of products in the file-backed cart.
// Network backends are not contacted from the shell.
func completeProductIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := storage.Open(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := s.LoadConfig()
	if err != nil || cfg.Backend != storage.BackendFile {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cart := ops.NewStore(s).Load(context.Background())
	var completions []string
	for _, item := range cart.Items {
		if strings.HasPrefix(strings.ToLower(item.ID), strings.ToLower(toComplete)) {
			completions = append(completions, item.ID+"\t"+item.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
