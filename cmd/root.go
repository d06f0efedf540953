package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/calebh/stackbuddy/cmd/note"
	"github.com/calebh/stackbuddy/cmd/parent"
	stackcmd "github.com/calebh/stackbuddy/cmd/stack"
	switchcmd "github.com/calebh/stackbuddy/cmd/switch"
	"github.com/calebh/stackbuddy/cmd/updatenotes"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stackbuddy",
	Short: "Navigate and annotate stacked PRs",
	Long: `Stackbuddy helps you work with stacked pull requests.

It reconstructs the chain of branches between your current branch and the
trunk straight from git history (no stored metadata), shows which PRs come
before and after each one, and can stamp that adjacency note into the PR
descriptions on GitHub.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&parent.Command{},
		&stackcmd.Command{},
		&note.Command{},
		&updatenotes.Command{},
		&switchcmd.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
