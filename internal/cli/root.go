// Package cli wires the signassist commands.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the interactive UI, searching the arguments if any were given.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "signassist [term]",
		Short: "SignAssist - learn American Sign Language signs in the terminal",
		Long: `Type a word, watch how it is signed and practice it.

SignAssist looks up a video of the sign and asks an AI model to describe
the hand shape and movement. Use --provider offline to try it without an
API key.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, strings.Join(args, " "))
		},
	}

	flags.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newDescribeCmd(flags))
	rootCmd.AddCommand(newURLCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
