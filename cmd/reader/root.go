package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultServerURL points at a locally running backend.
const defaultServerURL = "http://127.0.0.1:8000/api"

// NewRootCmd creates the root command for the reader CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reader",
		Short: "Reading helper for difficult English passages",
		Long: `Reader annotates English passages with explanations of their
difficult terms, looks up additional words on demand, and remembers
which words you already know so they stop being explained.

Log in first to get known-word filtering, keyword history and saved
passages; annotation itself also works without an account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("server", "s", defaultServerURL, "Backend base URL")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewLoginCmd())
	cmd.AddCommand(NewSignupCmd())
	cmd.AddCommand(NewLogoutCmd())
	cmd.AddCommand(NewReadCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewProfileCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
