package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE:  runLogoutCmd,
	}
}

func runLogoutCmd(cmd *cobra.Command, _ []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	// Tell the server first; the local token is removed either way.
	logoutErr := client.Logout(cmd.Context())

	if err := clearSession(); err != nil {
		return err
	}
	if logoutErr != nil {
		return fmt.Errorf("local session cleared, server logout failed: %w", logoutErr)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}
