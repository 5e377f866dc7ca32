package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSignupCmd creates the signup command.
func NewSignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup <username>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE:  runSignupCmd,
	}

	cmd.Flags().StringP("email", "e", "", "Email address (required)")
	cmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().StringP("bio", "b", "", "Short bio for the profile")

	return cmd
}

func runSignupCmd(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return err
	}
	bio, err := cmd.Flags().GetString("bio")
	if err != nil {
		return err
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return err
	}
	if password == "" {
		password, err = promptLine(cmd, "Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptLine(cmd, "Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	resp, err := client.Signup(cmd.Context(), args[0], email, password, bio)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("signup failed: %s", resp.Message)
	}

	if err := saveSession(client); err != nil {
		return fmt.Errorf("session not saved: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Account created, logged in as %s\n", resp.User.Username)
	return nil
}
