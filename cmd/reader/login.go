package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in to the reading helper backend",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoginCmd,
	}

	cmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")

	return cmd
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
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
	}

	resp, err := client.Login(cmd.Context(), args[0], password)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("login failed: %s", resp.Message)
	}

	if err := saveSession(client); err != nil {
		return fmt.Errorf("session not saved: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.User.Username)
	return nil
}

// promptLine writes a prompt and reads one line from the command's
// input stream.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
