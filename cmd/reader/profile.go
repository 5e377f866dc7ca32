package main

import (
	"fmt"
	"strings"

	"readhelper/internal/apiclient"

	"github.com/spf13/cobra"
)

// NewProfileCmd creates the profile command.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the current profile",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}

	cmd.AddCommand(newProfileUpdateCmd())
	cmd.AddCommand(newProfilePasswdCmd())
	cmd.AddCommand(newProfileClearHistoryCmd())

	return cmd
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	resp, err := client.Profile(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	user := resp.User
	fmt.Fprintf(out, "Username: %s\n", user.Username)
	fmt.Fprintf(out, "Email:    %s\n", user.Email)
	if user.Bio != "" {
		fmt.Fprintf(out, "Bio:      %s\n", user.Bio)
	}
	fmt.Fprintf(out, "Known words (%d): %s\n", len(user.KnownKeywords), strings.Join(user.KnownKeywords, ", "))

	if len(user.KeywordPairs) > 0 {
		fmt.Fprintln(out, "\nKeyword history:")
		for _, pair := range user.KeywordPairs {
			fmt.Fprintf(out, "  %s: %s\n", pair.Keyword, pair.Explanation)
		}
	}
	return nil
}

func newProfileUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the profile fields",
		Long: `Update replaces email, bio and the known-word list in one call.
The known-word list is replaced wholesale: words not repeated here are
forgotten.`,
		Args: cobra.NoArgs,
		RunE: runProfileUpdateCmd,
	}

	cmd.Flags().StringP("email", "e", "", "Email address (required)")
	cmd.Flags().StringP("bio", "b", "", "Short bio")
	cmd.Flags().StringSliceP("known", "k", nil, "Known words, comma separated")

	return cmd
}

func runProfileUpdateCmd(cmd *cobra.Command, _ []string) error {
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
	known, err := cmd.Flags().GetStringSlice("known")
	if err != nil {
		return err
	}

	resp, err := client.UpdateProfile(cmd.Context(), apiclient.ProfileUpdate{
		Email:         email,
		Bio:           bio,
		KnownKeywords: known,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("update failed: %s", resp.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
	return nil
}

func newProfilePasswdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			current, err := promptLine(cmd, "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := promptLine(cmd, "New password: ")
			if err != nil {
				return err
			}
			confirm, err := promptLine(cmd, "Confirm new password: ")
			if err != nil {
				return err
			}

			resp, err := client.ChangePassword(cmd.Context(), current, newPassword, confirm)
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("password change failed: %s", resp.Message)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}
}

func newProfileClearHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-history [keyword...]",
		Short: "Clear keyword history, entirely or for named keywords",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.ClearKeywordHistory(cmd.Context(), args)
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("clear failed: %s", resp.Message)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Keyword history cleared.")
			return nil
		},
	}
}
