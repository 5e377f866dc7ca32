package main

import (
	"errors"
	"fmt"
	"strconv"

	"readhelper/internal/apiclient"
	"readhelper/internal/render"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved passages",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}

	cmd.AddCommand(newHistoryDeleteCmd())
	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	passages, err := client.SavedPassages(cmd.Context())
	if err != nil {
		return err
	}
	if len(passages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved passages.")
		return nil
	}

	for _, saved := range passages {
		preview := ""
		if len(saved.Passage) > 0 {
			preview = truncate(render.JoinParagraph(saved.Passage[0]), 60)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", saved.ID, preview)
	}
	return nil
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one saved passage with its explanations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid passage id %q", args[0])
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			passages, err := client.SavedPassages(cmd.Context())
			if err != nil {
				return err
			}
			for _, saved := range passages {
				if saved.ID == id {
					printPassage(cmd.OutOrStdout(), saved.Passage, "")
					return nil
				}
			}
			return fmt.Errorf("no saved passage with id %d", id)
		},
	}
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one saved passage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid passage id %q", args[0])
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			err = client.DeletePassage(cmd.Context(), id)
			var notFound *apiclient.NotFoundError
			if errors.As(err, &notFound) {
				// Already gone, nothing left to do.
				fmt.Fprintf(cmd.OutOrStdout(), "Passage %d was already deleted.\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Passage %d deleted.\n", id)
			return nil
		},
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
