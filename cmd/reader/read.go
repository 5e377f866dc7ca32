package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"readhelper/internal/apiclient"
	"readhelper/internal/controller"
	"readhelper/internal/tips"

	"github.com/spf13/cobra"
)

const usageTip = "Tip: explained words carry footnotes. Type any word to look it up, " +
	"or 'k <word>' once you know it and it will stop being explained."

// NewReadCmd creates the read command.
func NewReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [file]",
		Short: "Annotate a passage and explore it interactively",
		Long: `Read annotates a passage with explanations of its difficult terms
and opens an interactive session on it:

  <word>      look up one word
  k <word>    mark a word as known (stops being explained)
  s           save the passage to your history
  p           print the passage again
  q           quit

With a file argument the passage is read from the file. Without one it
is read from standard input until EOF, annotated, printed and the
session ends (there is no terminal left to interact on).`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReadCmd,
	}

	cmd.Flags().Bool("hide-tip", false, "Dismiss the usage tip permanently")

	return cmd
}

func runReadCmd(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	interactive := len(args) == 1
	var text string
	if interactive {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text = string(data)
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text = string(data)
	}

	ctrl := controller.New(client, newLogger(cmd))
	if _, err := ctrl.Submit(cmd.Context(), text); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	store := tips.NewStore()
	if hide, _ := cmd.Flags().GetBool("hide-tip"); hide {
		if err := store.Dismiss(); err != nil {
			return err
		}
	}
	if !store.Dismissed() {
		fmt.Fprintln(out, usageTip)
		fmt.Fprintln(out)
	}

	printPassage(out, ctrl.Passage(), ctrl.PendingWord())

	if !interactive {
		return nil
	}
	return runReadLoop(cmd, ctrl)
}

func runReadLoop(cmd *cobra.Command, ctrl *controller.Controller) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "q", "quit":
			return nil
		case "p", "print":
			printPassage(out, ctrl.Passage(), ctrl.PendingWord())
		case "s", "save":
			if err := ctrl.Save(cmd.Context()); err != nil {
				reportActionError(out, err)
				continue
			}
			fmt.Fprintln(out, "Passage saved.")
		case "k", "know":
			if rest == "" {
				fmt.Fprintln(out, "usage: k <word>")
				continue
			}
			if _, err := ctrl.MarkKnown(cmd.Context(), rest); err != nil {
				reportActionError(out, err)
				continue
			}
			printPassage(out, ctrl.Passage(), ctrl.PendingWord())
		default:
			// Anything else is a word to look up.
			if _, err := ctrl.RequestExplanation(cmd.Context(), line); err != nil {
				reportActionError(out, err)
				continue
			}
			printPassage(out, ctrl.Passage(), ctrl.PendingWord())
		}
	}
}

// reportActionError prints a failure without ending the session. The
// passage on screen stays valid: failed actions never change it.
func reportActionError(w io.Writer, err error) {
	var authErr *apiclient.AuthExpiredError
	if errors.As(err, &authErr) {
		fmt.Fprintln(w, authErr.Error())
		return
	}

	var notFound *apiclient.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(w, "No explanation found: %s\n", notFound.Message)
		return
	}

	switch {
	case errors.Is(err, controller.ErrLookupPending):
		fmt.Fprintln(w, "Still looking up the previous word.")
	case errors.Is(err, controller.ErrWordNotInPassage):
		fmt.Fprintln(w, "That word is not in the passage.")
	default:
		fmt.Fprintf(w, "Request failed: %v\n", err)
	}
}
