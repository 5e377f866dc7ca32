package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"readhelper/internal/apiclient"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appDir = "readhelper"

// sessionPath is where the CLI keeps the session token between runs.
func sessionPath() string {
	return filepath.Join(xdg.StateHome, appDir, "session")
}

// newClient builds an API client for the configured server, restoring
// a saved session token when one exists.
func newClient(cmd *cobra.Command) (*apiclient.Client, error) {
	server, err := cmd.Flags().GetString("server")
	if err != nil {
		return nil, err
	}

	client, err := apiclient.New(server)
	if err != nil {
		return nil, err
	}

	if data, err := os.ReadFile(sessionPath()); err == nil {
		client.SetSessionToken(strings.TrimSpace(string(data)))
	}
	return client, nil
}

// saveSession persists the client's session token for later runs.
func saveSession(client *apiclient.Client) error {
	token := client.SessionToken()
	if token == "" {
		return fmt.Errorf("no session token to save")
	}
	if err := os.MkdirAll(filepath.Dir(sessionPath()), 0o755); err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), []byte(token+"\n"), 0o600)
}

// clearSession forgets the saved session token.
func clearSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// newLogger builds the CLI logger: quiet by default, development
// output with --verbose.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
