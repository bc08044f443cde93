// Package client implements the docsearch CLI commands. They drive the
// same coordinator and API client the search dialog uses.
package client

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	envToken  = "DOCSEARCH_TOKEN"
	envAPIURL = "DOCSEARCH_API_URL"

	defaultAPIURL = "http://localhost:8080"
)

// connection resolves the server URL and bearer token with the cascade:
// flag, then environment, then default.
type connection struct {
	baseURL string
	token   string
}

func resolveConnection(cmd *cobra.Command) connection {
	_ = godotenv.Load()

	conn := connection{}
	if flagURL, err := cmd.Flags().GetString("api-url"); err == nil && flagURL != "" {
		conn.baseURL = flagURL
	}
	if flagToken, err := cmd.Flags().GetString("token"); err == nil && flagToken != "" {
		conn.token = flagToken
	}

	if conn.baseURL == "" {
		conn.baseURL = os.Getenv(envAPIURL)
	}
	if conn.token == "" {
		conn.token = os.Getenv(envToken)
	}
	if conn.baseURL == "" {
		conn.baseURL = defaultAPIURL
	}
	return conn
}

// authenticated reports whether a bearer token is available for this
// session.
func (c connection) authenticated() bool {
	return c.token != ""
}

func (c connection) requireToken() error {
	if c.token == "" {
		return fmt.Errorf("%s not set (pass --token or export the environment variable)", envToken)
	}
	return nil
}

// RegisterFlags adds the shared connection flags to a flag set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("api-url", "", "docsearch server URL")
	fs.String("token", "", "bearer token for AI endpoints")
}
