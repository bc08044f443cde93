package main

import (
	"fmt"
	"os"

	"github.com/learnhubhq/docsearch/internal/cli/client"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docsearch",
		Short: "Docsearch client",
		Long:  "Search the documentation catalog and chat with the documentation assistant",
	}

	client.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(client.SearchCmd())
	rootCmd.AddCommand(client.ChatCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
