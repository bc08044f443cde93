package main

import (
	"fmt"
	"os"

	"github.com/learnhubhq/docsearch/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docsearchd",
		Short: "Docsearch daemon",
		Long:  "Docsearch daemon serving the AI search and documentation chat endpoints",
	}

	rootCmd.AddCommand(cli.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
