package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/learnhubhq/docsearch/internal/catalog"
	apiclient "github.com/learnhubhq/docsearch/internal/client"
	"github.com/learnhubhq/docsearch/internal/coordinator"
	"github.com/learnhubhq/docsearch/internal/observability"
	"github.com/learnhubhq/docsearch/internal/search"
	"github.com/spf13/cobra"
)

// SearchCmd returns the search command.
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the documentation catalog",
		Long:  "Run a local fuzzy search over the catalog, optionally blended with AI results from the server",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().Bool("ai", false, "Enable AI search (requires a token)")
	cmd.Flags().Duration("wait", 40*time.Second, "How long to wait for the AI response")

	return cmd
}

type staticAuthState struct {
	authenticated bool
}

func (s staticAuthState) IsAuthenticated() bool {
	return s.authenticated
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	conn := resolveConnection(cmd)
	aiMode, _ := cmd.Flags().GetBool("ai")
	wait, _ := cmd.Flags().GetDuration("wait")

	if aiMode {
		if err := conn.requireToken(); err != nil {
			return err
		}
	}

	logger := observability.NewLogger("warn", false)
	index := search.NewIndex(catalog.Default(), search.DefaultLimit)
	api := apiclient.New(conn.baseURL, conn.token)
	co := coordinator.New(index, api, staticAuthState{authenticated: conn.authenticated()}, coordinator.Config{
		Logger: logger,
	})

	co.Open("")
	if aiMode {
		co.SetAIMode(true)
	}
	co.SetQuery(query)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	failures := make(chan error, 1)
	go func() {
		for {
			select {
			case ev := <-co.Events():
				switch ev.Kind {
				case coordinator.EventAuthRequired:
					failures <- fmt.Errorf("authentication required for AI search")
					return
				case coordinator.EventSearchFailed:
					failures <- ev.Err
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	if aiMode {
		waitForAI(co, wait)
	}

	snap := co.Snapshot()
	co.Close()

	printMatches(cmd, snap.FuzzyMatches)
	if snap.AIPayload != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nAI: %s\n", snap.AIPayload.AISummary)
		for _, r := range snap.AIPayload.Results {
			marker := "  "
			if r.Relevance == "high" {
				marker = "* "
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s  %s\n", marker, r.Path, r.Snippet)
		}
	}

	select {
	case err := <-failures:
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "ai search unavailable: %v\n", err)
		}
	default:
	}

	return nil
}

// waitForAI blocks until the debounced AI request has resolved or the
// deadline passes.
func waitForAI(co *coordinator.Coordinator, wait time.Duration) {
	deadline := time.Now().Add(wait)
	time.Sleep(coordinator.DefaultDebounce + 50*time.Millisecond)
	for time.Now().Before(deadline) {
		snap := co.Snapshot()
		if !snap.Loading {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func printMatches(cmd *cobra.Command, matches []search.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no matches")
		return
	}
	for _, m := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%-36s %s\n", m.Document.Path, m.Document.Title)
	}
}
