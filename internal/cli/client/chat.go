package client

import (
	"strings"

	apiclient "github.com/learnhubhq/docsearch/internal/client"
	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/spf13/cobra"
)

// ChatCmd returns the chat command.
func ChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the documentation assistant",
		Long:  "Send one message to the documentation assistant and stream the reply to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	conn := resolveConnection(cmd)
	if err := conn.requireToken(); err != nil {
		return err
	}

	message := strings.Join(args, " ")
	api := apiclient.New(conn.baseURL, conn.token)

	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: message},
	}
	return api.Chat(cmd.Context(), messages, cmd.OutOrStdout())
}
