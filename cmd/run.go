package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/learnloop/internal/app"
	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/llm"
	"github.com/abhisek/learnloop/internal/session"
	"github.com/abhisek/learnloop/internal/sync"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStoreFor(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY.")
		return err
	}

	generator := content.New(provider, content.DefaultConfig())
	adapter := sync.NewAdapter(sync.ClientFromEnv(), eventRepo)
	ctrl := session.NewController(session.NewStore(), generator, eventRepo, adapter)

	return app.Run(app.Options{
		Controller: ctrl,
		EventRepo:  eventRepo,
	})
}
