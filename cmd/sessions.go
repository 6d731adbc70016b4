package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List past learning sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		s, err := openStoreFor(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		summaries, err := s.EventRepo().SessionSummaries(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-14s  %-18s  %-5s  %-7s  %-9s  %s\n",
			"Started", "Kind", "Subject", "Topic", "Qs", "Correct", "Accuracy", "Last")
		fmt.Println(strings.Repeat("─", 100))

		var totalAttempted, totalCorrect int
		shown := 0
		for _, sum := range summaries {
			if kind != "" && sum.Kind != kind {
				continue
			}
			fmt.Printf("%-19s  %-8s  %-14s  %-18s  %-5d  %-7d  %8.0f%%  %s\n",
				sum.StartedAt.Local().Format("2006-01-02 15:04:05"),
				sum.Kind,
				truncate(sum.Subject, 14),
				truncate(sum.Topic, 18),
				sum.QuestionsAttempted,
				sum.QuestionsCorrect,
				sum.AccuracyRate(),
				sum.LastAction,
			)
			totalAttempted += sum.QuestionsAttempted
			totalCorrect += sum.QuestionsCorrect
			shown++
		}

		fmt.Println(strings.Repeat("─", 100))
		var overall float64
		if totalAttempted > 0 {
			overall = float64(totalCorrect) / float64(totalAttempted) * 100
		}
		fmt.Printf("%d session(s), %d questions answered, %.0f%% overall accuracy\n",
			shown, totalAttempted, overall)
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 50, "Number of sessions to show")
	sessionsCmd.Flags().StringP("kind", "k", "", "Filter by kind (quiz, lesson, practice)")
}
