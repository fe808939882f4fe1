package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imranulf/learnora/internal/store"
	"github.com/imranulf/learnora/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.EventRepo()
		out := cmd.OutOrStdout()

		stats, err := repo.SkillAccuracy(ctx, userID)
		if err != nil {
			return fmt.Errorf("query skill accuracy: %w", err)
		}

		fmt.Fprintln(out, theme.Title.Render("Skill Accuracy"))
		if len(stats) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No responses recorded yet."))
		} else {
			fmt.Fprintf(out, "%-14s  %7s  %8s\n", "Skill", "Answered", "Accuracy")
			fmt.Fprintln(out, strings.Repeat("─", 34))
			for _, st := range stats {
				fmt.Fprintf(out, "%-14s  %7d  %7.0f%%\n", st.Skill, st.Total, st.Accuracy*100)
			}
		}

		history, err := repo.RecentAssessments(ctx, userID, limit)
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Title.Render("Recent Assessments"))
		if len(history) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No assessments recorded yet."))
			return nil
		}
		fmt.Fprintf(out, "%-38s  %7s  %6s  %5s  %s\n", "Session", "Theta", "SE", "Items", "Notes")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, a := range history {
			note := ""
			if a.EarlyTermination {
				note = "early termination"
			}
			fmt.Fprintf(out, "%-38s  %7.3f  %6.3f  %5d  %s\n",
				a.SessionID, a.Theta, a.StandardError, a.ItemsAsked, note)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "local", "Learner identifier")
	statsCmd.Flags().IntP("limit", "n", 10, "Number of assessments to show")
}
