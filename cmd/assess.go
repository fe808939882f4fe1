package cmd

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/itembank"
	"github.com/imranulf/learnora/internal/store"
	"github.com/imranulf/learnora/internal/ui/theme"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a simulated adaptive assessment",
	Long: "Runs the adaptive assessment loop against a simulated learner whose\n" +
		"true ability is set with --theta. Mastery state persists across runs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		skills, _ := cmd.Flags().GetStringSlice("skills")
		trueTheta, _ := cmd.Flags().GetFloat64("theta")
		seed, _ := cmd.Flags().GetInt64("seed")

		bank, err := itembank.StarterBank()
		if err != nil {
			return fmt.Errorf("build item bank: %w", err)
		}
		if len(skills) == 0 {
			skills = bank.Skills()
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		runner, err := assessment.NewRunner(bank, assessment.DefaultConfig(), nil)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := restoreMastery(ctx, st, runner); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: could not restore mastery state:", err)
		}

		summary, err := runner.Run(ctx, assessment.Input{
			UserID: userID,
			Skills: skills,
			Oracle: assessment.SimulatedOracle(trueTheta, seed),
		})
		if err != nil {
			return err
		}

		recorder := newStoreRecorder(st.EventRepo(), bank)
		if err := recorder.RecordAssessment(ctx, summary); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: assessment not persisted:", err)
		}
		if err := saveMastery(ctx, st, summary); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: mastery snapshot not saved:", err)
		}

		renderSummary(cmd, summary)
		return nil
	},
}

func init() {
	assessCmd.Flags().String("user", "local", "Learner identifier")
	assessCmd.Flags().StringSlice("skills", nil, "Target skills (default: all skills in the bank)")
	assessCmd.Flags().Float64("theta", 0.5, "True ability of the simulated learner")
	assessCmd.Flags().Int64("seed", time.Now().UnixNano(), "Random seed for the simulated learner")
}

// restoreMastery loads the latest snapshot into the runner's tracer.
func restoreMastery(ctx context.Context, st *store.Store, runner *assessment.Runner) error {
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return err
	}
	if snap != nil && len(snap.Data.Mastery) > 0 {
		runner.Tracer().Restore(snap.Data.Mastery)
	}
	return nil
}

// saveMastery snapshots the post-assessment mastery state.
func saveMastery(ctx context.Context, st *store.Store, summary *assessment.Summary) error {
	repo := st.SnapshotRepo()
	err := repo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version: 1,
			UserID:  summary.UserID,
			Mastery: summary.Mastery,
			Theta:   summary.Theta,
		},
	})
	if err != nil {
		return err
	}
	return repo.Prune(ctx, 10)
}

func renderSummary(cmd *cobra.Command, summary *assessment.Summary) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, theme.Title.Render("Assessment Complete"))
	fmt.Fprintln(out, theme.Subtitle.Render("session "+summary.SessionID))
	fmt.Fprintln(out)

	se := fmt.Sprintf("%.3f", summary.StandardError)
	if math.IsInf(summary.StandardError, 1) {
		se = "n/a"
	}
	fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Ability (theta): "), theme.Value.Render(fmt.Sprintf("%.3f", summary.Theta)))
	fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Standard error:  "), theme.Value.Render(se))
	fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Items asked:     "), theme.Value.Render(fmt.Sprintf("%d", len(summary.ItemsAsked))))
	fmt.Fprintln(out)

	fmt.Fprintln(out, theme.SectionHeader.Render("Responses"))
	for _, code := range summary.ItemsAsked {
		mark := theme.Incorrect.Render("✗")
		if summary.Responses[code] == 1 {
			mark = theme.Correct.Render("✓")
		}
		fmt.Fprintf(out, "  %s %s\n", mark, code)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, theme.SectionHeader.Render("Mastery"))
	skills := make([]string, 0, len(summary.Mastery))
	for s := range summary.Mastery {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	for _, s := range skills {
		fmt.Fprintf(out, "  %-14s %s\n", s, masteryBar(summary.Mastery[s]))
	}

	if len(summary.Notes) > 0 {
		fmt.Fprintln(out)
		for _, n := range summary.Notes {
			fmt.Fprintln(out, theme.Note.Render("note: "+n))
		}
	}
}

// masteryBar renders a 20-cell bar with the numeric value.
func masteryBar(m float64) string {
	filled := int(m*20 + 0.5)
	if filled > 20 {
		filled = 20
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return fmt.Sprintf("%s %.2f", bar, m)
}
