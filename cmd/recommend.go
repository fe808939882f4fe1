package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/content"
	"github.com/imranulf/learnora/internal/gaps"
	"github.com/imranulf/learnora/internal/grader"
	"github.com/imranulf/learnora/internal/itembank"
	"github.com/imranulf/learnora/internal/llm"
	"github.com/imranulf/learnora/internal/pipeline"
	"github.com/imranulf/learnora/internal/retrieval"
	"github.com/imranulf/learnora/internal/store"
	"github.com/imranulf/learnora/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the full pipeline: assess, find gaps, rank content",
	Long: "Runs a simulated adaptive assessment, identifies learning gaps, and\n" +
		"returns ranked, personalized content from the bundled catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		skills, _ := cmd.Flags().GetStringSlice("skills")
		trueTheta, _ := cmd.Flags().GetFloat64("theta")
		seed, _ := cmd.Flags().GetInt64("seed")
		formats, _ := cmd.Flags().GetStringSlice("formats")
		timeBudget, _ := cmd.Flags().GetInt("time")
		strategyName, _ := cmd.Flags().GetString("strategy")
		topK, _ := cmd.Flags().GetInt("top-k")

		strategy, err := retrieval.ParseStrategy(strategyName)
		if err != nil {
			return err
		}

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

		ctx := cmd.Context()

		// LLM-backed grading is optional; the rubric fallback covers the
		// rest.
		var g grader.Grader
		if provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err == nil {
			if lg, err := grader.NewLLMGrader(provider, grader.DefaultConfig()); err == nil {
				g = lg
			}
		}

		runner, err := assessment.NewRunner(bank, assessment.DefaultConfig(), g)
		if err != nil {
			return err
		}
		if err := restoreMastery(ctx, st, runner); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: could not restore mastery state:", err)
		}

		index := retrieval.NewIndex()
		index.AddContents(content.StarterCatalog())

		cfg := pipeline.DefaultConfig()
		cfg.Strategy = strategy
		cfg.TopKPerGap = topK

		p, err := pipeline.New(runner, index, newStoreRecorder(st.EventRepo(), bank), cfg)
		if err != nil {
			return err
		}

		profile := &content.UserProfile{
			UserID:             userID,
			PreferredFormats:   formats,
			AvailableTimeDaily: timeBudget,
		}
		bundle, err := p.Run(ctx, assessment.Input{
			UserID: userID,
			Skills: skills,
			Oracle: assessment.SimulatedOracle(trueTheta, seed),
		}, profile)
		if err != nil {
			return err
		}

		if err := saveMastery(ctx, st, bundle.Assessment); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: mastery snapshot not saved:", err)
		}

		renderBundle(cmd, bundle)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("user", "local", "Learner identifier")
	recommendCmd.Flags().StringSlice("skills", nil, "Target skills (default: all skills in the bank)")
	recommendCmd.Flags().Float64("theta", 0.5, "True ability of the simulated learner")
	recommendCmd.Flags().Int64("seed", time.Now().UnixNano(), "Random seed for the simulated learner")
	recommendCmd.Flags().StringSlice("formats", []string{"video"}, "Preferred content formats")
	recommendCmd.Flags().Int("time", 45, "Daily time budget in minutes (0 = unlimited)")
	recommendCmd.Flags().String("strategy", "hybrid", "Retrieval strategy: bm25, dense, hybrid")
	recommendCmd.Flags().Int("top-k", 5, "Recommendations per learning gap")
}

func renderBundle(cmd *cobra.Command, bundle *pipeline.Bundle) {
	out := cmd.OutOrStdout()

	renderSummary(cmd, bundle.Assessment)
	fmt.Fprintln(out)

	fmt.Fprintln(out, theme.SectionHeader.Render("Learning Gaps"))
	if len(bundle.Gaps) == 0 {
		fmt.Fprintln(out, theme.Hint.Render("  none — all skills at or above target mastery"))
	}
	for _, g := range bundle.Gaps {
		fmt.Fprintf(out, "  %s %-14s %s, ~%d min  %s\n",
			priorityBadge(g.Priority),
			g.Skill,
			g.RecommendedDifficulty,
			g.EstimatedStudyMinutes,
			theme.Hint.Render(g.Rationale),
		)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, theme.SectionHeader.Render("Recommended Content"))
	for _, r := range bundle.Recommended {
		fmt.Fprintf(out, "  %.3f  %-12s %s %s\n",
			r.Score,
			r.Content.ContentType,
			theme.Value.Render(r.Content.Title),
			theme.Hint.Render(fmt.Sprintf("(%s, %d min)", r.Content.Difficulty, r.Content.DurationMinutes)),
		)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, theme.SectionHeader.Render("Learning Path"))
	for i, id := range bundle.LearningPath {
		fmt.Fprintf(out, "  %d. %s\n", i+1, id)
	}
	fmt.Fprintf(out, "\n%s %s\n",
		theme.Label.Render("Estimated completion:"),
		theme.Value.Render(fmt.Sprintf("%d minutes", bundle.EstimatedCompletionMinutes)))
	fmt.Fprintf(out, "%s %s\n",
		theme.Label.Render("Next assessment:    "),
		theme.Value.Render(bundle.NextAssessmentAt.Local().Format("2006-01-02")))

	if len(bundle.Notes) > 0 {
		fmt.Fprintln(out)
		for _, n := range bundle.Notes {
			fmt.Fprintln(out, theme.Note.Render("note: "+n))
		}
	}
}

func priorityBadge(p gaps.Priority) string {
	switch p {
	case gaps.PriorityHigh:
		return theme.PriorityHigh.Render("[high]  ")
	case gaps.PriorityMedium:
		return theme.PriorityMedium.Render("[medium]")
	default:
		return theme.PriorityLow.Render("[low]   ")
	}
}
