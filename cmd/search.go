package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imranulf/learnora/internal/content"
	"github.com/imranulf/learnora/internal/retrieval"
	"github.com/imranulf/learnora/internal/ui/theme"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the bundled content catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strategyName, _ := cmd.Flags().GetString("strategy")
		topK, _ := cmd.Flags().GetInt("top-k")
		weight, _ := cmd.Flags().GetFloat64("weight")
		formats, _ := cmd.Flags().GetStringSlice("formats")
		timeBudget, _ := cmd.Flags().GetInt("time")

		strategy, err := retrieval.ParseStrategy(strategyName)
		if err != nil {
			return err
		}

		index := retrieval.NewIndex()
		index.AddContents(content.StarterCatalog())

		opts := retrieval.Options{TopK: topK, DenseWeight: weight}
		if len(formats) > 0 || timeBudget > 0 {
			opts.Profile = &content.UserProfile{
				UserID:             "search",
				PreferredFormats:   formats,
				AvailableTimeDaily: timeBudget,
			}
		}

		query := strings.Join(args, " ")
		results, err := index.Search(query, strategy, opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No matching content."))
			return nil
		}

		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Results (%s)", strategy)))
		for i, r := range results {
			fmt.Fprintf(out, "%2d. %.4f  %-12s %s %s\n",
				i+1,
				r.Score,
				r.Content.ContentType,
				theme.Value.Render(r.Content.Title),
				theme.Hint.Render(fmt.Sprintf("(%s, %d min)", r.Content.Difficulty, r.Content.DurationMinutes)),
			)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().String("strategy", "hybrid", "Retrieval strategy: bm25, dense, hybrid")
	searchCmd.Flags().Int("top-k", 10, "Maximum number of results")
	searchCmd.Flags().Float64("weight", 0, "Hybrid dense weight in [0,1] (0 = default)")
	searchCmd.Flags().StringSlice("formats", nil, "Preferred content formats for personalization")
	searchCmd.Flags().Int("time", 0, "Daily time budget in minutes for personalization")
}
