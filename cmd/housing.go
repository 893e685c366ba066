package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	housingAlpha float64
	housingWelch bool
	housingRows  int
)

var housingCmd = &cobra.Command{
	Use:   "housing",
	Short: "Locate the recession and compare university town house prices",
}

func init() {
	rootCmd.AddCommand(housingCmd)

	uses := []string{"towns", "recession-start", "recession-end", "recession-bottom", "quarterly", "ttest"}
	shorts := []string{
		"List university towns as (state, region) pairs",
		"First quarter of two consecutive GDP declines",
		"Second of two consecutive growth quarters after the start",
		"Lowest GDP quarter between start and end",
		"Quarterly mean house prices per region",
		"t-test of price growth, university towns vs the rest",
	}
	for i, a := range housingAnswers {
		c := answerCommand(uses[i], shorts[i], "Housing", a, housingOverrides)
		switch uses[i] {
		case "quarterly":
			c.Flags().IntVar(&housingRows, "rows", defaultPreviewRows, "regions shown in Markdown output (0 = all)")
		case "ttest":
			c.Flags().Float64Var(&housingAlpha, "alpha", 0, "significance level (overrides config)")
			c.Flags().BoolVar(&housingWelch, "welch", false, "use Welch's unequal-variance test")
		}
		housingCmd.AddCommand(c)
	}
}

func housingOverrides(cmd *cobra.Command, s *session) error {
	if f := cmd.Flags().Lookup("rows"); f != nil {
		if housingRows < 0 {
			return fmt.Errorf("invalid --rows: %d", housingRows)
		}
		s.previewRows = housingRows
	}
	if f := cmd.Flags().Lookup("alpha"); f != nil && f.Changed {
		if housingAlpha <= 0 || housingAlpha >= 1 {
			return fmt.Errorf("invalid --alpha: %v (want 0 < alpha < 1)", housingAlpha)
		}
		s.cfg.Alpha = housingAlpha
	}
	if f := cmd.Flags().Lookup("welch"); f != nil && f.Changed {
		s.cfg.EqualVar = !housingWelch
	}
	return nil
}
