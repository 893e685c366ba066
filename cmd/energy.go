package cmd

import (
	"fmt"

	"github.com/KaramelBytes/econlab-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	energyTopN int
	energyRank int
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Join Scimago, energy, and GDP tables and answer country questions",
}

func init() {
	rootCmd.AddCommand(energyCmd)
	energyCmd.PersistentFlags().IntVar(&energyTopN, "top-n", 0, "Scimago ranks to keep before joining (overrides config)")

	uses := []string{"joined", "dropped", "avg-gdp", "gdp-change"}
	shorts := []string{
		"Show the top-ranked countries present in all three sources",
		"Count countries lost by the inner join",
		"Rank joined countries by average GDP over the configured years",
		"GDP change over the span for the country at --rank",
	}
	for i, a := range energyAnswers {
		c := answerCommand(uses[i], shorts[i], "Energy", a, energyOverrides)
		if uses[i] == "gdp-change" {
			c.Flags().IntVar(&energyRank, "rank", 0, "0-based position in the average GDP ranking (overrides config)")
		}
		energyCmd.AddCommand(c)
	}
}

func energyOverrides(cmd *cobra.Command, s *session) error {
	if cmd.Flags().Changed("top-n") {
		if energyTopN <= 0 {
			return fmt.Errorf("invalid --top-n: %d", energyTopN)
		}
		s.cfg.TopN = energyTopN
	}
	if f := cmd.Flags().Lookup("rank"); f != nil && f.Changed {
		if energyRank < 0 {
			return fmt.Errorf("invalid --rank: %d", energyRank)
		}
		s.cfg.GDPRank = energyRank
	}
	return nil
}

// answerCommand wraps one answer in a cobra command producing a report.
func answerCommand(use, short, title string, a answer, overrides func(*cobra.Command, *session) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ensureConfig()
			if err != nil {
				return err
			}
			s := newSession(c)
			if overrides != nil {
				if err := overrides(cmd, s); err != nil {
					return err
				}
			}
			rep := report.New(title + ": " + a.name)
			if err := a.run(s, rep, a.name); err != nil {
				return err
			}
			return emit(cmd, c, rep)
		},
	}
}
