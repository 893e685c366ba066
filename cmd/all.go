package cmd

import (
	"github.com/KaramelBytes/econlab-cli/internal/report"
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Answer every energy and housing question in one report",
	Long:  "Runs both pipelines. An answer that fails is reported with its error and the remaining answers still run.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		s := newSession(c)
		rep := report.New("econlab answers")
		answers := append(append([]answer{}, energyAnswers...), housingAnswers...)
		collectAnswers(s, rep, answers)
		if rep.Failed() {
			logger.Printf("⚠ Warning: some answers failed; see the report")
		}
		return emit(cmd, c, rep)
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
