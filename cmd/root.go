package cmd

import (
	"fmt"
	"log"
	"os"

	cfgpkg "github.com/KaramelBytes/econlab-cli/internal/config"
	"github.com/KaramelBytes/econlab-cli/internal/report"
	"github.com/KaramelBytes/econlab-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagFormat string
	flagOutput string

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = log.New(os.Stderr, "", 0)
)

var rootCmd = &cobra.Command{
	Use:   "econlab",
	Short: "econlab: answer energy, GDP, and housing questions from public datasets",
	Long: `econlab loads the Scimago, UN energy, and World Bank GDP tables to rank and compare countries,
and the GDP level, Zillow housing, and university town datasets to locate the 2008 recession
and test whether university towns held their house prices better.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.econlab/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print recovered data problems to stderr")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: markdown|json|yaml (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write the report to this file instead of stdout")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to ensureConfig
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// ensureConfig loads configuration when the initializer did not run or failed.
func ensureConfig() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}

// warn prints recovered problems when --debug is set.
func warn(warnings []string) {
	if !debug {
		return
	}
	for _, w := range warnings {
		logger.Printf("⚠ Warning: %s", w)
	}
}

// emit renders rep in the selected format to stdout or --output.
func emit(cmd *cobra.Command, c *cfgpkg.Global, rep *report.Report) error {
	name := c.OutputFormat
	if flagFormat != "" {
		name = flagFormat
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		return err
	}
	out, err := rep.Render(f)
	if err != nil {
		return err
	}
	if flagOutput != "" {
		if err := utils.SafeWriteFile(flagOutput, out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote report to %s\n", flagOutput)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
