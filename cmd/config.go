package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/econlab-cli/internal/config"
	"github.com/KaramelBytes/econlab-cli/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set econlab configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		next := *c
		if err := setKey(&next, args[0], args[1]); err != nil {
			return err
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		*c = next
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func setKey(c *cfgpkg.Global, key, val string) error {
	var err error
	switch key {
	case "data_dir":
		c.DataDir = val
	case "energy_file":
		c.EnergyFile = val
	case "energy_skip_rows":
		c.EnergySkipRows, err = nonNegative(key, val)
	case "energy_skip_footer":
		c.EnergySkipFooter, err = nonNegative(key, val)
	case "energy_columns":
		c.EnergyColumns, err = columnList(key, val, 4)
	case "gdp_file":
		c.GDPFile = val
	case "gdp_skip_rows":
		c.GDPSkipRows, err = nonNegative(key, val)
	case "scimago_file":
		c.ScimagoFile = val
	case "gdp_years":
		years := splitList(val)
		if len(years) == 0 {
			return fmt.Errorf("invalid %s: need at least one year", key)
		}
		c.GDPYears = years
	case "top_n":
		var n int
		if n, err = nonNegative(key, val); err == nil && n == 0 {
			err = fmt.Errorf("invalid %s: must be positive", key)
		}
		c.TopN = n
	case "gdp_rank":
		c.GDPRank, err = nonNegative(key, val)
	case "towns_file":
		c.TownsFile = val
	case "towns_marker":
		if val == "" {
			return fmt.Errorf("invalid %s: empty", key)
		}
		c.TownsMarker = val
	case "gdplev_file":
		c.GDPLevFile = val
	case "gdplev_skip_rows":
		c.GDPLevSkipRows, err = nonNegative(key, val)
	case "gdplev_columns":
		c.GDPLevColumns, err = columnList(key, val, 2)
	case "housing_file":
		c.HousingFile = val
	case "housing_start_year":
		c.HousingStartYear, err = nonNegative(key, val)
	case "alpha":
		f, perr := strconv.ParseFloat(val, 64)
		if perr != nil || f <= 0 || f >= 1 {
			return fmt.Errorf("invalid float for alpha: %v (want 0 < alpha < 1)", val)
		}
		c.Alpha = f
	case "equal_var":
		b, perr := strconv.ParseBool(val)
		if perr != nil {
			return fmt.Errorf("invalid bool for equal_var: %v", val)
		}
		c.EqualVar = b
	case "output_format":
		f, perr := report.ParseFormat(val)
		if perr != nil {
			return perr
		}
		c.OutputFormat = string(f)
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return err
}

func nonNegative(key, val string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid int for %s: %v", key, val)
	}
	return i, nil
}

func columnList(key, val string, want int) ([]int, error) {
	parts := splitList(val)
	if len(parts) != want {
		return nil, fmt.Errorf("invalid %s: want %d comma-separated column positions", key, want)
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := nonNegative(key, p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func splitList(val string) []string {
	var out []string
	for _, p := range strings.Split(val, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
