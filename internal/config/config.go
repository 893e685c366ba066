package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Energy/GDP/Scimago sources
	EnergyFile       string `mapstructure:"energy_file" yaml:"energy_file"`
	EnergySkipRows   int    `mapstructure:"energy_skip_rows" yaml:"energy_skip_rows"`
	EnergySkipFooter int    `mapstructure:"energy_skip_footer" yaml:"energy_skip_footer"`
	EnergyColumns    []int  `mapstructure:"energy_columns" yaml:"energy_columns"`
	GDPFile          string `mapstructure:"gdp_file" yaml:"gdp_file"`
	GDPSkipRows      int    `mapstructure:"gdp_skip_rows" yaml:"gdp_skip_rows"`
	ScimagoFile      string `mapstructure:"scimago_file" yaml:"scimago_file"`

	GDPYears []string `mapstructure:"gdp_years" yaml:"gdp_years"`
	TopN     int      `mapstructure:"top_n" yaml:"top_n"`
	GDPRank  int      `mapstructure:"gdp_rank" yaml:"gdp_rank"`

	// Recession / housing sources
	TownsFile        string `mapstructure:"towns_file" yaml:"towns_file"`
	TownsMarker      string `mapstructure:"towns_marker" yaml:"towns_marker"`
	GDPLevFile       string `mapstructure:"gdplev_file" yaml:"gdplev_file"`
	GDPLevSkipRows   int    `mapstructure:"gdplev_skip_rows" yaml:"gdplev_skip_rows"`
	GDPLevColumns    []int  `mapstructure:"gdplev_columns" yaml:"gdplev_columns"`
	HousingFile      string `mapstructure:"housing_file" yaml:"housing_file"`
	HousingStartYear int    `mapstructure:"housing_start_year" yaml:"housing_start_year"`

	// Hypothesis test
	Alpha    float64 `mapstructure:"alpha" yaml:"alpha"`
	EqualVar bool    `mapstructure:"equal_var" yaml:"equal_var"`

	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
}

// Path resolves a configured source file against DataDir.
func (c *Global) Path(name string) string {
	if name == "" || filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.econlab/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".econlab")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("ECONLAB")
	v.AutomaticEnv()

	v.SetDefault("data_dir", ".")
	v.SetDefault("energy_file", "Energy Indicators.xlsx")
	v.SetDefault("energy_skip_rows", 17)
	v.SetDefault("energy_skip_footer", 38)
	v.SetDefault("energy_columns", []int{2, 3, 4, 5})
	v.SetDefault("gdp_file", "world_bank.csv")
	v.SetDefault("gdp_skip_rows", 4)
	v.SetDefault("scimago_file", "scimagojr-3.xlsx")
	v.SetDefault("gdp_years", []string{"2006", "2007", "2008", "2009", "2010", "2011", "2012", "2013", "2014", "2015"})
	v.SetDefault("top_n", 15)
	v.SetDefault("gdp_rank", 5)

	v.SetDefault("towns_file", "university_towns.txt")
	v.SetDefault("towns_marker", "[edit]")
	v.SetDefault("gdplev_file", "gdplev.xlsx")
	v.SetDefault("gdplev_skip_rows", 219)
	v.SetDefault("gdplev_columns", []int{4, 6})
	v.SetDefault("housing_file", "City_Zhvi_AllHomes.csv")
	v.SetDefault("housing_start_year", 2000)

	v.SetDefault("alpha", 0.01)
	v.SetDefault("equal_var", true)
	v.SetDefault("output_format", "markdown")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".econlab"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
