package housing

import (
	"fmt"

	"github.com/KaramelBytes/econlab-cli/internal/table"
)

// Paths locates the recession and housing sources.
type Paths struct {
	Towns       string
	TownsMarker string

	GDPLev         string
	GDPLevSkipRows int
	GDPLevColumns  []int

	Housing          string
	HousingStartYear int
}

// LoadTowns reads and parses the university town listing.
func LoadTowns(p Paths) ([]Town, error) {
	lines, err := table.LoadLines(p.Towns)
	if err != nil {
		return nil, fmt.Errorf("university towns: %w", err)
	}
	return ParseTowns(lines, p.TownsMarker), nil
}

// LoadTimeline reads the quarterly GDP series. The row after the skipped
// preamble is a header and is replaced by fixed names.
func LoadTimeline(p Paths) (*Timeline, []string, error) {
	tbl, err := table.Load(p.GDPLev, table.Options{
		SkipRows: p.GDPLevSkipRows,
		Header:   true,
		Columns:  p.GDPLevColumns,
		Names:    []string{"quarter", "gdp_billions"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("gdp levels: %w", err)
	}
	tl, warnings := TimelineFromTable(tbl, nil)
	return tl, warnings, nil
}

// LoadQuarterly reads the monthly housing table and converts it to quarters.
func LoadQuarterly(p Paths) (*Quarterly, []string, error) {
	tbl, err := table.Load(p.Housing, table.Options{Header: true})
	if err != nil {
		return nil, nil, fmt.Errorf("housing: %w", err)
	}
	return ToQuarters(tbl, p.HousingStartYear, nil)
}
