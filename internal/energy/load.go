package energy

import (
	"fmt"
	"strconv"

	"github.com/KaramelBytes/econlab-cli/internal/table"
)

// Scimago column headers.
const (
	colRank                 = "Rank"
	colCountry              = "Country"
	colDocuments            = "Documents"
	colCitableDocuments     = "Citable documents"
	colCitations            = "Citations"
	colSelfCitations        = "Self-citations"
	colCitationsPerDocument = "Citations per document"
	colHIndex               = "H index"

	colCountryName = "Country Name"
)

// EnergyColumnNames names the four energy columns after selection.
var EnergyColumnNames = []string{"Country", "Energy Supply", "Energy Supply per Capita", "% Renewable"}

// Paths locates the three sources and how to read them.
type Paths struct {
	Scimago string

	Energy           string
	EnergySkipRows   int
	EnergySkipFooter int
	EnergyColumns    []int

	GDP         string
	GDPSkipRows int
	Years       []string
}

// Load reads, cleans, and normalizes all three sources.
func Load(p Paths) (*Sources, error) {
	src := &Sources{}

	st, err := table.Load(p.Scimago, table.Options{Header: true})
	if err != nil {
		return nil, fmt.Errorf("scimago: %w", err)
	}
	if src.Scimago, src.Warnings, err = ScimagoFromTable(st, src.Warnings); err != nil {
		return nil, fmt.Errorf("scimago: %w", err)
	}

	et, err := table.Load(p.Energy, table.Options{
		SkipRows:   p.EnergySkipRows,
		SkipFooter: p.EnergySkipFooter,
		Header:     true,
		Columns:    p.EnergyColumns,
		Names:      EnergyColumnNames,
	})
	if err != nil {
		return nil, fmt.Errorf("energy: %w", err)
	}
	src.Energy, src.Warnings = EnergyFromTable(et, src.Warnings)

	gt, err := table.Load(p.GDP, table.Options{SkipRows: p.GDPSkipRows, Header: true})
	if err != nil {
		return nil, fmt.Errorf("gdp: %w", err)
	}
	if src.GDP, src.Warnings, err = GDPFromTable(gt, p.Years, src.Warnings); err != nil {
		return nil, fmt.Errorf("gdp: %w", err)
	}

	return src, nil
}

// ScimagoFromTable reads ranking rows in file order. A missing Rank column
// falls back to row position; a missing Country column is an error.
func ScimagoFromTable(t *table.Table, warnings []string) ([]ScimagoEntry, []string, error) {
	rank := t.Index(colRank)
	country := t.Index(colCountry)
	if country < 0 {
		return nil, warnings, fmt.Errorf("%s: %w %q", t.Name, table.ErrMissingColumn, colCountry)
	}
	num := func(row int, name string) float64 {
		if v := t.Float(row, t.Index(name)); v != nil {
			return *v
		}
		return 0
	}

	var out []ScimagoEntry
	for i := 0; i < t.Len(); i++ {
		name := ScimagoNames.Normalize(t.Cell(i, country))
		if name == "" {
			continue
		}
		r := len(out) + 1
		if rank >= 0 {
			if n, err := strconv.Atoi(t.Cell(i, rank)); err == nil {
				r = n
			} else if v := t.Float(i, rank); v != nil {
				r = int(*v)
			}
		}
		out = append(out, ScimagoEntry{
			Rank:                 r,
			Country:              name,
			Documents:            num(i, colDocuments),
			CitableDocuments:     num(i, colCitableDocuments),
			Citations:            num(i, colCitations),
			SelfCitations:        num(i, colSelfCitations),
			CitationsPerDocument: num(i, colCitationsPerDocument),
			HIndex:               num(i, colHIndex),
		})
	}
	return out, warnings, nil
}

// EnergyFromTable coerces the four energy columns (country first) and
// normalizes names after all rows are parsed.
func EnergyFromTable(t *table.Table, warnings []string) ([]EnergyEntry, []string) {
	var (
		out    []EnergyEntry
		names  []string
		nulled int
	)
	for i := 0; i < t.Len(); i++ {
		raw := t.Cell(i, 0)
		if raw == "" {
			continue
		}
		e, n := CoerceEnergy(raw, t.Cell(i, 1), t.Cell(i, 2), t.Cell(i, 3))
		nulled += n
		out = append(out, e)
		names = append(names, raw)
	}
	EnergyNames.NormalizeAll(names)
	for i := range out {
		out[i].Country = names[i]
	}
	if nulled > 0 {
		warnings = append(warnings, fmt.Sprintf("%s: %d non-numeric energy cells set to null", t.Name, nulled))
	}
	return out, warnings
}

// GDPFromTable keeps only the requested year columns. Absent years become
// null; an absent Country Name column is an error.
func GDPFromTable(t *table.Table, years []string, warnings []string) ([]GDPEntry, []string, error) {
	country := t.Index(colCountryName)
	if country < 0 {
		return nil, warnings, fmt.Errorf("%s: %w %q", t.Name, table.ErrMissingColumn, colCountryName)
	}
	idx := make([]int, len(years))
	for j, y := range years {
		idx[j] = t.Index(y)
		if idx[j] < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: no %q column, values treated as null", t.Name, y))
		}
	}

	var out []GDPEntry
	for i := 0; i < t.Len(); i++ {
		name := GDPNames.Normalize(t.Cell(i, country))
		if name == "" {
			continue
		}
		g := GDPEntry{Country: name, Years: make(map[string]*float64, len(years))}
		for j, y := range years {
			g.Years[y] = t.Float(i, idx[j])
		}
		out = append(out, g)
	}
	return out, warnings, nil
}
