package housing

import (
	"fmt"

	"github.com/KaramelBytes/econlab-cli/internal/table"
	"gonum.org/v1/gonum/stat"
)

const (
	colState      = "State"
	colRegionName = "RegionName"
)

// RegionPrices is one (state, region) row of quarterly mean prices.
type RegionPrices struct {
	State      string              `json:"state" yaml:"state"`
	RegionName string              `json:"region_name" yaml:"region_name"`
	Prices     map[string]*float64 `json:"prices" yaml:"prices"`
}

// Quarterly holds one row per distinct (state, region) in source order and
// one column per quarter of a contiguous range.
type Quarterly struct {
	Quarters []string       `json:"quarters" yaml:"quarters"`
	Rows     []RegionPrices `json:"rows" yaml:"rows"`
}

// Len returns the number of regions.
func (q *Quarterly) Len() int { return len(q.Rows) }

// Price looks up a region's mean price for a quarter label.
func (q *Quarterly) Price(state, region, quarter string) *float64 {
	for _, r := range q.Rows {
		if r.State == state && r.RegionName == region {
			return r.Prices[quarter]
		}
	}
	return nil
}

type monthCol struct {
	idx int
	q   Quarter
}

// ToQuarters reshapes a wide monthly price table (YYYY-MM columns) into
// quarterly means from startYear on. Identifier columns other than State and
// RegionName are dropped, state abbreviations become full names, and missing
// months are left out of each mean. A repeated (state, region) keeps its
// first row.
func ToQuarters(tbl *table.Table, startYear int, warnings []string) (*Quarterly, []string, error) {
	stateIdx := tbl.Index(colState)
	regionIdx := tbl.Index(colRegionName)
	if stateIdx < 0 || regionIdx < 0 {
		return nil, warnings, fmt.Errorf("%s: %w: need %q and %q", tbl.Name, table.ErrMissingColumn, colState, colRegionName)
	}

	var (
		months      []monthCol
		first, last Quarter
	)
	for i, c := range tbl.Columns {
		q, ok := monthQuarter(c)
		if !ok || q.Year < startYear {
			continue
		}
		if len(months) == 0 || q.Before(first) {
			first = q
		}
		if len(months) == 0 || last.Before(q) {
			last = q
		}
		months = append(months, monthCol{idx: i, q: q})
	}

	out := &Quarterly{}
	if len(months) > 0 {
		for q := first; !last.Before(q); q = q.Next() {
			out.Quarters = append(out.Quarters, q.String())
		}
	}

	seen := map[Town]bool{}
	unknown := map[string]bool{}
	dups := 0
	for i := 0; i < tbl.Len(); i++ {
		abbr := tbl.Cell(i, stateIdx)
		state, ok := StateName(abbr)
		if !ok {
			state = abbr
			unknown[abbr] = true
		}
		key := Town{State: state, RegionName: tbl.Cell(i, regionIdx)}
		if seen[key] {
			dups++
			continue
		}
		seen[key] = true

		groups := make(map[string][]float64, len(out.Quarters))
		for _, m := range months {
			if v := tbl.Float(i, m.idx); v != nil {
				label := m.q.String()
				groups[label] = append(groups[label], *v)
			}
		}
		row := RegionPrices{State: key.State, RegionName: key.RegionName, Prices: make(map[string]*float64, len(out.Quarters))}
		for _, label := range out.Quarters {
			if vals := groups[label]; len(vals) > 0 {
				m := stat.Mean(vals, nil)
				row.Prices[label] = &m
			} else {
				row.Prices[label] = nil
			}
		}
		out.Rows = append(out.Rows, row)
	}
	if len(unknown) > 0 {
		warnings = append(warnings, fmt.Sprintf("%s: %d unknown state abbreviations kept as-is", tbl.Name, len(unknown)))
	}
	if dups > 0 {
		warnings = append(warnings, fmt.Sprintf("%s: %d repeated (state, region) rows ignored", tbl.Name, dups))
	}
	return out, warnings, nil
}
