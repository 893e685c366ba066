package energy

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrRankOutOfRange indicates a rank position beyond the joined table.
var ErrRankOutOfRange = errors.New("rank position out of range")

// CountryAverage is one entry of the average-GDP ranking.
type CountryAverage struct {
	Country string   `json:"country" yaml:"country"`
	Average *float64 `json:"average_gdp" yaml:"average_gdp"`
}

// AverageGDP returns the mean of the given year columns per country,
// ignoring nulls, sorted descending. Ties keep table order; countries with
// no values at all sort last with a null average.
func AverageGDP(t *JoinedTable, years []string) []CountryAverage {
	out := make([]CountryAverage, 0, t.Len())
	for _, rec := range t.Records {
		var vals []float64
		for _, y := range years {
			if v := rec.GDP[y]; v != nil {
				vals = append(vals, *v)
			}
		}
		ca := CountryAverage{Country: rec.Name}
		if len(vals) > 0 {
			m := stat.Mean(vals, nil)
			ca.Average = &m
		}
		out = append(out, ca)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Average, out[j].Average
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
	return out
}

// GDPChange is the span change for the country at a rank position.
type GDPChange struct {
	Country string   `json:"country" yaml:"country"`
	From    string   `json:"from" yaml:"from"`
	To      string   `json:"to" yaml:"to"`
	Change  *float64 `json:"change" yaml:"change"`
}

// GDPDelta ranks countries by average GDP over years and returns last-year
// minus first-year GDP for the 0-based rank position. The change is null
// when either endpoint is missing.
func GDPDelta(t *JoinedTable, years []string, rank int) (GDPChange, error) {
	if len(years) == 0 {
		return GDPChange{}, errors.New("no GDP years configured")
	}
	ranked := AverageGDP(t, years)
	if rank < 0 || rank >= len(ranked) {
		return GDPChange{}, fmt.Errorf("%w: %d of %d countries", ErrRankOutOfRange, rank, len(ranked))
	}
	name := ranked[rank].Country
	first, last := years[0], years[len(years)-1]
	res := GDPChange{Country: name, From: first, To: last}
	for _, rec := range t.Records {
		if rec.Name != name {
			continue
		}
		a, b := rec.GDP[first], rec.GDP[last]
		if a != nil && b != nil {
			d := *b - *a
			res.Change = &d
		}
		break
	}
	return res, nil
}
