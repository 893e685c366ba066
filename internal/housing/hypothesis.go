package housing

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

const (
	// University and NonUniversity label the better-performing group.
	University    = "university town"
	NonUniversity = "non-university town"
)

// Growth is the price change of one region between two quarters.
type Growth struct {
	State      string   `json:"state" yaml:"state"`
	RegionName string   `json:"region_name" yaml:"region_name"`
	Growth     *float64 `json:"growth" yaml:"growth"`
}

// PriceGrowth computes price[bottom] - price[start] per region; null when
// either quarter is missing.
func PriceGrowth(q *Quarterly, start, bottom string) ([]Growth, error) {
	s, err := ParseQuarter(start)
	if err != nil {
		return nil, err
	}
	b, err := ParseQuarter(bottom)
	if err != nil {
		return nil, err
	}
	out := make([]Growth, 0, q.Len())
	for _, r := range q.Rows {
		g := Growth{State: r.State, RegionName: r.RegionName}
		if from, to := r.Prices[s.String()], r.Prices[b.String()]; from != nil && to != nil {
			v := *to - *from
			g.Growth = &v
		}
		out = append(out, g)
	}
	return out, nil
}

// HypothesisResult answers whether university towns weathered the
// recession differently.
type HypothesisResult struct {
	Different bool    `json:"different" yaml:"different"`
	PValue    float64 `json:"p_value" yaml:"p_value"`
	Better    string  `json:"better" yaml:"better"`

	Method            string  `json:"method" yaml:"method"`
	Statistic         float64 `json:"statistic" yaml:"statistic"`
	Alpha             float64 `json:"alpha" yaml:"alpha"`
	UniversityN       int     `json:"university_n" yaml:"university_n"`
	NonUniversityN    int     `json:"non_university_n" yaml:"non_university_n"`
	UniversityMean    float64 `json:"university_mean" yaml:"university_mean"`
	NonUniversityMean float64 `json:"non_university_mean" yaml:"non_university_mean"`
}

// CompareUniversityTowns splits growth between start and bottom into
// university and non-university groups (null growth dropped) and runs a
// two-sample t-test. Different is p < alpha; Better is the university group
// when its mean growth is higher.
func CompareUniversityTowns(q *Quarterly, start, bottom string, towns TownSet, alpha float64, equalVar bool) (HypothesisResult, error) {
	growth, err := PriceGrowth(q, start, bottom)
	if err != nil {
		return HypothesisResult{}, err
	}
	var uni, non []float64
	for _, g := range growth {
		if g.Growth == nil {
			continue
		}
		if towns.Has(g.State, g.RegionName) {
			uni = append(uni, *g.Growth)
		} else {
			non = append(non, *g.Growth)
		}
	}
	tt, err := TTest(uni, non, equalVar)
	if err != nil {
		return HypothesisResult{}, fmt.Errorf("university vs non-university growth: %w", err)
	}
	res := HypothesisResult{
		Different:         tt.PValue < alpha,
		PValue:            tt.PValue,
		Better:            NonUniversity,
		Method:            tt.Method(),
		Statistic:         tt.Statistic,
		Alpha:             alpha,
		UniversityN:       len(uni),
		NonUniversityN:    len(non),
		UniversityMean:    stat.Mean(uni, nil),
		NonUniversityMean: stat.Mean(non, nil),
	}
	if tt.Statistic > 0 {
		res.Better = University
	}
	return res, nil
}
