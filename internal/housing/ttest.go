package housing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDegenerateTest means the samples cannot support a t statistic
// (an empty group, no degrees of freedom, or zero spread).
var ErrDegenerateTest = errors.New("degenerate two-sample test")

// TTestResult is a two-sided independent two-sample t-test of a against b.
type TTestResult struct {
	Statistic float64 `json:"statistic" yaml:"statistic"`
	PValue    float64 `json:"p_value" yaml:"p_value"`
	DF        float64 `json:"df" yaml:"df"`
	EqualVar  bool    `json:"equal_var" yaml:"equal_var"`
}

// Method names the test variant.
func (r TTestResult) Method() string {
	if r.EqualVar {
		return "Student's t-test (pooled variance)"
	}
	return "Welch's t-test (unequal variances)"
}

// TTest compares the means of two independent samples. With equalVar the
// variances are pooled; otherwise Welch's approximation is used. The
// statistic is positive when mean(a) > mean(b).
func TTest(a, b []float64, equalVar bool) (TTestResult, error) {
	n1, n2 := float64(len(a)), float64(len(b))
	if len(a) == 0 || len(b) == 0 {
		return TTestResult{}, fmt.Errorf("%w: group sizes %d and %d", ErrDegenerateTest, len(a), len(b))
	}
	m1, v1 := meanVar(a)
	m2, v2 := meanVar(b)

	var se, df float64
	if equalVar {
		df = n1 + n2 - 2
		if df <= 0 {
			return TTestResult{}, fmt.Errorf("%w: no degrees of freedom", ErrDegenerateTest)
		}
		pooled := ((n1-1)*v1 + (n2-1)*v2) / df
		se = math.Sqrt(pooled * (1/n1 + 1/n2))
	} else {
		if len(a) < 2 || len(b) < 2 {
			return TTestResult{}, fmt.Errorf("%w: Welch test needs two values per group", ErrDegenerateTest)
		}
		s1, s2 := v1/n1, v2/n2
		se = math.Sqrt(s1 + s2)
		df = (s1 + s2) * (s1 + s2) / (s1*s1/(n1-1) + s2*s2/(n2-1))
	}
	if se == 0 || math.IsNaN(se) || math.IsNaN(df) {
		return TTestResult{}, fmt.Errorf("%w: zero standard error", ErrDegenerateTest)
	}

	t := (m1 - m2) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * dist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}
	return TTestResult{Statistic: t, PValue: p, DF: df, EqualVar: equalVar}, nil
}

// meanVar returns the mean and unbiased variance; a single value has zero
// variance.
func meanVar(x []float64) (float64, float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanVariance(x, nil)
}
