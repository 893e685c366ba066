package housing

import (
	"errors"
	"fmt"
	"math"

	"github.com/KaramelBytes/econlab-cli/internal/table"
)

// ErrNoRecession means the series never shows two consecutive declines
// followed by two consecutive growth quarters.
var ErrNoRecession = errors.New("no recession found")

// Timeline is a chronological quarterly GDP series. Missing values are NaN.
type Timeline struct {
	Labels []string
	Values []float64
}

// TimelinePoint is one row of the rendered series.
type TimelinePoint struct {
	Quarter string   `json:"quarter" yaml:"quarter"`
	GDP     *float64 `json:"gdp_billions" yaml:"gdp_billions"`
	Delta   *float64 `json:"delta" yaml:"delta"`
}

// Len returns the number of quarters.
func (t *Timeline) Len() int { return len(t.Values) }

// Deltas returns value[i]-value[i-1]; the first entry is NaN.
func (t *Timeline) Deltas() []float64 {
	d := make([]float64, len(t.Values))
	for i := range d {
		if i == 0 {
			d[i] = math.NaN()
			continue
		}
		d[i] = t.Values[i] - t.Values[i-1]
	}
	return d
}

// Points pairs labels, values and deltas.
func (t *Timeline) Points() []TimelinePoint {
	d := t.Deltas()
	out := make([]TimelinePoint, t.Len())
	for i := range out {
		out[i] = TimelinePoint{Quarter: t.Labels[i]}
		if v := t.Values[i]; !math.IsNaN(v) {
			out[i].GDP = &v
		}
		if !math.IsNaN(d[i]) {
			v := d[i]
			out[i].Delta = &v
		}
	}
	return out
}

// StartIndex is the first i>=1 with two consecutive declines at i and i+1.
func (t *Timeline) StartIndex() (int, bool) {
	d := t.Deltas()
	for i := 1; i < len(d)-1; i++ {
		if d[i] < 0 && d[i+1] < 0 {
			return i, true
		}
	}
	return 0, false
}

// EndIndex scans forward from the start for two consecutive growth quarters
// and returns the second of them.
func (t *Timeline) EndIndex() (int, bool) {
	start, ok := t.StartIndex()
	if !ok {
		return 0, false
	}
	d := t.Deltas()
	for i := start; i < len(d)-1; i++ {
		if d[i] > 0 && d[i+1] > 0 {
			return i + 1, true
		}
	}
	return 0, false
}

// BottomIndex is the first minimum value in [start, end].
func (t *Timeline) BottomIndex() (int, bool) {
	start, ok := t.StartIndex()
	if !ok {
		return 0, false
	}
	end, ok := t.EndIndex()
	if !ok {
		return 0, false
	}
	best := -1
	for i := start; i <= end; i++ {
		if math.IsNaN(t.Values[i]) {
			continue
		}
		if best < 0 || t.Values[i] < t.Values[best] {
			best = i
		}
	}
	return best, best >= 0
}

func (t *Timeline) label(i int, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	return t.Labels[i], true
}

// RecessionStart returns the quarter label of the first declining quarter.
func (t *Timeline) RecessionStart() (string, bool) { return t.label(t.StartIndex()) }

// RecessionEnd returns the label of the second consecutive growth quarter.
func (t *Timeline) RecessionEnd() (string, bool) { return t.label(t.EndIndex()) }

// RecessionBottom returns the label of the lowest GDP quarter in the recession.
func (t *Timeline) RecessionBottom() (string, bool) { return t.label(t.BottomIndex()) }

// Recession collects the three turning points.
type Recession struct {
	Start  string `json:"start" yaml:"start"`
	End    string `json:"end" yaml:"end"`
	Bottom string `json:"bottom" yaml:"bottom"`
}

// FindRecession returns all turning points or ErrNoRecession.
func FindRecession(t *Timeline) (Recession, error) {
	start, ok := t.RecessionStart()
	if !ok {
		return Recession{}, fmt.Errorf("%w: no two consecutive declines", ErrNoRecession)
	}
	end, ok := t.RecessionEnd()
	if !ok {
		return Recession{}, fmt.Errorf("%w: no recovery after %s", ErrNoRecession, start)
	}
	bottom, _ := t.RecessionBottom()
	return Recession{Start: start, End: end, Bottom: bottom}, nil
}

// TimelineFromTable reads quarter labels from column 0 and GDP from column 1.
// Rows without a label are dropped; non-numeric GDP becomes NaN.
func TimelineFromTable(tbl *table.Table, warnings []string) (*Timeline, []string) {
	t := &Timeline{}
	bad := 0
	for i := 0; i < tbl.Len(); i++ {
		label := tbl.Cell(i, 0)
		if label == "" {
			continue
		}
		v := math.NaN()
		if f := tbl.Float(i, 1); f != nil {
			v = *f
		} else {
			bad++
		}
		t.Labels = append(t.Labels, label)
		t.Values = append(t.Values, v)
	}
	if bad > 0 {
		warnings = append(warnings, fmt.Sprintf("%s: %d non-numeric GDP values treated as missing", tbl.Name, bad))
	}
	return t, warnings
}
