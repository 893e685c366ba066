package housing

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/econlab-cli/internal/table"
	"github.com/KaramelBytes/econlab-cli/internal/table/tabletest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTowns(t *testing.T) {
	lines := table.SplitLines("Ohio[edit]\nAthens (Athens County)\nCalifornia[edit]\nBerkeley\n")
	got := ParseTowns(lines, DefaultMarker)
	assert.Equal(t, []Town{
		{State: "Ohio", RegionName: "Athens"},
		{State: "California", RegionName: "Berkeley"},
	}, got)
}

func TestParseTownsEdgeCases(t *testing.T) {
	lines := []string{
		"Orphan",
		"Alabama[edit]",
		"",
		"Auburn (Auburn University)[1]",
		"Florence (University of North Alabama)",
		"Texas[edit]",
		"Texas[edit]",
		"Austin",
	}
	got := ParseTowns(lines, "")
	assert.Equal(t, []Town{
		{State: "Alabama", RegionName: "Auburn"},
		{State: "Alabama", RegionName: "Florence"},
		{State: "Texas", RegionName: "Austin"},
	}, got)

	set := NewTownSet(append(got, Town{State: "Texas", RegionName: "Austin"}))
	assert.Len(t, set, 3)
	assert.True(t, set.Has("Alabama", "Auburn"))
	assert.False(t, set.Has("Ohio", "Auburn"))
}

func specTimeline() *Timeline {
	return &Timeline{
		Labels: []string{"2007q1", "2007q2", "2007q3", "2007q4", "2008q1", "2008q2", "2008q3", "2008q4"},
		Values: []float64{100, 101, 102, 99, 95, 96, 98, 99},
	}
}

func TestRecessionScan(t *testing.T) {
	tl := specTimeline()

	i, ok := tl.StartIndex()
	require.True(t, ok)
	assert.Equal(t, 3, i)
	i, ok = tl.EndIndex()
	require.True(t, ok)
	assert.Equal(t, 6, i)
	i, ok = tl.BottomIndex()
	require.True(t, ok)
	assert.Equal(t, 4, i)

	rec, err := FindRecession(tl)
	require.NoError(t, err)
	assert.Equal(t, Recession{Start: "2007q4", End: "2008q3", Bottom: "2008q1"}, rec)

	again, err := FindRecession(tl)
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestRecessionBottomFirstMinimum(t *testing.T) {
	tl := &Timeline{
		Labels: []string{"a", "b", "c", "d", "e", "f", "g"},
		Values: []float64{10, 9, 8, 9, 8, 9, 10},
	}
	rec, err := FindRecession(tl)
	require.NoError(t, err)
	assert.Equal(t, "b", rec.Start)
	assert.Equal(t, "c", rec.Bottom)
}

func TestNoRecession(t *testing.T) {
	tl := &Timeline{Labels: []string{"a", "b", "c", "d"}, Values: []float64{1, 2, 1, 2}}
	_, ok := tl.RecessionStart()
	assert.False(t, ok)
	_, err := FindRecession(tl)
	assert.True(t, errors.Is(err, ErrNoRecession))

	// declines without a recovery
	tl = &Timeline{Labels: []string{"a", "b", "c", "d"}, Values: []float64{4, 3, 2, 3}}
	start, ok := tl.RecessionStart()
	assert.True(t, ok)
	assert.Equal(t, "b", start)
	_, ok = tl.RecessionEnd()
	assert.False(t, ok)
	_, ok = tl.RecessionBottom()
	assert.False(t, ok)
	_, err = FindRecession(tl)
	assert.True(t, errors.Is(err, ErrNoRecession))
}

func TestTimelinePoints(t *testing.T) {
	tl := &Timeline{Labels: []string{"a", "b", "c"}, Values: []float64{1, math.NaN(), 4}}
	pts := tl.Points()
	require.Len(t, pts, 3)
	assert.Nil(t, pts[0].Delta)
	assert.Nil(t, pts[1].GDP)
	assert.Nil(t, pts[2].Delta)
	require.NotNil(t, pts[2].GDP)
	assert.InDelta(t, 4, *pts[2].GDP, 1e-12)
}

func TestQuarterHelpers(t *testing.T) {
	q, err := ParseQuarter("2008Q3")
	require.NoError(t, err)
	assert.Equal(t, "2008q3", q.String())
	assert.Equal(t, "2008q4", q.Next().String())
	assert.Equal(t, "2009q1", q.Next().Next().String())
	assert.True(t, q.Before(q.Next()))

	for _, bad := range []string{"", "2008", "q3", "2008q5", "abcdq1"} {
		_, err := ParseQuarter(bad)
		assert.Error(t, err, bad)
	}

	mq, ok := monthQuarter("2000-03")
	assert.True(t, ok)
	assert.Equal(t, Quarter{Year: 2000, Q: 1}, mq)
	_, ok = monthQuarter("RegionID")
	assert.False(t, ok)
}

func housingTable() *table.Table {
	return &table.Table{
		Name:    "homes.csv",
		Columns: []string{"RegionID", "RegionName", "State", "Metro", "1999-12", "2000-01", "2000-02", "2000-03", "2000-04", "2000-07"},
		Rows: [][]string{
			{"1", "New York", "NY", "NYC", "9", "100", "200", "300", "400", "700"},
			{"2", "Athens", "OH", "", "9", "10", "", "30", "", ""},
			{"3", "New York", "NY", "NYC", "1", "1", "1", "1", "1", "1"},
			{"4", "Nowhere", "ZZ", "", "", "", "", "", "", ""},
		},
	}
}

func TestToQuarters(t *testing.T) {
	q, warnings, err := ToQuarters(housingTable(), 2000, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2000q1", "2000q2", "2000q3"}, q.Quarters)
	require.Equal(t, 3, q.Len())
	assert.Len(t, warnings, 2)

	ny := q.Price("New York", "New York", "2000q1")
	require.NotNil(t, ny)
	assert.InDelta(t, 200, *ny, 1e-12)

	athens := q.Price("Ohio", "Athens", "2000q1")
	require.NotNil(t, athens)
	assert.InDelta(t, 20, *athens, 1e-12)
	assert.Nil(t, q.Price("Ohio", "Athens", "2000q2"))

	assert.Equal(t, "ZZ", q.Rows[2].State)
	for _, r := range q.Rows {
		assert.Len(t, r.Prices, len(q.Quarters))
	}

	_, _, err = ToQuarters(&table.Table{Columns: []string{"RegionName"}}, 2000, nil)
	assert.True(t, errors.Is(err, table.ErrMissingColumn))
}

func TestToQuartersSingleRowMean(t *testing.T) {
	tbl := &table.Table{
		Name:    "homes.csv",
		Columns: []string{"RegionName", "State", "2000-01", "2000-02", "2000-03"},
		Rows:    [][]string{{"Athens", "OH", "100", "200", "600"}},
	}
	q, warnings, err := ToQuarters(tbl, 2000, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"2000q1"}, q.Quarters)
	require.Equal(t, 1, q.Len())
	assert.Equal(t, "Ohio", q.Rows[0].State)
	assert.Equal(t, "Athens", q.Rows[0].RegionName)

	p := q.Price("Ohio", "Athens", "2000q1")
	require.NotNil(t, p)
	assert.InDelta(t, 300, *p, 1e-12)
}

func TestTTestPooled(t *testing.T) {
	res, err := TTest([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10}, true)
	require.NoError(t, err)
	assert.InDelta(t, -1.8973665961010275, res.Statistic, 1e-9)
	assert.InDelta(t, 0.09434977284243774, res.PValue, 1e-6)
	assert.InDelta(t, 8, res.DF, 1e-12)
	assert.Contains(t, res.Method(), "pooled")
}

func TestTTestWelch(t *testing.T) {
	res, err := TTest([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10}, false)
	require.NoError(t, err)
	assert.InDelta(t, -1.8973665961010275, res.Statistic, 1e-9)
	assert.InDelta(t, 5.882352941176471, res.DF, 1e-9)
	assert.InDelta(t, 0.10753119493062714, res.PValue, 1e-5)
	assert.Contains(t, res.Method(), "Welch")
}

func TestTTestSeparatedGroups(t *testing.T) {
	res, err := TTest([]float64{10, 11, 12, 13, 14, 15}, []float64{1, 2, 3, 2, 1, 2}, true)
	require.NoError(t, err)
	assert.InDelta(t, 12.956421282862655, res.Statistic, 1e-9)
	assert.Less(t, res.PValue, 1e-6)
}

func TestTTestIdenticalMeans(t *testing.T) {
	res, err := TTest([]float64{1, 2, 3, 4}, []float64{4, 3, 2, 1}, true)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Statistic, 1e-12)
	assert.InDelta(t, 1, res.PValue, 1e-9)
}

func TestTTestDegenerate(t *testing.T) {
	cases := []struct {
		a, b     []float64
		equalVar bool
	}{
		{nil, []float64{1, 2}, true},
		{[]float64{1}, []float64{2}, true},
		{[]float64{1}, []float64{1, 2}, false},
		{[]float64{3, 3}, []float64{3, 3}, true},
	}
	for _, c := range cases {
		_, err := TTest(c.a, c.b, c.equalVar)
		assert.True(t, errors.Is(err, ErrDegenerateTest), "%v %v", c.a, c.b)
	}
}

func growthQuarterly(rows map[Town][2]float64) *Quarterly {
	q := &Quarterly{Quarters: []string{"2008q3", "2009q2"}}
	for k, v := range rows {
		from, to := v[0], v[1]
		q.Rows = append(q.Rows, RegionPrices{State: k.State, RegionName: k.RegionName,
			Prices: map[string]*float64{"2008q3": &from, "2009q2": &to}})
	}
	return q
}

func TestCompareUniversityTowns(t *testing.T) {
	rows := map[Town][2]float64{
		{"Ohio", "Athens"}:       {100, 98},
		{"Ohio", "Oxford"}:       {100, 97},
		{"Texas", "Austin"}:      {100, 99},
		{"Ohio", "Columbus"}:     {100, 80},
		{"Texas", "Dallas"}:      {100, 85},
		{"Texas", "Houston"}:     {100, 82},
		{"California", "Fresno"}: {100, 78},
	}
	q := growthQuarterly(rows)
	q.Rows = append(q.Rows, RegionPrices{State: "Ohio", RegionName: "Gone", Prices: map[string]*float64{}})
	towns := NewTownSet([]Town{{"Ohio", "Athens"}, {"Ohio", "Oxford"}, {"Texas", "Austin"}, {"Ohio", "Gone"}})

	res, err := CompareUniversityTowns(q, "2008Q3", "2009q2", towns, 0.01, true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.UniversityN)
	assert.Equal(t, 4, res.NonUniversityN)
	assert.InDelta(t, -2, res.UniversityMean, 1e-12)
	assert.InDelta(t, -18.75, res.NonUniversityMean, 1e-12)
	assert.Greater(t, res.Statistic, 0.0)
	assert.Equal(t, University, res.Better)
	assert.True(t, res.Different)
	assert.Equal(t, res.PValue < res.Alpha, res.Different)
}

func TestCompareIdenticalMeans(t *testing.T) {
	rows := map[Town][2]float64{
		{"Ohio", "Athens"}:   {100, 90},
		{"Ohio", "Oxford"}:   {100, 110},
		{"Ohio", "Columbus"}: {100, 110},
		{"Ohio", "Dayton"}:   {100, 90},
	}
	towns := NewTownSet([]Town{{"Ohio", "Athens"}, {"Ohio", "Oxford"}})
	res, err := CompareUniversityTowns(growthQuarterly(rows), "2008q3", "2009q2", towns, 0.01, true)
	require.NoError(t, err)
	assert.Greater(t, res.PValue, 0.01)
	assert.False(t, res.Different)
	assert.Equal(t, NonUniversity, res.Better)
}

func TestCompareEmptyGroup(t *testing.T) {
	rows := map[Town][2]float64{{"Ohio", "Columbus"}: {100, 80}, {"Ohio", "Dayton"}: {100, 85}}
	_, err := CompareUniversityTowns(growthQuarterly(rows), "2008q3", "2009q2", TownSet{}, 0.01, true)
	assert.True(t, errors.Is(err, ErrDegenerateTest))

	_, err = CompareUniversityTowns(growthQuarterly(rows), "bad", "2009q2", TownSet{}, 0.01, true)
	assert.Error(t, err)
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	townsPath := filepath.Join(dir, "towns.txt")
	require.NoError(t, os.WriteFile(townsPath, []byte("Ohio[edit]\nAthens (Ohio University)\n"), 0o644))

	gdpRows := [][]string{{"Current-Dollar and Real GDP"}, {}}
	gdpRows = append(gdpRows, []string{"", "", "", "", "Quarter", "", "GDP in billions of chained 2009 dollars"})
	for i, v := range []string{"100", "101", "102", "99", "95", "96", "98", "99"} {
		label := specTimeline().Labels[i]
		gdpRows = append(gdpRows, []string{"", "", "", "", label, "x", v})
	}
	gdpPath := filepath.Join(dir, "gdplev.xlsx")
	require.NoError(t, tabletest.WriteXLSX(gdpPath, "Sheet1", gdpRows))

	homes := strings.Join([]string{
		"RegionID,RegionName,State,2008-07,2008-08,2008-09,2009-04,2009-05,2009-06",
		"1,Athens,OH,100,100,100,98,98,98",
		"2,Columbus,OH,100,100,100,80,80,80",
	}, "\n") + "\n"
	homesPath := filepath.Join(dir, "homes.csv")
	require.NoError(t, os.WriteFile(homesPath, []byte(homes), 0o644))

	p := Paths{
		Towns:            townsPath,
		GDPLev:           gdpPath,
		GDPLevSkipRows:   2,
		GDPLevColumns:    []int{4, 6},
		Housing:          homesPath,
		HousingStartYear: 2000,
	}

	towns, err := LoadTowns(p)
	require.NoError(t, err)
	assert.Equal(t, []Town{{State: "Ohio", RegionName: "Athens"}}, towns)

	tl, _, err := LoadTimeline(p)
	require.NoError(t, err)
	require.Equal(t, 8, tl.Len())
	rec, err := FindRecession(tl)
	require.NoError(t, err)
	assert.Equal(t, "2007q4", rec.Start)

	q, _, err := LoadQuarterly(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"2008q3", "2008q4", "2009q1", "2009q2"}, q.Quarters)
	assert.Nil(t, q.Price("Ohio", "Athens", "2008q4"))
	require.NotNil(t, q.Price("Ohio", "Columbus", "2009q2"))

	_, err = LoadTowns(Paths{Towns: filepath.Join(dir, "nope.txt")})
	assert.True(t, errors.Is(err, table.ErrMissingSource))
}
