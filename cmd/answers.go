package cmd

import (
	"fmt"

	"github.com/KaramelBytes/econlab-cli/internal/energy"
	"github.com/KaramelBytes/econlab-cli/internal/housing"
	"github.com/KaramelBytes/econlab-cli/internal/report"
)

// answer computes one question and appends it to the report.
type answer struct {
	name string
	run  func(s *session, r *report.Report, name string) error
}

var energyAnswers = []answer{
	{"joined table", answerJoinedTable},
	{"dropped count", answerDroppedCount},
	{"average gdp", answerAverageGDP},
	{"gdp change", answerGDPChange},
}

var housingAnswers = []answer{
	{"university towns", answerUniversityTowns},
	{"recession start", answerRecessionStart},
	{"recession end", answerRecessionEnd},
	{"recession bottom", answerRecessionBottom},
	{"quarterly housing", answerQuarterlyHousing},
	{"ttest", answerTTest},
}

// defaultPreviewRows bounds the Markdown view of the quarterly table.
const defaultPreviewRows = 10

func answerJoinedTable(s *session, r *report.Report, name string) error {
	t, err := s.topJoined()
	if err != nil {
		return err
	}
	cols := []string{"Rank", "Country", "Documents", "Citable documents", "Citations", "Self-citations",
		"Citations per document", "H index", "Energy Supply", "Energy Supply per Capita", "% Renewable"}
	cols = append(cols, t.Years...)
	g := report.Grid{Columns: cols}
	for _, rec := range t.Records {
		row := []any{rec.Rank, rec.Name, rec.Documents, rec.CitableDocuments, rec.Citations, rec.SelfCitations,
			rec.CitationsPerDocument, rec.HIndex, rec.EnergySupply, rec.EnergySupplyPerCapita, rec.PercentRenewable}
		for _, y := range t.Years {
			row = append(row, rec.GDP[y])
		}
		g.Rows = append(g.Rows, row)
	}
	r.Add(name, t).WithGrid(g).Note("%d countries in the top %d present in all three sources", t.Len(), s.cfg.TopN)
	return nil
}

func answerDroppedCount(s *session, r *report.Report, name string) error {
	src, err := s.sources()
	if err != nil {
		return err
	}
	n := energy.DroppedCount(src)
	r.Add(name, n).Note("distinct countries across all sources minus countries present in all three")
	return nil
}

func answerAverageGDP(s *session, r *report.Report, name string) error {
	t, err := s.topJoined()
	if err != nil {
		return err
	}
	avg := energy.AverageGDP(t, s.cfg.GDPYears)
	g := report.Grid{Columns: []string{"Country", "Average GDP"}}
	for _, a := range avg {
		g.Rows = append(g.Rows, []any{a.Country, a.Average})
	}
	r.Add(name, avg).WithGrid(g)
	return nil
}

func answerGDPChange(s *session, r *report.Report, name string) error {
	t, err := s.topJoined()
	if err != nil {
		return err
	}
	ch, err := energy.GDPDelta(t, s.cfg.GDPYears, s.cfg.GDPRank)
	if err != nil {
		return err
	}
	r.Add(name, ch).WithFields(
		report.Field{Key: "country", Value: ch.Country},
		report.Field{Key: "rank position", Value: s.cfg.GDPRank},
		report.Field{Key: "span", Value: ch.From + "-" + ch.To},
		report.Field{Key: "change", Value: ch.Change},
	)
	return nil
}

func answerUniversityTowns(s *session, r *report.Report, name string) error {
	towns, err := s.universityTowns()
	if err != nil {
		return err
	}
	g := report.Grid{Columns: []string{"State", "RegionName"}}
	for _, t := range towns {
		g.Rows = append(g.Rows, []any{t.State, t.RegionName})
	}
	r.Add(name, towns).WithGrid(g).Note("%d towns", len(towns))
	return nil
}

// answerRecessionStart needs only the declines, not a recovery.
func answerRecessionStart(s *session, r *report.Report, name string) error {
	tl, err := s.gdpTimeline()
	if err != nil {
		return err
	}
	start, ok := tl.RecessionStart()
	if !ok {
		return fmt.Errorf("%w: no two consecutive declines", housing.ErrNoRecession)
	}
	r.Add(name, start)
	return nil
}

func answerRecessionEnd(s *session, r *report.Report, name string) error {
	rec, err := s.recession()
	if err != nil {
		return err
	}
	r.Add(name, rec.End)
	return nil
}

func answerRecessionBottom(s *session, r *report.Report, name string) error {
	rec, err := s.recession()
	if err != nil {
		return err
	}
	r.Add(name, rec.Bottom)
	return nil
}

func answerQuarterlyHousing(s *session, r *report.Report, name string) error {
	q, err := s.quarterlyPrices()
	if err != nil {
		return err
	}
	g := report.Grid{Columns: append([]string{"State", "RegionName"}, q.Quarters...)}
	rows := q.Rows
	if s.previewRows > 0 && len(rows) > s.previewRows {
		rows = rows[:s.previewRows]
	}
	for _, rp := range rows {
		row := []any{rp.State, rp.RegionName}
		for _, label := range q.Quarters {
			row = append(row, rp.Prices[label])
		}
		g.Rows = append(g.Rows, row)
	}
	sec := r.Add(name, q).WithGrid(g).Note("%d regions x %d quarters", q.Len(), len(q.Quarters))
	if len(rows) < q.Len() {
		sec.Note("first %d regions shown; use --format json or yaml for the full table", len(rows))
	}
	return nil
}

func answerTTest(s *session, r *report.Report, name string) error {
	rec, err := s.recession()
	if err != nil {
		return err
	}
	towns, err := s.universityTowns()
	if err != nil {
		return err
	}
	q, err := s.quarterlyPrices()
	if err != nil {
		return err
	}
	res, err := housing.CompareUniversityTowns(q, rec.Start, rec.Bottom, housing.NewTownSet(towns), s.cfg.Alpha, s.cfg.EqualVar)
	if err != nil {
		return err
	}
	r.Add(name, res).WithFields(
		report.Field{Key: "different", Value: res.Different},
		report.Field{Key: "p", Value: res.PValue},
		report.Field{Key: "better", Value: res.Better},
		report.Field{Key: "method", Value: res.Method},
		report.Field{Key: "statistic", Value: res.Statistic},
		report.Field{Key: "university towns (n, mean growth)", Value: fmtGroup(res.UniversityN, res.UniversityMean)},
		report.Field{Key: "other towns (n, mean growth)", Value: fmtGroup(res.NonUniversityN, res.NonUniversityMean)},
	).Note("growth is price at %s minus price at %s; alpha %s", rec.Bottom, rec.Start, report.Value(res.Alpha))
	return nil
}

func fmtGroup(n int, mean float64) string {
	return report.Value(n) + ", " + report.Value(mean)
}

// collectAnswers adds each answer; a failure becomes an error section and
// the remaining answers still run.
func collectAnswers(s *session, r *report.Report, answers []answer) {
	for _, a := range answers {
		if err := a.run(s, r, a.name); err != nil {
			r.Fail(a.name, err)
		}
	}
}
