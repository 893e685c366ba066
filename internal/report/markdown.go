package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Markdown renders each section under a bracketed header. Missing numbers
// print as n/a.
func (r *Report) Markdown() string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(fmt.Sprintf("# %s\n\n", r.Title))
	}
	b.WriteString(fmt.Sprintf("Run: %s\nGenerated: %s\n", r.RunID, r.GeneratedAt.Format(time.RFC3339)))
	for _, s := range r.Sections {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(s.Name)))
		switch {
		case s.Error != "":
			b.WriteString(fmt.Sprintf("✗ %s\n", s.Error))
		case s.grid != nil:
			writeGrid(&b, s.grid)
		case len(s.fields) > 0:
			for _, f := range s.fields {
				b.WriteString(fmt.Sprintf("- %s: %s\n", f.Key, Value(f.Value)))
			}
		default:
			writeValue(&b, s.Value)
		}
		for _, n := range s.Notes {
			b.WriteString(fmt.Sprintf("Note: %s\n", n))
		}
	}
	return b.String()
}

func writeGrid(b *strings.Builder, g *Grid) {
	if len(g.Columns) == 0 {
		return
	}
	row := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}
	head := make([]string, len(g.Columns))
	sep := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		head[i] = escapeCell(c)
		sep[i] = "---"
	}
	row(head)
	row(sep)
	for _, r := range g.Rows {
		cells := make([]string, len(g.Columns))
		for i := range cells {
			if i < len(r) {
				cells[i] = escapeCell(Value(r[i]))
			}
		}
		row(cells)
	}
}

// writeValue prints scalars inline and anything structured as a YAML block.
func writeValue(b *strings.Builder, v any) {
	switch v.(type) {
	case nil, string, bool, int, int64, float64, *float64, *int:
		b.WriteString(Value(v))
		b.WriteString("\n")
		return
	}
	y, err := yaml.Marshal(v)
	if err != nil {
		b.WriteString(fmt.Sprintf("%v\n", v))
		return
	}
	b.WriteString("```yaml\n")
	b.Write(y)
	b.WriteString("```\n")
}

// Value formats one scalar for Markdown.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "n/a"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case *int:
		if x == nil {
			return "n/a"
		}
		return strconv.Itoa(*x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case *float64:
		if x == nil {
			return "n/a"
		}
		return formatFloat(*x)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "n/a"
	}
	if a := math.Abs(f); a != 0 && a < 1e-4 {
		return strconv.FormatFloat(f, 'g', 6, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
