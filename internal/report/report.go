// Package report collects answers into a run report and renders it as
// Markdown, JSON, or YAML.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaramelBytes/econlab-cli/internal/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering.
type Format string

const (
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

// ParseFormat accepts markdown|md, json, or yaml|yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported output format: %s (use markdown|json|yaml)", s)
}

// Report is one command run.
type Report struct {
	RunID       string     `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time  `json:"generated_at" yaml:"generated_at"`
	Title       string     `json:"title" yaml:"title"`
	Sections    []*Section `json:"sections" yaml:"sections"`
}

// Section is a single answer. Value carries the full result for JSON and
// YAML; grid and fields only shape the Markdown view.
type Section struct {
	Name  string   `json:"name" yaml:"name"`
	Value any      `json:"value" yaml:"value"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty"`
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`

	grid   *Grid
	fields []Field
}

// Grid is a tabular Markdown view.
type Grid struct {
	Columns []string
	Rows    [][]any
}

// Field is one key/value line of a Markdown view.
type Field struct {
	Key   string
	Value any
}

// New starts a report with a fresh run id.
func New(title string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Title:       title,
	}
}

// Add appends an answer.
func (r *Report) Add(name string, value any) *Section {
	s := &Section{Name: name, Value: value}
	r.Sections = append(r.Sections, s)
	return s
}

// Fail appends an answer that could not be computed.
func (r *Report) Fail(name string, err error) *Section {
	s := &Section{Name: name, Error: err.Error()}
	r.Sections = append(r.Sections, s)
	return s
}

// Failed reports whether any section carries an error.
func (r *Report) Failed() bool {
	for _, s := range r.Sections {
		if s.Error != "" {
			return true
		}
	}
	return false
}

// WithGrid sets the Markdown table view.
func (s *Section) WithGrid(g Grid) *Section {
	s.grid = &g
	return s
}

// WithFields sets the Markdown key/value view.
func (s *Section) WithFields(f ...Field) *Section {
	s.fields = f
	return s
}

// Note appends a formatted note.
func (s *Section) Note(format string, args ...any) *Section {
	s.Notes = append(s.Notes, fmt.Sprintf(format, args...))
	return s
}

// Render encodes the report in the given format.
func (r *Report) Render(f Format) ([]byte, error) {
	switch f {
	case JSON:
		return utils.PrettyJSON(r)
	case YAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	case Markdown, "":
		return []byte(r.Markdown()), nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", f)
}
