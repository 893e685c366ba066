package energy

import (
	"regexp"
	"strings"
	"unicode"
)

// NameRules describes how one source table spells country names and how to
// bring them to the canonical join key.
type NameRules struct {
	StripDigits bool
	StripParens bool
	Aliases     map[string]string
}

// Fixed alias tables. Keys are post-strip spellings.
var (
	energyAliases = map[string]string{
		"Republic of Korea":                                    "South Korea",
		"United States of America":                             "United States",
		"United Kingdom of Great Britain and Northern Ireland": "United Kingdom",
		"China, Hong Kong Special Administrative Region":       "Hong Kong",
	}
	gdpAliases = map[string]string{
		"Korea, Rep.":          "South Korea",
		"Iran, Islamic Rep.":   "Iran",
		"Hong Kong SAR, China": "Hong Kong",
	}
)

var (
	// EnergyNames cleans footnote digits and "(...)" annotations, then aliases.
	EnergyNames = NameRules{StripDigits: true, StripParens: true, Aliases: energyAliases}
	// GDPNames only aliases; World Bank names carry no annotations.
	GDPNames = NameRules{Aliases: gdpAliases}
	// ScimagoNames are already canonical.
	ScimagoNames = NameRules{}
)

var parenRe = regexp.MustCompile(` \([^)]+\)`)

// Normalize returns the canonical country name for raw under r.
func (r NameRules) Normalize(raw string) string {
	name := raw
	if r.StripDigits {
		name = strings.Map(func(c rune) rune {
			if unicode.IsDigit(c) {
				return -1
			}
			return c
		}, name)
	}
	if r.StripParens {
		name = parenRe.ReplaceAllString(name, "")
	}
	if alias, ok := r.Aliases[name]; ok {
		return alias
	}
	return name
}

// NormalizeAll rewrites names in place in a single pass.
func (r NameRules) NormalizeAll(names []string) {
	for i := range names {
		names[i] = r.Normalize(names[i])
	}
}
