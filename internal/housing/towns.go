package housing

import (
	"regexp"
	"strings"
)

// DefaultMarker tags state header lines in the town listing.
const DefaultMarker = "[edit]"

// Town is a (state, region) pair from the university town listing.
type Town struct {
	State      string `json:"state" yaml:"state"`
	RegionName string `json:"region_name" yaml:"region_name"`
}

var regionSuffixRe = regexp.MustCompile(` \(.*`)

// ParseTowns scans the listing in order. A line containing marker starts a
// new state; every other non-empty line is a region of the current state
// with any " (..." tail removed. Regions before the first state line are
// skipped.
func ParseTowns(lines []string, marker string) []Town {
	if marker == "" {
		marker = DefaultMarker
	}
	var (
		out     []Town
		state   string
		inState bool
	)
	for _, line := range lines {
		if strings.Contains(line, marker) {
			state = strings.ReplaceAll(line, marker, "")
			inState = true
			continue
		}
		if strings.TrimSpace(line) == "" || !inState {
			continue
		}
		out = append(out, Town{State: state, RegionName: regionSuffixRe.ReplaceAllString(line, "")})
	}
	return out
}

// TownSet is a membership view over towns.
type TownSet map[Town]struct{}

// NewTownSet collapses duplicates.
func NewTownSet(towns []Town) TownSet {
	s := make(TownSet, len(towns))
	for _, t := range towns {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether (state, region) is listed.
func (s TownSet) Has(state, region string) bool {
	_, ok := s[Town{State: state, RegionName: region}]
	return ok
}
