package cmd

import (
	cfgpkg "github.com/KaramelBytes/econlab-cli/internal/config"
	"github.com/KaramelBytes/econlab-cli/internal/energy"
	"github.com/KaramelBytes/econlab-cli/internal/housing"
)

// session loads each source at most once per command run.
type session struct {
	cfg         cfgpkg.Global
	previewRows int

	src    *energy.Sources
	srcErr error

	timeline    *housing.Timeline
	timelineErr error

	towns    []housing.Town
	townsErr error

	quarterly    *housing.Quarterly
	quarterlyErr error
}

func newSession(c *cfgpkg.Global) *session {
	return &session{cfg: *c, previewRows: defaultPreviewRows}
}

func (s *session) energyPaths() energy.Paths {
	c := &s.cfg
	return energy.Paths{
		Scimago:          c.Path(c.ScimagoFile),
		Energy:           c.Path(c.EnergyFile),
		EnergySkipRows:   c.EnergySkipRows,
		EnergySkipFooter: c.EnergySkipFooter,
		EnergyColumns:    c.EnergyColumns,
		GDP:              c.Path(c.GDPFile),
		GDPSkipRows:      c.GDPSkipRows,
		Years:            c.GDPYears,
	}
}

func (s *session) housingPaths() housing.Paths {
	c := &s.cfg
	return housing.Paths{
		Towns:            c.Path(c.TownsFile),
		TownsMarker:      c.TownsMarker,
		GDPLev:           c.Path(c.GDPLevFile),
		GDPLevSkipRows:   c.GDPLevSkipRows,
		GDPLevColumns:    c.GDPLevColumns,
		Housing:          c.Path(c.HousingFile),
		HousingStartYear: c.HousingStartYear,
	}
}

func (s *session) sources() (*energy.Sources, error) {
	if s.src == nil && s.srcErr == nil {
		s.src, s.srcErr = energy.Load(s.energyPaths())
		if s.src != nil {
			warn(s.src.Warnings)
		}
	}
	return s.src, s.srcErr
}

// topJoined is the rank-limited join most energy answers start from.
func (s *session) topJoined() (*energy.JoinedTable, error) {
	src, err := s.sources()
	if err != nil {
		return nil, err
	}
	return energy.Join(src, s.cfg.GDPYears, s.cfg.TopN), nil
}

func (s *session) gdpTimeline() (*housing.Timeline, error) {
	if s.timeline == nil && s.timelineErr == nil {
		var w []string
		s.timeline, w, s.timelineErr = housing.LoadTimeline(s.housingPaths())
		warn(w)
	}
	return s.timeline, s.timelineErr
}

func (s *session) recession() (housing.Recession, error) {
	tl, err := s.gdpTimeline()
	if err != nil {
		return housing.Recession{}, err
	}
	return housing.FindRecession(tl)
}

func (s *session) universityTowns() ([]housing.Town, error) {
	if s.towns == nil && s.townsErr == nil {
		s.towns, s.townsErr = housing.LoadTowns(s.housingPaths())
	}
	return s.towns, s.townsErr
}

func (s *session) quarterlyPrices() (*housing.Quarterly, error) {
	if s.quarterly == nil && s.quarterlyErr == nil {
		var w []string
		s.quarterly, w, s.quarterlyErr = housing.LoadQuarterly(s.housingPaths())
		warn(w)
	}
	return s.quarterly, s.quarterlyErr
}
