package energy

// Join restricts scim to its first topN entries (file order is rank order),
// then inner-joins energy and the years of gdp on canonical country name.
// Output keeps Scimago order. Duplicate names keep their first occurrence.
func Join(src *Sources, years []string, topN int) *JoinedTable {
	scim := src.Scimago
	if topN >= 0 && topN < len(scim) {
		scim = scim[:topN]
	}
	return join(scim, src.Energy, src.GDP, years)
}

// JoinAll performs the same joins without the topN restriction.
func JoinAll(src *Sources, years []string) *JoinedTable {
	return join(src.Scimago, src.Energy, src.GDP, years)
}

func join(scim []ScimagoEntry, energy []EnergyEntry, gdp []GDPEntry, years []string) *JoinedTable {
	eIdx := make(map[string]int, len(energy))
	for i, e := range energy {
		if _, ok := eIdx[e.Country]; !ok {
			eIdx[e.Country] = i
		}
	}
	gIdx := make(map[string]int, len(gdp))
	for i, g := range gdp {
		if _, ok := gIdx[g.Country]; !ok {
			gIdx[g.Country] = i
		}
	}

	out := &JoinedTable{Years: append([]string(nil), years...)}
	seen := make(map[string]bool, len(scim))
	for _, s := range scim {
		if seen[s.Country] {
			continue
		}
		ei, ok := eIdx[s.Country]
		if !ok {
			continue
		}
		gi, ok := gIdx[s.Country]
		if !ok {
			continue
		}
		seen[s.Country] = true
		e, g := energy[ei], gdp[gi]
		rec := CountryRecord{
			Name:                  s.Country,
			Rank:                  s.Rank,
			Documents:             s.Documents,
			CitableDocuments:      s.CitableDocuments,
			Citations:             s.Citations,
			SelfCitations:         s.SelfCitations,
			CitationsPerDocument:  s.CitationsPerDocument,
			HIndex:                s.HIndex,
			EnergySupply:          e.Supply,
			EnergySupplyPerCapita: e.SupplyPerCapita,
			PercentRenewable:      e.PercentRenewable,
			GDP:                   make(map[string]*float64, len(years)),
		}
		for _, y := range years {
			rec.GDP[y] = g.Years[y]
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

// DroppedCount is the number of countries an outer join of the full tables
// keeps that the inner join loses.
func DroppedCount(src *Sources) int {
	union := map[string]struct{}{}
	for _, s := range src.Scimago {
		union[s.Country] = struct{}{}
	}
	for _, e := range src.Energy {
		union[e.Country] = struct{}{}
	}
	for _, g := range src.GDP {
		union[g.Country] = struct{}{}
	}
	return len(union) - JoinAll(src, nil).Len()
}
