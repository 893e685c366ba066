package energy

// ScimagoEntry is one row of the Scimago journal ranking, in rank order.
type ScimagoEntry struct {
	Rank                 int     `json:"rank" yaml:"rank"`
	Country              string  `json:"country" yaml:"country"`
	Documents            float64 `json:"documents" yaml:"documents"`
	CitableDocuments     float64 `json:"citable_documents" yaml:"citable_documents"`
	Citations            float64 `json:"citations" yaml:"citations"`
	SelfCitations        float64 `json:"self_citations" yaml:"self_citations"`
	CitationsPerDocument float64 `json:"citations_per_document" yaml:"citations_per_document"`
	HIndex               float64 `json:"h_index" yaml:"h_index"`
}

// EnergyEntry is one row of the energy indicators table after coercion.
// Supply is in gigajoules.
type EnergyEntry struct {
	Country          string   `json:"country" yaml:"country"`
	Supply           *float64 `json:"energy_supply" yaml:"energy_supply"`
	SupplyPerCapita  *float64 `json:"energy_supply_per_capita" yaml:"energy_supply_per_capita"`
	PercentRenewable *float64 `json:"percent_renewable" yaml:"percent_renewable"`
}

// GDPEntry is one row of the World Bank GDP table keyed by year column.
type GDPEntry struct {
	Country string              `json:"country" yaml:"country"`
	Years   map[string]*float64 `json:"years" yaml:"years"`
}

// CountryRecord is a joined row.
type CountryRecord struct {
	Name                  string              `json:"name" yaml:"name"`
	Rank                  int                 `json:"rank" yaml:"rank"`
	Documents             float64             `json:"documents" yaml:"documents"`
	CitableDocuments      float64             `json:"citable_documents" yaml:"citable_documents"`
	Citations             float64             `json:"citations" yaml:"citations"`
	SelfCitations         float64             `json:"self_citations" yaml:"self_citations"`
	CitationsPerDocument  float64             `json:"citations_per_document" yaml:"citations_per_document"`
	HIndex                float64             `json:"h_index" yaml:"h_index"`
	EnergySupply          *float64            `json:"energy_supply" yaml:"energy_supply"`
	EnergySupplyPerCapita *float64            `json:"energy_supply_per_capita" yaml:"energy_supply_per_capita"`
	PercentRenewable      *float64            `json:"percent_renewable" yaml:"percent_renewable"`
	GDP                   map[string]*float64 `json:"gdp" yaml:"gdp"`
}

// JoinedTable holds joined records in Scimago rank order. Years lists the
// GDP columns carried by every record.
type JoinedTable struct {
	Years   []string        `json:"years" yaml:"years"`
	Records []CountryRecord `json:"records" yaml:"records"`
}

// Len returns the number of joined countries.
func (t *JoinedTable) Len() int { return len(t.Records) }

// Sources bundles the three normalized inputs.
type Sources struct {
	Scimago []ScimagoEntry
	Energy  []EnergyEntry
	GDP     []GDPEntry

	// Warnings lists recovered data problems (coerced cells, blank names).
	Warnings []string
}
