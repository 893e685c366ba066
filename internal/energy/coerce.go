package energy

import (
	"math"
	"strconv"
	"strings"
)

// petajoules to gigajoules
const supplyScale = 1_000_000

// coerce parses a cell as a plain finite number; anything else, including
// "12%" or "1,5", becomes null.
func coerce(cell string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// CoerceEnergy builds an EnergyEntry from raw cells. Non-numeric cells become
// null and are counted in the second result. Supply is rescaled to gigajoules.
func CoerceEnergy(country, supply, perCapita, renewable string) (EnergyEntry, int) {
	e := EnergyEntry{
		Country:          country,
		Supply:           coerce(supply),
		SupplyPerCapita:  coerce(perCapita),
		PercentRenewable: coerce(renewable),
	}
	if e.Supply != nil {
		v := *e.Supply * supplyScale
		e.Supply = &v
	}
	nulled := 0
	for _, p := range []*float64{e.Supply, e.SupplyPerCapita, e.PercentRenewable} {
		if p == nil {
			nulled++
		}
	}
	return e, nulled
}
