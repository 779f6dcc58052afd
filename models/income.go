package models

// PriceRange is a [min, max] price pair in bolivianos per service.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PriceTable maps skill ID -> city -> price range. Loaded once at startup and
// never mutated; a missing (skill, city) entry contributes zero to estimates.
type PriceTable map[string]map[string]PriceRange

// Lookup returns the range for a (skill, city) pair. ok is false when either
// key is absent, which callers treat as "no data", not as an error.
func (t PriceTable) Lookup(skillID, city string) (PriceRange, bool) {
	cities, ok := t[skillID]
	if !ok {
		return PriceRange{}, false
	}
	r, ok := cities[city]
	return r, ok
}

// IncomeBreakdown is the derived projection shown to the student. PerService
// and Weekly carry the same values: the estimate assumes each selected skill
// is booked once per week.
type IncomeBreakdown struct {
	PerService PriceRange `json:"perService"`
	Weekly     PriceRange `json:"weekly"`
	Monthly    PriceRange `json:"monthly"`
}

// CityContext keeps the city used for price lookups separate from the city
// shown to the student. When the student's city has no pricing data the lookup
// falls back to a reference city, but display text always keeps the real one.
type CityContext struct {
	LookupCity  string `json:"lookupCity"`
	DisplayCity string `json:"displayCity"`
}
