package income

import (
	"chamba/models"
)

// weeksPerMonth is the fixed month approximation used by the projection.
// Downstream reporting depends on this exact multiplier.
const weeksPerMonth = 4

// ReferenceCity is substituted for price lookups when the student's city has
// no pricing data. Display text keeps the real city; only the lookup changes.
const ReferenceCity = "La Paz"

// ResolveCity builds the lookup/display pair for a student's city. The two
// values must travel together downstream and never be conflated.
func ResolveCity(city string, table models.PriceTable) models.CityContext {
	ctx := models.CityContext{LookupCity: city, DisplayCity: city}
	for _, cities := range table {
		if _, ok := cities[city]; ok {
			return ctx
		}
	}
	ctx.LookupCity = ReferenceCity
	return ctx
}

// Compute aggregates the price ranges of the selected skills for a city into
// an income projection. It returns nil when no skills are selected: callers
// must treat that as "cannot compute", not as a zero estimate. Skills without
// pricing data for the city contribute nothing and raise no error.
func Compute(skillIDs []string, lookupCity string, table models.PriceTable) *models.IncomeBreakdown {
	if len(skillIDs) == 0 {
		return nil
	}

	var totalMin, totalMax int
	for _, id := range skillIDs {
		r, ok := table.Lookup(id, lookupCity)
		if !ok {
			continue
		}
		totalMin += r.Min
		totalMax += r.Max
	}

	// One booking per skill per week is assumed, so the per-service total and
	// the weekly figure are the same numbers.
	weekly := models.PriceRange{Min: totalMin, Max: totalMax}
	return &models.IncomeBreakdown{
		PerService: weekly,
		Weekly:     weekly,
		Monthly: models.PriceRange{
			Min: weekly.Min * weeksPerMonth,
			Max: weekly.Max * weeksPerMonth,
		},
	}
}
