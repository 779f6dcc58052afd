package income

import (
	"testing"

	"chamba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = models.PriceTable{
	"limpieza-hogar": {
		"La Paz":     {Min: 100, Max: 200},
		"Cochabamba": {Min: 80, Max: 150},
	},
	"clases-ingles": {
		"La Paz": {Min: 60, Max: 120},
	},
}

func TestComputeNoSkillsReturnsNil(t *testing.T) {
	assert.Nil(t, Compute(nil, "La Paz", testTable))
	assert.Nil(t, Compute([]string{}, "La Paz", testTable))
}

func TestComputeSingleSkill(t *testing.T) {
	got := Compute([]string{"limpieza-hogar"}, "La Paz", testTable)
	require.NotNil(t, got)

	assert.Equal(t, models.PriceRange{Min: 100, Max: 200}, got.PerService)
	assert.Equal(t, models.PriceRange{Min: 100, Max: 200}, got.Weekly,
		"weekly reuses the per-service totals")
	assert.Equal(t, models.PriceRange{Min: 400, Max: 800}, got.Monthly,
		"monthly is weekly times four")
}

func TestComputeAggregatesAcrossSkills(t *testing.T) {
	got := Compute([]string{"limpieza-hogar", "clases-ingles"}, "La Paz", testTable)
	require.NotNil(t, got)

	assert.Equal(t, models.PriceRange{Min: 160, Max: 320}, got.Weekly)
	assert.Equal(t, models.PriceRange{Min: 640, Max: 1280}, got.Monthly)
}

func TestComputeSkipsMissingEntries(t *testing.T) {
	// clases-ingles has no Cochabamba entry; it contributes zero, no error.
	got := Compute([]string{"limpieza-hogar", "clases-ingles"}, "Cochabamba", testTable)
	require.NotNil(t, got)
	assert.Equal(t, models.PriceRange{Min: 80, Max: 150}, got.Weekly)
}

func TestComputeAllMissingYieldsZeroBreakdown(t *testing.T) {
	// Skills selected but no data at all still returns a breakdown, just a
	// zero-valued one. Only an empty selection yields nil.
	got := Compute([]string{"clases-ingles"}, "Tarija", testTable)
	require.NotNil(t, got)
	assert.Equal(t, models.PriceRange{}, got.Weekly)
}

func TestResolveCity(t *testing.T) {
	tests := []struct {
		name       string
		city       string
		wantLookup string
	}{
		{name: "priced city looks itself up", city: "Cochabamba", wantLookup: "Cochabamba"},
		{name: "unpriced city falls back", city: "Tarija", wantLookup: ReferenceCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ResolveCity(tt.city, testTable)
			assert.Equal(t, tt.wantLookup, ctx.LookupCity)
			assert.Equal(t, tt.city, ctx.DisplayCity, "display city never changes")
		})
	}
}

func TestDefaultTableCoversCatalog(t *testing.T) {
	for _, skill := range models.SkillCatalog {
		if skill.ID == models.OtherSkillID {
			continue
		}
		_, ok := defaultPriceTable[skill.ID]
		assert.True(t, ok, "skill %s missing from default price table", skill.ID)
	}
}
