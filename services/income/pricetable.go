package income

import (
	"fmt"

	"chamba/models"

	"github.com/spf13/viper"
)

// Cities with pricing data. Students from other cities fall back to the
// reference city for lookups (see ResolveCity).
var PricedCities = []string{"La Paz", "El Alto", "Cochabamba", "Santa Cruz"}

// defaultPriceTable is the compiled-in price reference, in bolivianos per
// service. Gaps are deliberate: not every skill has data in every city.
var defaultPriceTable = models.PriceTable{
	"limpieza-hogar": {
		"La Paz":     {Min: 80, Max: 150},
		"El Alto":    {Min: 60, Max: 120},
		"Cochabamba": {Min: 70, Max: 130},
		"Santa Cruz": {Min: 90, Max: 160},
	},
	"limpieza-oficina": {
		"La Paz":     {Min: 100, Max: 180},
		"Cochabamba": {Min: 90, Max: 160},
		"Santa Cruz": {Min: 110, Max: 200},
	},
	"planchado": {
		"La Paz":     {Min: 40, Max: 80},
		"El Alto":    {Min: 30, Max: 60},
		"Cochabamba": {Min: 35, Max: 70},
	},
	"cocina": {
		"La Paz":     {Min: 90, Max: 180},
		"Cochabamba": {Min: 80, Max: 150},
		"Santa Cruz": {Min: 100, Max: 200},
	},
	"jardineria": {
		"La Paz":     {Min: 70, Max: 140},
		"Cochabamba": {Min: 60, Max: 120},
		"Santa Cruz": {Min: 80, Max: 150},
	},
	"clases-matematicas": {
		"La Paz":     {Min: 50, Max: 100},
		"El Alto":    {Min: 40, Max: 80},
		"Cochabamba": {Min: 45, Max: 90},
		"Santa Cruz": {Min: 55, Max: 110},
	},
	"clases-fisica": {
		"La Paz":     {Min: 50, Max: 100},
		"Cochabamba": {Min: 45, Max: 90},
		"Santa Cruz": {Min: 55, Max: 110},
	},
	"clases-quimica": {
		"La Paz":     {Min: 50, Max: 100},
		"Cochabamba": {Min: 45, Max: 90},
	},
	"clases-ingles": {
		"La Paz":     {Min: 60, Max: 120},
		"El Alto":    {Min: 45, Max: 90},
		"Cochabamba": {Min: 55, Max: 110},
		"Santa Cruz": {Min: 70, Max: 130},
	},
	"clases-musica": {
		"La Paz":     {Min: 60, Max: 120},
		"Cochabamba": {Min: 50, Max: 100},
	},
	"soporte-tecnico": {
		"La Paz":     {Min: 80, Max: 160},
		"El Alto":    {Min: 60, Max: 120},
		"Cochabamba": {Min: 70, Max: 140},
		"Santa Cruz": {Min: 90, Max: 180},
	},
	"diseno-grafico": {
		"La Paz":     {Min: 100, Max: 250},
		"Cochabamba": {Min: 90, Max: 200},
		"Santa Cruz": {Min: 120, Max: 280},
	},
	"redes-sociales": {
		"La Paz":     {Min: 150, Max: 350},
		"Santa Cruz": {Min: 180, Max: 400},
	},
	"reparacion-celulares": {
		"La Paz":     {Min: 50, Max: 150},
		"El Alto":    {Min: 40, Max: 120},
		"Cochabamba": {Min: 45, Max: 130},
	},
	"mesero-eventos": {
		"La Paz":     {Min: 100, Max: 180},
		"El Alto":    {Min: 80, Max: 150},
		"Cochabamba": {Min: 90, Max: 160},
		"Santa Cruz": {Min: 120, Max: 200},
	},
	"fotografia": {
		"La Paz":     {Min: 200, Max: 500},
		"Cochabamba": {Min: 180, Max: 400},
		"Santa Cruz": {Min: 250, Max: 600},
	},
	"animacion-fiestas": {
		"La Paz":     {Min: 150, Max: 300},
		"Santa Cruz": {Min: 180, Max: 350},
	},
	"cuidado-ninos": {
		"La Paz":     {Min: 60, Max: 120},
		"El Alto":    {Min: 50, Max: 100},
		"Cochabamba": {Min: 55, Max: 110},
		"Santa Cruz": {Min: 70, Max: 130},
	},
	"paseo-mascotas": {
		"La Paz":     {Min: 30, Max: 60},
		"Cochabamba": {Min: 25, Max: 50},
		"Santa Cruz": {Min: 35, Max: 70},
	},
	"mandados": {
		"La Paz":     {Min: 25, Max: 60},
		"El Alto":    {Min: 20, Max: 50},
		"Cochabamba": {Min: 25, Max: 55},
		"Santa Cruz": {Min: 30, Max: 70},
	},
}

// LoadPriceTable returns the price reference, preferring a pricing.yaml file
// when one exists so operations can adjust ranges without a redeploy.
func LoadPriceTable() (models.PriceTable, error) {
	v := viper.New()
	v.SetConfigName("pricing")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultPriceTable, nil
		}
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	var table models.PriceTable
	if err := v.UnmarshalKey("prices", &table); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}
	if len(table) == 0 {
		return defaultPriceTable, nil
	}
	return table, nil
}
