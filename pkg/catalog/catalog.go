// Package catalog holds the immutable reference tables: solar panel and
// battery models, common appliance wattages, and per-region price estimates.
// The data is fixed at build time; accessors hand out copies so callers can't
// mutate the tables. The sizing engine never sees any of this; selecting a
// catalog entry produces a patch merged into the sizing inputs.
package catalog

import (
	"fmt"

	"github.com/helioplan/helioplan/pkg/types"
)

// Sourced from public panel/battery price surveys (pvxchange, energysage,
// cleanenergyreviews).
var panels = []types.PanelSpec{
	{Name: "Economy 250W Panel", Watts: 250, CostPerWatt: 0.70, Efficiency: 0.15},
	{Name: "Standard 300W Panel", Watts: 300, CostPerWatt: 0.85, Efficiency: 0.18},
	{Name: "Premium 350W Panel", Watts: 350, CostPerWatt: 1.10, Efficiency: 0.22},
	{Name: "Monocrystalline 400W Panel", Watts: 400, CostPerWatt: 0.95, Efficiency: 0.20},
	{Name: "Monocrystalline 450W Panel", Watts: 450, CostPerWatt: 1.00, Efficiency: 0.21},
	{Name: "PERC 360W Panel", Watts: 360, CostPerWatt: 0.90, Efficiency: 0.19},
	{Name: "PERC 410W Panel", Watts: 410, CostPerWatt: 0.98, Efficiency: 0.20},
	{Name: "Bifacial 380W Panel", Watts: 380, CostPerWatt: 1.05, Efficiency: 0.21},
	{Name: "Bifacial 420W Panel", Watts: 420, CostPerWatt: 1.15, Efficiency: 0.22},
	{Name: "HJT 390W Panel", Watts: 390, CostPerWatt: 1.20, Efficiency: 0.22},
	{Name: "HJT 440W Panel", Watts: 440, CostPerWatt: 1.25, Efficiency: 0.23},
	{Name: "N-Type 370W Panel", Watts: 370, CostPerWatt: 1.00, Efficiency: 0.20},
	{Name: "N-Type 430W Panel", Watts: 430, CostPerWatt: 1.15, Efficiency: 0.22},
	{Name: "Thin Film 320W Panel", Watts: 320, CostPerWatt: 0.80, Efficiency: 0.17},
}

var batteries = []types.BatterySpec{
	{Name: "Lead-Acid", Voltage: 12, CostPerWH: 0.15, CycleLifeDays: 500, DOD: 0.5},
	{Name: "AGM", Voltage: 12, CostPerWH: 0.22, CycleLifeDays: 1000, DOD: 0.7},
	{Name: "Lithium-Ion", Voltage: 48, CostPerWH: 0.35, CycleLifeDays: 3000, DOD: 0.8},
}

var appliances = []types.Appliance{
	{Name: "Refrigerator", Watts: 150, HoursPerDay: 24},
	{Name: "LED TV", Watts: 50, HoursPerDay: 4},
	{Name: "Lights", Watts: 60, HoursPerDay: 6},
	{Name: "Water Heater", Watts: 1000, HoursPerDay: 6},
	{Name: "Laptop", Watts: 70, HoursPerDay: 5},
	{Name: "Ceiling Fan", Watts: 75, HoursPerDay: 8},
	{Name: "Microwave", Watts: 900, HoursPerDay: 0.5},
	{Name: "Router/Modem", Watts: 10, HoursPerDay: 24},
	{Name: "Air Conditioner", Watts: 1000, HoursPerDay: 8},
	{Name: "Washing Machine", Watts: 500, HoursPerDay: 1},
}

var regions = []types.RegionalPrices{
	{
		Region:            "Europe",
		Currency:          "€",
		SolarPanelPerWatt: map[string]float64{"low": 0.65, "average": 0.80, "premium": 1.15},
		BatteryPerWH:      map[string]float64{"lead_acid": 0.16, "agm": 0.23, "lithium": 0.37},
		ControllerPerAmp:  map[string]float64{"pwm": 5.0, "mppt": 8.5},
		InverterBase:      map[string]float64{"1kw": 320, "2kw": 550, "5kw": 950},
	},
	{
		Region:            "Germany",
		Currency:          "€",
		SolarPanelPerWatt: map[string]float64{"low": 0.70, "average": 0.85, "premium": 1.20},
		BatteryPerWH:      map[string]float64{"lead_acid": 0.18, "agm": 0.25, "lithium": 0.40},
		ControllerPerAmp:  map[string]float64{"pwm": 5.5, "mppt": 9.0},
		InverterBase:      map[string]float64{"1kw": 350, "2kw": 600, "5kw": 1000},
	},
}

// FallbackRegion is used when coordinates fall outside every supported
// region.
const FallbackRegion = "Europe"

// Panels returns a copy of the solar panel catalog.
func Panels() []types.PanelSpec {
	out := make([]types.PanelSpec, len(panels))
	copy(out, panels)
	return out
}

// Batteries returns a copy of the battery catalog.
func Batteries() []types.BatterySpec {
	out := make([]types.BatterySpec, len(batteries))
	copy(out, batteries)
	return out
}

// Appliances returns a copy of the common appliance list.
func Appliances() []types.Appliance {
	out := make([]types.Appliance, len(appliances))
	copy(out, appliances)
	return out
}

// Regions returns a copy of the regional price tables.
func Regions() []types.RegionalPrices {
	out := make([]types.RegionalPrices, len(regions))
	for i, r := range regions {
		out[i] = copyRegion(r)
	}
	return out
}

func copyRegion(r types.RegionalPrices) types.RegionalPrices {
	c := r
	c.SolarPanelPerWatt = copyMap(r.SolarPanelPerWatt)
	c.BatteryPerWH = copyMap(r.BatteryPerWH)
	c.ControllerPerAmp = copyMap(r.ControllerPerAmp)
	c.InverterBase = copyMap(r.InverterBase)
	return c
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Panel looks up a panel model by name.
func Panel(name string) (types.PanelSpec, error) {
	for _, p := range panels {
		if p.Name == name {
			return p, nil
		}
	}
	return types.PanelSpec{}, fmt.Errorf("unknown panel type: %s", name)
}

// Battery looks up a battery chemistry by name.
func Battery(name string) (types.BatterySpec, error) {
	for _, b := range batteries {
		if b.Name == name {
			return b, nil
		}
	}
	return types.BatterySpec{}, fmt.Errorf("unknown battery type: %s", name)
}

// Region looks up the price table for a region.
func Region(name string) (types.RegionalPrices, error) {
	for _, r := range regions {
		if r.Region == name {
			return copyRegion(r), nil
		}
	}
	return types.RegionalPrices{}, fmt.Errorf("unknown region: %s", name)
}
