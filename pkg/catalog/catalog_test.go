package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioplan/helioplan/pkg/types"
)

func TestLookups(t *testing.T) {
	p, err := Panel("Standard 300W Panel")
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.Watts)
	assert.Equal(t, 0.85, p.CostPerWatt)

	_, err = Panel("Flux Capacitor Panel")
	assert.Error(t, err)

	b, err := Battery("AGM")
	require.NoError(t, err)
	assert.Equal(t, 12.0, b.Voltage)
	assert.Equal(t, 1000, b.CycleLifeDays)

	_, err = Battery("Potato")
	assert.Error(t, err)

	r, err := Region("Germany")
	require.NoError(t, err)
	assert.Equal(t, "€", r.Currency)
	assert.Equal(t, 9.0, r.ControllerPerAmp["mppt"])

	_, err = Region("Atlantis")
	assert.Error(t, err)
}

func TestAccessorsReturnCopies(t *testing.T) {
	Panels()[0].CostPerWatt = 99
	assert.Equal(t, 0.70, Panels()[0].CostPerWatt)

	r, err := Region("Europe")
	require.NoError(t, err)
	r.InverterBase["1kw"] = -1
	r2, err := Region("Europe")
	require.NoError(t, err)
	assert.Equal(t, 320.0, r2.InverterBase["1kw"])

	Regions()[0].BatteryPerWH["agm"] = -1
	r3, err := Region("Europe")
	require.NoError(t, err)
	assert.Equal(t, 0.23, r3.BatteryPerWH["agm"])
}

func TestApplyPanel(t *testing.T) {
	in := types.DefaultSizingInputs()
	out, err := ApplyPanel(in, "HJT 440W Panel")
	require.NoError(t, err)
	assert.Equal(t, 1.25, out.PVPanelCostPerWatt)
	assert.Equal(t, 0.23, out.PanelEfficiency)

	_, err = ApplyPanel(in, "nope")
	assert.Error(t, err)
}

func TestApplyBattery(t *testing.T) {
	in := types.DefaultSizingInputs()
	out, err := ApplyBattery(in, "Lithium-Ion")
	require.NoError(t, err)
	assert.Equal(t, 0.35, out.BatteryCostPerWH)
	assert.Equal(t, 0.8, out.BatteryDOD)
	assert.Equal(t, 3000, out.BatteryCycleLife)
	assert.Equal(t, []float64{48}, out.BatteryVoltageOptions)

	_, err = ApplyBattery(in, "nope")
	assert.Error(t, err)
}

func TestApplyRegion(t *testing.T) {
	in := types.DefaultSizingInputs()
	in.HouseholdLoadW = 1500

	out, err := ApplyRegion(in, "Germany", "Premium 350W Panel", "Lead-Acid")
	require.NoError(t, err)
	assert.Equal(t, 1.20, out.PVPanelCostPerWatt)
	assert.Equal(t, 0.18, out.BatteryCostPerWH)
	assert.Equal(t, 9.0, out.ChargeControllerCostPerAmp)
	assert.Equal(t, 600.0, out.InverterCost)

	_, err = ApplyRegion(in, "nope", "Standard 300W Panel", "AGM")
	assert.Error(t, err)
}

func TestPriceTierHelpers(t *testing.T) {
	assert.Equal(t, "low", panelPriceTier("Economy 250W Panel"))
	assert.Equal(t, "premium", panelPriceTier("Bifacial 380W Panel"))
	assert.Equal(t, "premium", panelPriceTier("HJT 390W Panel"))
	assert.Equal(t, "average", panelPriceTier("Standard 300W Panel"))

	assert.Equal(t, "lead_acid", batteryPriceKey("Lead-Acid"))
	assert.Equal(t, "lithium", batteryPriceKey("Lithium-Ion"))
	assert.Equal(t, "agm", batteryPriceKey("AGM"))

	assert.Equal(t, "1kw", inverterSizeKey(500))
	assert.Equal(t, "2kw", inverterSizeKey(800))
	assert.Equal(t, "2kw", inverterSizeKey(1999))
	assert.Equal(t, "5kw", inverterSizeKey(2000))
}

func TestRegionForCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  float64
		region    string
		supported bool
	}{
		{"berlin", 52.52, 13.40, "Germany", true},
		{"paris", 48.85, 2.35, "Europe", true},
		{"madrid", 40.42, -3.70, "Europe", true},
		{"germany south edge", 47.2, 10.0, "Germany", true},
		{"just below germany box", 47.19, 10.0, "Europe", true},
		{"new york", 40.71, -74.0, "Europe", false},
		{"sydney", -33.87, 151.21, "Europe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, ok := RegionForCoordinates(tt.lat, tt.lon)
			assert.Equal(t, tt.region, region)
			assert.Equal(t, tt.supported, ok)
		})
	}
}
