package catalog

import (
	"strings"

	"github.com/helioplan/helioplan/pkg/types"
)

// ApplyPanel merges a panel selection into the inputs: the per-watt cost and
// the rated efficiency follow the panel type.
func ApplyPanel(in types.SizingInputs, panelName string) (types.SizingInputs, error) {
	p, err := Panel(panelName)
	if err != nil {
		return in, err
	}
	in.PVPanelCostPerWatt = p.CostPerWatt
	in.PanelEfficiency = p.Efficiency
	return in, nil
}

// ApplyBattery merges a battery selection into the inputs: the per-Wh cost,
// depth of discharge, cycle life, and the system voltage candidate follow the
// chemistry.
func ApplyBattery(in types.SizingInputs, batteryName string) (types.SizingInputs, error) {
	b, err := Battery(batteryName)
	if err != nil {
		return in, err
	}
	in.BatteryCostPerWH = b.CostPerWH
	in.BatteryDOD = b.DOD
	in.BatteryCycleLife = b.CycleLifeDays
	in.BatteryVoltageOptions = []float64{b.Voltage}
	return in, nil
}

// ApplyRegion merges a region's typical prices into the inputs. The panel
// price tier follows the selected panel type, the battery price follows the
// chemistry, controllers are priced as MPPT, and the inverter base price is
// chosen by the household load.
func ApplyRegion(in types.SizingInputs, regionName, panelName, batteryName string) (types.SizingInputs, error) {
	r, err := Region(regionName)
	if err != nil {
		return in, err
	}

	in.PVPanelCostPerWatt = r.SolarPanelPerWatt[panelPriceTier(panelName)]
	in.BatteryCostPerWH = r.BatteryPerWH[batteryPriceKey(batteryName)]
	in.ChargeControllerCostPerAmp = r.ControllerPerAmp["mppt"]
	in.InverterCost = r.InverterBase[inverterSizeKey(in.HouseholdLoadW)]
	return in, nil
}

func panelPriceTier(panelName string) string {
	switch {
	case strings.Contains(panelName, "Economy"):
		return "low"
	case strings.Contains(panelName, "Premium"), strings.Contains(panelName, "HJT"), strings.Contains(panelName, "Bifacial"):
		return "premium"
	default:
		return "average"
	}
}

func batteryPriceKey(batteryName string) string {
	switch {
	case strings.Contains(batteryName, "Lead-Acid"):
		return "lead_acid"
	case strings.Contains(batteryName, "Lithium"):
		return "lithium"
	default:
		return "agm"
	}
}

func inverterSizeKey(householdLoadW float64) string {
	switch {
	case householdLoadW < 800:
		return "1kw"
	case householdLoadW < 2000:
		return "2kw"
	default:
		return "5kw"
	}
}
