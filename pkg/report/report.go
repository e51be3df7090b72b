// Package report renders a sizing result as a plain-text summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/helioplan/helioplan/pkg/types"
)

// DefaultCurrency is used when no regional price table supplies one.
const DefaultCurrency = "€"

// Render formats a sizing result as a fixed-layout text report. The layout
// follows the sectioned results summary: energy, battery, solar, financial,
// and environmental figures with a generated-on footer.
func Render(res types.SizingResult, currency string, generatedAt time.Time) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-32s %s\n", label, value)
	}
	section := func(name string) {
		fmt.Fprintf(&b, "\n%s\n%s\n", name, strings.Repeat("-", len(name)))
	}

	b.WriteString("System Design Results\n")
	b.WriteString("=====================\n\n")
	line("Daily Energy Consumption:", fmt.Sprintf("%.2f Wh", res.DailyEnergyWH))

	section("Battery System")
	line("Required Battery Capacity:", fmt.Sprintf("%.2f Wh", res.RequiredBatteryCapacityWH))
	line("Recommended Battery:", fmt.Sprintf("%gV, %.2f Ah", res.BestBatteryOption.Voltage, res.BestBatteryOption.AmpHours))
	line("Battery Cost:", fmt.Sprintf("%s%.2f", currency, res.BestBatteryOption.Cost))

	section("Solar System")
	line("Recommended Solar Panel Size:", fmt.Sprintf("%.2f W", res.SolarPanelSizeW))
	line("Recommended Charge Controller:", fmt.Sprintf("%.2f A", res.ChargeControllerAmpRating))

	section("Financial Analysis")
	line("Total System Cost:", fmt.Sprintf("%s%.2f", currency, res.TotalSystemCost))
	line("Estimated Annual Savings:", fmt.Sprintf("%s%.2f", currency, res.AnnualSavings))
	line("Estimated Payback Period:", formatPayback(res.PaybackYears))
	line("Battery Replacements:", fmt.Sprintf("%d", res.BatteryReplacements))
	line("Total Battery Cost:", fmt.Sprintf("%s%.2f", currency, res.TotalBatteryCost))
	line("Annual Maintenance Cost:", fmt.Sprintf("%s%.2f", currency, res.AnnualMaintenanceCost))
	line("Government Subsidy:", fmt.Sprintf("-%s%.2f", currency, res.Subsidy))
	line("Lifetime Savings:", fmt.Sprintf("%s%.2f", currency, res.LifetimeSavings))
	line("Return on Investment:", fmt.Sprintf("%.1f%%", res.ROIPercentage))

	section("Environmental Impact")
	line("Annual Energy Production:", fmt.Sprintf("%.2f kWh", res.AnnualEnergyProductionKWH))
	line("Annual CO2 Reduction:", fmt.Sprintf("%.2f kg", res.CO2ReductionKGPerYear))
	line("Lifetime CO2 Reduction:", fmt.Sprintf("%.2f kg", res.LifetimeCO2ReductionKG))

	fmt.Fprintf(&b, "\nGenerated on %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}

func formatPayback(y types.Years) string {
	if y.IsInf() {
		return "never"
	}
	return fmt.Sprintf("%.1f years", float64(y))
}
