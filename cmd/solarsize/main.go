// solarsize computes one off-grid sizing from flags and writes the result as
// JSON plus a year-by-year projection as CSV, without needing the server.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/helioplan/helioplan/pkg/catalog"
	"github.com/helioplan/helioplan/pkg/sizing"
	"github.com/helioplan/helioplan/pkg/types"
)

func main() {
	in := types.DefaultSizingInputs()

	var (
		latitude    float64
		voltages    []float64
		panelType   string
		batteryType string
		region      string
		outputDir   string
	)

	pflag.Float64VarP(&in.HouseholdLoadW, "load", "l", 0,
		"Average household load in watts")
	pflag.Float64VarP(&in.DaysOfAutonomy, "autonomy", "a", 0,
		"Days of battery autonomy")
	pflag.Float64Var(&in.BatteryDOD, "dod", 0,
		"Battery depth of discharge (0-1)")
	pflag.Float64VarP(&in.SunHoursPerDay, "sun-hours", "s", 0,
		"Peak sun hours per day (estimated from --latitude if omitted)")
	pflag.Float64Var(&latitude, "latitude", 0,
		"Site latitude, used to estimate sun hours")
	pflag.Float64SliceVarP(&voltages, "voltages", "v", nil,
		"Candidate battery voltages in preference order")
	pflag.Float64Var(&in.PVPanelCostPerWatt, "panel-cost", in.PVPanelCostPerWatt,
		"Solar panel cost per watt")
	pflag.Float64Var(&in.BatteryCostPerWH, "battery-cost", in.BatteryCostPerWH,
		"Battery cost per Wh")
	pflag.Float64Var(&in.ChargeControllerCostPerAmp, "controller-cost", in.ChargeControllerCostPerAmp,
		"Charge controller cost per amp")
	pflag.Float64Var(&in.InverterCost, "inverter-cost", in.InverterCost,
		"Inverter cost")
	pflag.Float64Var(&in.OtherCosts, "other-costs", in.OtherCosts,
		"Other fixed costs (mounting, cabling, installation)")
	pflag.Float64Var(&in.ElectricityCostPerKWH, "electricity-cost", in.ElectricityCostPerKWH,
		"Grid electricity cost per kWh")
	pflag.Float64Var(&in.AnnualMaintenanceCost, "maintenance", 0,
		"Annual maintenance cost")
	pflag.Float64Var(&in.Subsidy, "subsidy", 0,
		"Government subsidy")
	pflag.IntVar(&in.SystemLifetimeYears, "lifetime", in.SystemLifetimeYears,
		"System lifetime in years")
	pflag.IntVar(&in.BatteryCycleLife, "cycle-life", in.BatteryCycleLife,
		"Battery cycle life in days")
	pflag.StringVar(&panelType, "panel", "",
		"Panel model from the catalog (sets panel cost and efficiency)")
	pflag.StringVar(&batteryType, "battery", "",
		"Battery chemistry from the catalog (sets battery cost, DOD, cycle life, voltage)")
	pflag.StringVar(&region, "region", "",
		"Pricing region from the catalog (sets typical component prices)")
	pflag.StringVarP(&outputDir, "output", "o", "results",
		"Output directory for the JSON and CSV files")
	pflag.Parse()

	if in.SunHoursPerDay == 0 && latitude != 0 {
		in.SunHoursPerDay = sizing.EstimateSunHours(latitude)
	}
	if len(voltages) > 0 {
		in.BatteryVoltageOptions = voltages
	}

	var err error
	if panelType != "" {
		if in, err = catalog.ApplyPanel(in, panelType); err != nil {
			fatal(err)
		}
	}
	if batteryType != "" {
		if in, err = catalog.ApplyBattery(in, batteryType); err != nil {
			fatal(err)
		}
	}
	if region != "" {
		if in, err = catalog.ApplyRegion(in, region, panelType, batteryType); err != nil {
			fatal(err)
		}
	}

	res, err := sizing.SizeSystem(in)
	if err != nil {
		fatal(err)
	}

	if err := saveResults(outputDir, in, res); err != nil {
		fatal(err)
	}

	fmt.Printf("Solar panel size:    %.2f W\n", res.SolarPanelSizeW)
	fmt.Printf("Battery bank:        %gV, %.2f Ah\n", res.BestBatteryOption.Voltage, res.BestBatteryOption.AmpHours)
	fmt.Printf("Charge controller:   %.2f A\n", res.ChargeControllerAmpRating)
	fmt.Printf("Total system cost:   %.2f\n", res.TotalSystemCost)
	if res.PaybackYears.IsInf() {
		fmt.Println("Payback period:      never")
	} else {
		fmt.Printf("Payback period:      %.1f years\n", float64(res.PaybackYears))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func saveResults(outputDir string, in types.SizingInputs, res types.SizingResult) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_150405")

	jsonPath := filepath.Join(outputDir, fmt.Sprintf("sizing_%s.json", timestamp))
	jsonData, err := json.MarshalIndent(struct {
		Timestamp string             `json:"timestamp"`
		Inputs    types.SizingInputs `json:"inputs"`
		Result    types.SizingResult `json:"results"`
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Inputs:    in,
		Result:    res,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	csvPath := filepath.Join(outputDir, fmt.Sprintf("projection_%s.csv", timestamp))
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer csvFile.Close()

	writer := csv.NewWriter(csvFile)
	defer writer.Flush()

	if err := writer.Write([]string{"Year", "Cumulative Profit", "ROI (%)", "Payback Year"}); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, p := range sizing.Project(res, in.SystemLifetimeYears) {
		row := []string{
			strconv.Itoa(p.Year),
			fmt.Sprintf("%.2f", p.CumulativeProfit),
			fmt.Sprintf("%.2f", p.ROIPercent),
			strconv.FormatBool(p.PaybackYear),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
