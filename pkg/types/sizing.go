package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// Defaults for the optional sizing inputs. DefaultSizingInputs applies them;
// the engine itself never fills in missing values.
const (
	DefaultSolarSafetyFactor      = 1.2
	DefaultControllerSafetyFactor = 1.25
	DefaultElectricityCostPerKWH  = 0.15
	DefaultPanelEfficiency        = 0.18
	DefaultSystemLifetimeYears    = 25
	DefaultBatteryCycleLifeDays   = 1000
)

// ValidationError reports a sizing input that is out of range. The engine
// returns it before any computation happens so a caller never sees a partial
// result.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SizingInputs are the resolved numeric parameters for one sizing run.
// Catalog selections (panel type, battery type, region) are merged into these
// fields before the engine sees them.
type SizingInputs struct {
	// HouseholdLoadW is the average continuous household load in watts.
	HouseholdLoadW float64 `json:"householdLoadW"`
	// DaysOfAutonomy is how many days the battery bank must carry the load
	// without any solar input.
	DaysOfAutonomy float64 `json:"daysOfAutonomy"`
	// BatteryDOD is the usable fraction of battery capacity, in (0, 1].
	BatteryDOD float64 `json:"batteryDOD"`
	// SunHoursPerDay is the peak-equivalent sun hours at the site.
	SunHoursPerDay float64 `json:"sunHoursPerDay"`
	// BatteryVoltageOptions are the candidate system voltages, in preference
	// order.
	BatteryVoltageOptions []float64 `json:"batteryVoltageOptions"`

	// Unit costs
	PVPanelCostPerWatt         float64 `json:"pvPanelCostPerWatt"`
	BatteryCostPerWH           float64 `json:"batteryCostPerWH"`
	ChargeControllerCostPerAmp float64 `json:"chargeControllerCostPerAmp"`
	InverterCost               float64 `json:"inverterCost"`
	OtherCosts                 float64 `json:"otherCosts"`

	// Oversizing multipliers
	SolarSafetyFactor      float64 `json:"solarSafetyFactor"`
	ControllerSafetyFactor float64 `json:"controllerSafetyFactor"`

	// Financial parameters
	ElectricityCostPerKWH float64 `json:"electricityCostPerKWH"`
	AnnualMaintenanceCost float64 `json:"annualMaintenanceCost"`
	Subsidy               float64 `json:"subsidy"`

	PanelEfficiency     float64 `json:"panelEfficiency"`
	SystemLifetimeYears int     `json:"systemLifetimeYears"`
	// BatteryCycleLife is expressed in days until the battery bank needs to be
	// replaced, not charge cycles.
	BatteryCycleLife int `json:"batteryCycleLife"`
}

// DefaultSizingInputs returns inputs with every optional field at its default.
// Decode user input on top of this so omitted fields keep their defaults while
// an explicit zero (e.g. free electricity) is preserved.
func DefaultSizingInputs() SizingInputs {
	return SizingInputs{
		SolarSafetyFactor:      DefaultSolarSafetyFactor,
		ControllerSafetyFactor: DefaultControllerSafetyFactor,
		ElectricityCostPerKWH:  DefaultElectricityCostPerKWH,
		PanelEfficiency:        DefaultPanelEfficiency,
		SystemLifetimeYears:    DefaultSystemLifetimeYears,
		BatteryCycleLife:       DefaultBatteryCycleLifeDays,
	}
}

// Validate checks the preconditions for a sizing run. It returns a
// *ValidationError naming the first offending field, or nil.
func (in SizingInputs) Validate() error {
	if in.HouseholdLoadW <= 0 {
		return &ValidationError{Field: "householdLoadW", Reason: "must be greater than zero"}
	}
	if in.DaysOfAutonomy <= 0 {
		return &ValidationError{Field: "daysOfAutonomy", Reason: "must be greater than zero"}
	}
	if in.BatteryDOD <= 0 || in.BatteryDOD > 1 {
		return &ValidationError{Field: "batteryDOD", Reason: "must be between 0 and 1"}
	}
	if in.SunHoursPerDay <= 0 {
		return &ValidationError{Field: "sunHoursPerDay", Reason: "must be greater than zero"}
	}
	if len(in.BatteryVoltageOptions) == 0 {
		return &ValidationError{Field: "batteryVoltageOptions", Reason: "at least one voltage is required"}
	}
	if in.PanelEfficiency <= 0 || in.PanelEfficiency > 1 {
		return &ValidationError{Field: "panelEfficiency", Reason: "must be between 0 and 1"}
	}
	if in.SystemLifetimeYears <= 0 {
		return &ValidationError{Field: "systemLifetimeYears", Reason: "must be greater than zero"}
	}
	if in.BatteryCycleLife <= 0 {
		return &ValidationError{Field: "batteryCycleLife", Reason: "must be greater than zero"}
	}
	return nil
}

// BatteryOption is one evaluated battery bank candidate.
type BatteryOption struct {
	Voltage  float64 `json:"voltage"`
	AmpHours float64 `json:"ampHours"`
	Cost     float64 `json:"cost"`
}

// Years is a span of years that may be infinite (a system that never pays for
// itself). JSON has no encoding for infinity so it round-trips as null.
type Years float64

// IsInf reports whether the span is infinite.
func (y Years) IsInf() bool {
	return math.IsInf(float64(y), 1)
}

func (y Years) MarshalJSON() ([]byte, error) {
	if y.IsInf() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(y))
}

func (y *Years) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = Years(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*y = Years(f)
	return nil
}

// SizingResult is the full output of one sizing run. It is a value; the
// engine never mutates it after returning it.
type SizingResult struct {
	BestBatteryOption BatteryOption `json:"bestBatteryOption"`

	// Sizing
	SolarPanelSizeW           float64 `json:"solarPanelSizeW"`
	ChargeControllerAmpRating float64 `json:"chargeControllerAmpRating"`
	DailyEnergyWH             float64 `json:"dailyEnergyWH"`
	RequiredBatteryCapacityWH float64 `json:"requiredBatteryCapacityWH"`

	// Costs. TotalSystemCost is signed: a subsidy larger than the raw cost
	// leaves it negative.
	TotalSystemCost       float64 `json:"totalSystemCost"`
	BatteryReplacements   int     `json:"batteryReplacements"`
	TotalBatteryCost      float64 `json:"totalBatteryCost"`
	AnnualMaintenanceCost float64 `json:"annualMaintenanceCost"`
	Subsidy               float64 `json:"subsidy"`

	// Financials
	PaybackYears    Years   `json:"paybackYears"`
	AnnualSavings   float64 `json:"annualSavings"`
	LifetimeSavings float64 `json:"lifetimeSavings"`
	ROIPercentage   float64 `json:"roiPercentage"`

	// Energy & environment
	AnnualEnergyProductionKWH float64 `json:"annualEnergyProductionKWH"`
	CO2ReductionKGPerYear     float64 `json:"co2ReductionKGPerYear"`
	LifetimeCO2ReductionKG    float64 `json:"lifetimeCO2ReductionKG"`
}

// ApplianceUsage is one appliance line in a load estimate.
type ApplianceUsage struct {
	Name        string  `json:"name"`
	Watts       float64 `json:"watts"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

// LoadEstimate is the result of summing appliance usage into a household load.
type LoadEstimate struct {
	DailyEnergyWH float64 `json:"dailyEnergyWH"`
	// AverageLoadW is DailyEnergyWH spread over 24 hours, suitable for
	// SizingInputs.HouseholdLoadW.
	AverageLoadW float64 `json:"averageLoadW"`
}

// YearPoint is one year of the financial projection consumed by the chart
// layer.
type YearPoint struct {
	Year int `json:"year"`
	// CumulativeProfit is savings to date minus maintenance to date minus the
	// total system cost.
	CumulativeProfit float64 `json:"cumulativeProfit"`
	ROIPercent       float64 `json:"roiPercent"`
	// PaybackYear marks the first year the cumulative profit turns positive.
	PaybackYear bool `json:"paybackYear,omitempty"`
}
