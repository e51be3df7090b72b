package types

import (
	"strconv"
	"strings"
)

// DesignTimestampLayout is the layout used for DesignRecord.Timestamp.
const DesignTimestampLayout = "2006-01-02 15:04:05"

// DesignRecord is one saved design: the raw form inputs exactly as the user
// entered them, the moment it was saved, and the result computed from them.
// Re-running the engine on SizingInputs() must reproduce Result bit-for-bit.
type DesignRecord struct {
	HouseholdLoadW             string `json:"householdLoadW"`
	DaysOfAutonomy             string `json:"daysOfAutonomy"`
	BatteryDOD                 string `json:"batteryDOD"`
	SunHoursPerDay             string `json:"sunHoursPerDay"`
	BatteryType                string `json:"batteryType"`
	BatteryVoltageOptions      string `json:"batteryVoltageOptions"`
	BatteryCycleLife           string `json:"batteryCycleLife"`
	PVPanelCostPerWatt         string `json:"pvPanelCostPerWatt"`
	BatteryCostPerWH           string `json:"batteryCostPerWH"`
	ChargeControllerCostPerAmp string `json:"chargeControllerCostPerAmp"`
	InverterCost               string `json:"inverterCost"`
	OtherCosts                 string `json:"otherCosts"`
	MountingCost               string `json:"mountingCost"`
	CablingCost                string `json:"cablingCost"`
	InstallationCost           string `json:"installationCost"`
	AnnualMaintenanceCost      string `json:"annualMaintenanceCost"`
	Subsidy                    string `json:"subsidy"`
	Latitude                   string `json:"latitude"`
	Longitude                  string `json:"longitude"`
	PanelType                  string `json:"panelType"`
	Region                     string `json:"region"`

	Timestamp string       `json:"timestamp"`
	Result    SizingResult `json:"results"`
}

// SizingInputs re-derives the engine inputs from the raw strings. The
// balance-of-system costs (mounting, cabling, installation) are folded into
// the other costs, matching how the input form feeds the engine.
func (d DesignRecord) SizingInputs() (SizingInputs, error) {
	in := DefaultSizingInputs()

	var err error
	if in.HouseholdLoadW, err = requiredFloat("householdLoadW", d.HouseholdLoadW); err != nil {
		return SizingInputs{}, err
	}
	if in.DaysOfAutonomy, err = requiredFloat("daysOfAutonomy", d.DaysOfAutonomy); err != nil {
		return SizingInputs{}, err
	}
	if in.BatteryDOD, err = requiredFloat("batteryDOD", d.BatteryDOD); err != nil {
		return SizingInputs{}, err
	}
	if in.SunHoursPerDay, err = requiredFloat("sunHoursPerDay", d.SunHoursPerDay); err != nil {
		return SizingInputs{}, err
	}
	if in.PVPanelCostPerWatt, err = requiredFloat("pvPanelCostPerWatt", d.PVPanelCostPerWatt); err != nil {
		return SizingInputs{}, err
	}
	if in.BatteryCostPerWH, err = requiredFloat("batteryCostPerWH", d.BatteryCostPerWH); err != nil {
		return SizingInputs{}, err
	}
	if in.ChargeControllerCostPerAmp, err = requiredFloat("chargeControllerCostPerAmp", d.ChargeControllerCostPerAmp); err != nil {
		return SizingInputs{}, err
	}
	if in.InverterCost, err = optionalFloat("inverterCost", d.InverterCost); err != nil {
		return SizingInputs{}, err
	}
	if in.OtherCosts, err = optionalFloat("otherCosts", d.OtherCosts); err != nil {
		return SizingInputs{}, err
	}
	if in.AnnualMaintenanceCost, err = optionalFloat("annualMaintenanceCost", d.AnnualMaintenanceCost); err != nil {
		return SizingInputs{}, err
	}
	if in.Subsidy, err = optionalFloat("subsidy", d.Subsidy); err != nil {
		return SizingInputs{}, err
	}

	mounting, err := optionalFloat("mountingCost", d.MountingCost)
	if err != nil {
		return SizingInputs{}, err
	}
	cabling, err := optionalFloat("cablingCost", d.CablingCost)
	if err != nil {
		return SizingInputs{}, err
	}
	installation, err := optionalFloat("installationCost", d.InstallationCost)
	if err != nil {
		return SizingInputs{}, err
	}
	in.OtherCosts += mounting + cabling + installation

	if d.BatteryCycleLife != "" {
		cycleLife, err := strconv.Atoi(strings.TrimSpace(d.BatteryCycleLife))
		if err != nil {
			return SizingInputs{}, &ValidationError{Field: "batteryCycleLife", Reason: "not a number"}
		}
		in.BatteryCycleLife = cycleLife
	}

	for _, v := range strings.Split(d.BatteryVoltageOptions, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		voltage, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return SizingInputs{}, &ValidationError{Field: "batteryVoltageOptions", Reason: "not a list of numbers"}
		}
		in.BatteryVoltageOptions = append(in.BatteryVoltageOptions, voltage)
	}

	return in, nil
}

func requiredFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "not a number"}
	}
	return f, nil
}

func optionalFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "not a number"}
	}
	return f, nil
}
