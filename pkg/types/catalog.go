package types

// PanelSpec describes one solar panel model in the reference catalog.
type PanelSpec struct {
	Name        string  `json:"name"`
	Watts       float64 `json:"watts"`
	CostPerWatt float64 `json:"costPerWatt"`
	Efficiency  float64 `json:"efficiency"`
}

// BatterySpec describes one battery chemistry in the reference catalog.
type BatterySpec struct {
	Name      string  `json:"name"`
	Voltage   float64 `json:"voltage"`
	CostPerWH float64 `json:"costPerWH"`
	// CycleLifeDays is days until the bank needs replacing.
	CycleLifeDays int     `json:"cycleLifeDays"`
	DOD           float64 `json:"dod"`
}

// Appliance describes one common household appliance with its typical daily
// runtime.
type Appliance struct {
	Name        string  `json:"name"`
	Watts       float64 `json:"watts"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

// RegionalPrices holds typical component prices for one pricing region,
// keyed by tier (panels: low/average/premium, batteries: chemistry,
// controllers: pwm/mppt, inverters: 1kw/2kw/5kw).
type RegionalPrices struct {
	Region            string             `json:"region"`
	Currency          string             `json:"currency"`
	SolarPanelPerWatt map[string]float64 `json:"solarPanelPerWatt"`
	BatteryPerWH      map[string]float64 `json:"batteryPerWH"`
	ControllerPerAmp  map[string]float64 `json:"controllerPerAmp"`
	InverterBase      map[string]float64 `json:"inverterBase"`
}

// Location is a geocoded address.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"displayName"`
}
