package types

import (
	"fmt"
)

// CurrentSettingsVersion is the current version of the settings struct.
// Increment this value when adding new fields that require default values.
const CurrentSettingsVersion = 2

// Settings represents the per-site configuration stored in the database.
// These are dynamic settings that can be changed without redeploying.
type Settings struct {
	// DefaultRegion is the pricing region used when a design doesn't name one.
	DefaultRegion string `json:"defaultRegion"`

	// CurrencyOverride replaces the region's currency symbol in reports.
	CurrencyOverride string `json:"currencyOverride,omitempty"`

	// Default catalog selections for new designs.
	DefaultPanelType   string `json:"defaultPanelType"`
	DefaultBatteryType string `json:"defaultBatteryType"`
}

// MigrateSettings migrates the settings to the current version.
// It returns the migrated settings, a boolean indicating if changes were made, and an error if migration failed.
func MigrateSettings(s Settings, currentVersion int) (Settings, bool, error) {
	if currentVersion >= CurrentSettingsVersion {
		return s, false, nil
	}

	migrated := false
	// Loop through versions to apply migrations sequentially
	for version := currentVersion + 1; version <= CurrentSettingsVersion; version++ {
		switch version {
		case 1:
			// version 1: initial
			if s.DefaultRegion == "" {
				s.DefaultRegion = "Europe"
				migrated = true
			}
		case 2:
			// version 2: add default catalog selections
			if s.DefaultPanelType == "" {
				s.DefaultPanelType = "Standard 300W Panel"
				migrated = true
			}
			if s.DefaultBatteryType == "" {
				s.DefaultBatteryType = "AGM"
				migrated = true
			}
		default:
			return s, false, fmt.Errorf("unknown settings version: %d", version)
		}
	}

	return s, migrated, nil
}
