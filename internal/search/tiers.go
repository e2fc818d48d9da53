package search

import "slices"

// tiers lists, per tier field, the accepted values for each requested tier.
// A request matches the requested tier and every better one.
var tiers = map[string]map[string][]string{
	"laundry": {
		string(LaundryInUnit):     {string(LaundryInUnit)},
		string(LaundryInBuilding): {string(LaundryInBuilding), string(LaundryInUnit)},
	},
	"parking": {
		string(ParkingPrivate): {string(ParkingPrivate)},
		string(ParkingStreet):  {string(ParkingStreet), string(ParkingPrivate)},
	},
	"doorman": {
		string(DoormanFullTime): {string(DoormanFullTime)},
		string(DoormanPartTime): {string(DoormanPartTime), string(DoormanFullTime)},
		string(DoormanVirtual):  {string(DoormanVirtual), string(DoormanPartTime), string(DoormanFullTime)},
	},
}

// Hierarchy returns the tiers that satisfy a request for tier on field, or
// nil when field is not a tier field or tier is unknown.
func Hierarchy(field, tier string) []string {
	return slices.Clone(tiers[field][tier])
}
