package units

import "strings"

// Report unit names for speeds.
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
)

// ValidSpeedUnits contains all valid report unit names.
var ValidSpeedUnits = []string{MPS, MPH, KMPH, KPH}

var speedUnits = map[string]Unit[SpeedDim]{
	MPS:  MPerSec,
	MPH:  MiPerHour,
	KMPH: KmPerHour,
	KPH:  KmPerHour,
}

// IsValidSpeedUnit checks if the given name is a valid report unit.
// Names are case sensitive.
func IsValidSpeedUnit(name string) bool {
	_, ok := speedUnits[name]
	return ok
}

// ValidSpeedUnitsString returns a comma-separated list of valid report units for error messages.
func ValidSpeedUnitsString() string {
	return strings.Join(ValidSpeedUnits, ", ")
}

// SpeedUnit returns the unit behind a report unit name.
func SpeedUnit(name string) (Unit[SpeedDim], bool) {
	u, ok := speedUnits[name]
	return u, ok
}

// ConvertSpeed expresses v in the named report unit, defaulting to m/s for
// unknown names.
func ConvertSpeed(v Speed, target string) float64 {
	u, ok := speedUnits[target]
	if !ok {
		u = MPerSec
	}
	return v.In(u)
}

// SpeedFrom builds a speed from a value in the named report unit, treating
// unknown names as m/s.
func SpeedFrom(value float64, from string) Speed {
	u, ok := speedUnits[from]
	if !ok {
		u = MPerSec
	}
	return u.New(value)
}
