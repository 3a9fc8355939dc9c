// Package units converts between user-facing unit systems and the fixed
// base representation used by the calculation engine: millimeters for
// lengths, cubic millimeters for volumes. Every conversion is a pure
// multiplicative factor.
package units

// System selects the display unit family.
type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

// LengthUnit identifies a length display unit.
type LengthUnit string

const (
	Millimeters LengthUnit = "mm"
	Centimeters LengthUnit = "cm"
	Meters      LengthUnit = "m"
	Inches      LengthUnit = "in"
	Feet        LengthUnit = "ft"
)

// VolumeUnit identifies a volume display unit.
type VolumeUnit string

const (
	CubicMillimeters VolumeUnit = "mm3"
	Milliliters      VolumeUnit = "ml"
	Liters           VolumeUnit = "l"
	CubicMeters      VolumeUnit = "m3"
	CubicInches      VolumeUnit = "in3"
	FluidOunces      VolumeUnit = "floz"
	Quarts           VolumeUnit = "qt"
	Gallons          VolumeUnit = "gal"
)

// Standard conversion constants.
const (
	mmPerInch = 25.4
	mmPerFoot = 12 * mmPerInch

	mm3PerCubicInch = mmPerInch * mmPerInch * mmPerInch

	// US gallon = 231 cubic inches exactly.
	mm3PerGallon     = 231 * mm3PerCubicInch
	mm3PerQuart      = mm3PerGallon / 4
	mm3PerFluidOunce = mm3PerGallon / 128

	mm3PerLiter = 1e6
)

// lengthFactors maps each unit to its size in millimeters.
var lengthFactors = map[LengthUnit]float64{
	Millimeters: 1,
	Centimeters: 10,
	Meters:      1000,
	Inches:      mmPerInch,
	Feet:        mmPerFoot,
}

// volumeFactors maps each unit to its size in cubic millimeters.
var volumeFactors = map[VolumeUnit]float64{
	CubicMillimeters: 1,
	Milliliters:      1000,
	Liters:           mm3PerLiter,
	CubicMeters:      1e9,
	CubicInches:      mm3PerCubicInch,
	FluidOunces:      mm3PerFluidOunce,
	Quarts:           mm3PerQuart,
	Gallons:          mm3PerGallon,
}

// ToBaseLength converts a value in the given unit to millimeters.
func ToBaseLength(value float64, unit LengthUnit) float64 {
	return value * lengthFactor(unit)
}

// FromBaseLength converts millimeters to a value in the given unit.
func FromBaseLength(mm float64, unit LengthUnit) float64 {
	return mm / lengthFactor(unit)
}

// ConvertVolume converts cubic millimeters to a value in the given unit.
func ConvertVolume(mm3 float64, unit VolumeUnit) float64 {
	return mm3 / volumeFactor(unit)
}

// An unrecognized unit passes through at factor 1. That never happens with
// units from this package; if a caller sees it, the caller's unit wiring is
// wrong.
func lengthFactor(unit LengthUnit) float64 {
	if f, ok := lengthFactors[unit]; ok {
		return f
	}
	return 1
}

func volumeFactor(unit VolumeUnit) float64 {
	if f, ok := volumeFactors[unit]; ok {
		return f
	}
	return 1
}

// SmartVolumeUnit picks the most readable display unit for a capacity:
// fluid ounces / quarts / gallons for imperial, milliliters / liters / cubic
// meters for metric, switching at the thresholds where the smaller unit
// becomes unwieldy.
func SmartVolumeUnit(mm3 float64, system System) VolumeUnit {
	if system == Imperial {
		switch {
		case mm3 < 0.25*mm3PerGallon:
			return FluidOunces
		case mm3 < mm3PerGallon:
			return Quarts
		default:
			return Gallons
		}
	}
	switch {
	case mm3 < 0.1*mm3PerLiter:
		return Milliliters
	case mm3 < 1000*mm3PerLiter:
		return Liters
	default:
		return CubicMeters
	}
}

// LengthForSystem returns the default length entry unit for a system.
func LengthForSystem(system System) LengthUnit {
	if system == Imperial {
		return Inches
	}
	return Millimeters
}

// Label returns the display suffix for a length unit.
func (u LengthUnit) Label() string {
	switch u {
	case Inches:
		return "in"
	case Feet:
		return "ft"
	case Centimeters:
		return "cm"
	case Meters:
		return "m"
	default:
		return "mm"
	}
}

// Label returns the display suffix for a volume unit.
func (u VolumeUnit) Label() string {
	switch u {
	case Milliliters:
		return "mL"
	case Liters:
		return "L"
	case CubicMeters:
		return "m³"
	case CubicInches:
		return "in³"
	case FluidOunces:
		return "fl oz"
	case Quarts:
		return "qt"
	case Gallons:
		return "gal"
	default:
		return "mm³"
	}
}
