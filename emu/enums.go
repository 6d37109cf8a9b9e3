package emu

// Units a dimension may be authored in. Absolute units convert directly,
// relative ones (em, rem, percent, unitless ratio) scale the converter's
// base size.
// ENUM(unitless, pt, px, em, rem, percent, in, cm, mm)
type Unit int

// IsRelative reports whether conversion of the unit depends on the base size.
func (u Unit) IsRelative() bool {
	switch u {
	case UnitEm, UnitRem, UnitPercent, UnitUnitless:
		return true
	default:
		return false
	}
}
