// Package emu normalizes authored dimensions (points, pixels, relative
// units) to integer EMU (English Metric Units, 1/914400 inch) and compares
// them with explicit tolerance. Doing every dimensional comparison on int64
// EMU keeps fractional points exact where float comparison would drift.
package emu

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"
)

const (
	// PerInch is the number of EMU in one inch.
	PerInch int64 = 914400
	// PerPoint is the number of EMU in one typographic point (72 per inch).
	PerPoint int64 = 12700
)

const (
	// DefaultDPI is assumed for pixel conversion unless configured otherwise.
	DefaultDPI = 96.0
	// DefaultBaseSizePt anchors relative units (em, rem, percent, ratio).
	DefaultBaseSizePt = 16.0
	// DefaultTolerance is the comparison tolerance in EMU.
	DefaultTolerance int64 = 1
)

// Dimension is an authored dimension before normalization.
type Dimension struct {
	Value float64
	Unit  Unit
}

func Pt(v float64) Dimension { return Dimension{Value: v, Unit: UnitPt} }
func Px(v float64) Dimension { return Dimension{Value: v, Unit: UnitPx} }

// String renders the dimension the way it would be authored ("12pt", "50%",
// bare number for unitless ratios).
func (d Dimension) String() string {
	num := strconv.FormatFloat(d.Value, 'f', -1, 64)
	switch d.Unit {
	case UnitUnitless:
		return num
	case UnitPercent:
		return num + "%"
	default:
		return num + d.Unit.String()
	}
}

// Converter normalizes dimensions to EMU. It is stateless after
// construction and safe for concurrent use.
type Converter struct {
	dpi  float64
	base int64 // resolved base size in EMU
	log  *zap.Logger
}

// NewConverter creates a converter for the given pixel density and base
// size. Zero dpi selects DefaultDPI, a zero base selects DefaultBaseSizePt.
// The base size must be absolute; a relative base falls back to the default.
func NewConverter(dpi float64, base Dimension, log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Converter{dpi: dpi, log: log.Named("emu")}
	if c.dpi <= 0 {
		c.dpi = DefaultDPI
	}
	if base.Value <= 0 {
		base = Pt(DefaultBaseSizePt)
	}
	if base.Unit.IsRelative() {
		c.log.Warn("Relative base size is not allowed, using default",
			zap.String("base", base.String()))
		base = Pt(DefaultBaseSizePt)
	}
	v, err := c.convert(base)
	if err != nil {
		// cannot happen for an absolute base, but keep the converter usable
		v = roundEMU(DefaultBaseSizePt * float64(PerPoint))
	}
	c.base = v
	return c
}

// DPI returns the pixel density the converter was built with.
func (c *Converter) DPI() float64 { return c.dpi }

// BaseEMU returns the base size for relative units, in EMU.
func (c *Converter) BaseEMU() int64 { return c.base }

// ToEMU converts a dimension to integer EMU. The only failure is
// non-finite input, reported as ErrNotANumber.
func (c *Converter) ToEMU(d Dimension) (int64, error) {
	if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) {
		return 0, fmt.Errorf("dimension value %v: %w", d.Value, ErrNotANumber)
	}
	return c.convert(d)
}

func (c *Converter) convert(d Dimension) (int64, error) {
	switch d.Unit {
	case UnitPt:
		return roundEMU(d.Value * float64(PerPoint)), nil
	case UnitPx:
		return roundEMU(d.Value * float64(PerInch) / c.dpi), nil
	case UnitIn:
		return roundEMU(d.Value * float64(PerInch)), nil
	case UnitCm:
		return roundEMU(d.Value * float64(PerInch) / 2.54), nil
	case UnitMm:
		return roundEMU(d.Value * float64(PerInch) / 25.4), nil
	case UnitEm, UnitRem, UnitUnitless:
		return roundEMU(d.Value * float64(c.base)), nil
	case UnitPercent:
		return roundEMU(d.Value / 100 * float64(c.base)), nil
	default:
		return 0, fmt.Errorf("unsupported unit %q: %w", d.Unit, ErrNotANumber)
	}
}

// FromEMU converts an EMU value back to a dimension in the requested unit.
// ToEMU(FromEMU(v, u)) is within 1 EMU of v for every supported unit.
func (c *Converter) FromEMU(v int64, unit Unit) (Dimension, error) {
	switch unit {
	case UnitPt:
		return Dimension{Value: float64(v) / float64(PerPoint), Unit: unit}, nil
	case UnitPx:
		return Dimension{Value: float64(v) * c.dpi / float64(PerInch), Unit: unit}, nil
	case UnitIn:
		return Dimension{Value: float64(v) / float64(PerInch), Unit: unit}, nil
	case UnitCm:
		return Dimension{Value: float64(v) * 2.54 / float64(PerInch), Unit: unit}, nil
	case UnitMm:
		return Dimension{Value: float64(v) * 25.4 / float64(PerInch), Unit: unit}, nil
	case UnitEm, UnitRem, UnitUnitless:
		return Dimension{Value: float64(v) / float64(c.base), Unit: unit}, nil
	case UnitPercent:
		return Dimension{Value: float64(v) / float64(c.base) * 100, Unit: unit}, nil
	default:
		return Dimension{}, fmt.Errorf("unsupported unit %q: %w", unit, ErrNotANumber)
	}
}

// ParseEMU parses an authored dimension string and returns its EMU value.
func (c *Converter) ParseEMU(raw string) (int64, error) {
	d, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return c.ToEMU(d)
}

// ApproxEqual compares two dimensions on their EMU form with the default
// tolerance of 1 EMU. Unconvertible input compares unequal.
func (c *Converter) ApproxEqual(a, b Dimension) bool {
	return c.ApproxEqualTol(a, b, DefaultTolerance)
}

// ApproxEqualTol compares two dimensions on their EMU form with an explicit
// tolerance.
func (c *Converter) ApproxEqualTol(a, b Dimension, tolerance int64) bool {
	av, err := c.ToEMU(a)
	if err != nil {
		return false
	}
	bv, err := c.ToEMU(b)
	if err != nil {
		return false
	}
	return WithinTolerance(av, bv, tolerance)
}

// WithinTolerance reports whether two EMU values differ by at most tolerance.
func WithinTolerance(a, b, tolerance int64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func roundEMU(v float64) int64 {
	return int64(math.Round(v))
}
