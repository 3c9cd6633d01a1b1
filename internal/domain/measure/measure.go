// Package measure derives pothole repair quantities from raw site measurements.
package measure

import (
	"fmt"
	"math"
)

// DefaultUnitMassKg is the mass of one bag of repair material.
const DefaultUnitMassKg = 25.0

// Measurement holds the raw values captured on site.
// Dimensions are in meters.
type Measurement struct {
	Length   float64
	Width    float64
	Depth    float64
	BagCount int
}

// DerivedMetrics holds the quantities computed from a Measurement.
type DerivedMetrics struct {
	Area         float64
	Volume       float64
	MaterialMass float64
}

// ComputeArea returns length × width in square meters.
func ComputeArea(length, width float64) float64 {
	return length * width
}

// ComputeVolume returns length × width × depth in cubic meters.
func ComputeVolume(length, width, depth float64) float64 {
	return ComputeArea(length, width) * depth
}

// ComputeMaterialMass returns bags × unitMass.
func ComputeMaterialMass(bags int, unitMass float64) float64 {
	return float64(bags) * unitMass
}

// Option configures a Calculator.
type Option func(*Calculator)

// Calculator derives metrics using a configured material unit mass.
// The zero value is not usable; create one with NewCalculator.
type Calculator struct {
	unitMass float64
}

// NewCalculator creates a Calculator using DefaultUnitMassKg unless overridden.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{unitMass: DefaultUnitMassKg}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithUnitMass sets the mass of one bag. Non-positive values are ignored.
func WithUnitMass(kg float64) Option {
	return func(c *Calculator) {
		if kg > 0 && !math.IsInf(kg, 0) {
			c.unitMass = kg
		}
	}
}

// UnitMass returns the configured mass of one bag.
func (c *Calculator) UnitMass() float64 {
	return c.unitMass
}

// MaterialMass returns the material mass for the given bag count.
func (c *Calculator) MaterialMass(bags int) float64 {
	return ComputeMaterialMass(bags, c.unitMass)
}

// Derive computes all derived metrics for m. It performs no validation.
func (c *Calculator) Derive(m Measurement) DerivedMetrics {
	return DerivedMetrics{
		Area:         ComputeArea(m.Length, m.Width),
		Volume:       ComputeVolume(m.Length, m.Width, m.Depth),
		MaterialMass: c.MaterialMass(m.BagCount),
	}
}

// DomainInvalidError reports a physically meaningless measurement.
type DomainInvalidError struct {
	Field string
	Value float64
}

func (e *DomainInvalidError) Error() string {
	return fmt.Sprintf("%s must be a positive number, got %v", e.Field, e.Value)
}

// Validate rejects non-positive or non-finite dimensions and non-positive bag counts.
func (m Measurement) Validate() error {
	dims := []struct {
		field string
		value float64
	}{
		{"dimensions.l", m.Length},
		{"dimensions.w", m.Width},
		{"dimensions.d", m.Depth},
	}
	for _, d := range dims {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			return &DomainInvalidError{Field: d.field, Value: d.value}
		}
	}
	if m.BagCount <= 0 {
		return &DomainInvalidError{Field: "numberOfBags", Value: float64(m.BagCount)}
	}
	return nil
}
