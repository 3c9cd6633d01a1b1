package measure

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeVolume_EqualsAreaTimesDepth(t *testing.T) {
	samples := [][3]float64{
		{0, 0, 0},
		{1, 1, 1},
		{2, 3, 0.5},
		{0.3, 0.45, 0.07},
		{12.5, 4.25, 0.2},
		{1e-3, 1e3, 7},
	}

	for _, s := range samples {
		l, w, d := s[0], s[1], s[2]
		assert.Equal(t, ComputeArea(l, w)*d, ComputeVolume(l, w, d), "l=%v w=%v d=%v", l, w, d)
	}
}

func TestComputeArea(t *testing.T) {
	tests := []struct {
		name     string
		length   float64
		width    float64
		expected float64
	}{
		{name: "simple rectangle", length: 2, width: 3, expected: 6},
		{name: "zero length", length: 0, width: 17.3, expected: 0},
		{name: "zero width", length: 4.2, width: 0, expected: 0},
		{name: "negative input is still multiplied", length: -2, width: 3, expected: -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeArea(tt.length, tt.width))
		})
	}
}

func TestComputeArea_NonFiniteInputsPropagate(t *testing.T) {
	assert.True(t, math.IsNaN(ComputeArea(math.NaN(), 2)))
	assert.True(t, math.IsInf(ComputeArea(math.Inf(1), 2), 1))
}

func TestComputeMaterialMass(t *testing.T) {
	tests := []struct {
		name     string
		bags     int
		unitMass float64
		expected float64
	}{
		{name: "no bags", bags: 0, unitMass: DefaultUnitMassKg, expected: 0},
		{name: "default unit mass", bags: 4, unitMass: DefaultUnitMassKg, expected: 100},
		{name: "custom unit mass", bags: 3, unitMass: 20, expected: 60},
		{name: "fractional unit mass", bags: 2, unitMass: 12.5, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeMaterialMass(tt.bags, tt.unitMass))
		})
	}
}

func TestNewCalculator(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		expected float64
	}{
		{name: "defaults to 25kg bags", options: nil, expected: 25},
		{name: "custom unit mass", options: []Option{WithUnitMass(20)}, expected: 20},
		{name: "zero unit mass ignored", options: []Option{WithUnitMass(0)}, expected: 25},
		{name: "negative unit mass ignored", options: []Option{WithUnitMass(-5)}, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalculator(tt.options...)
			assert.Equal(t, tt.expected, c.UnitMass())
		})
	}
}

func TestCalculator_Derive(t *testing.T) {
	c := NewCalculator()

	got := c.Derive(Measurement{Length: 2, Width: 3, Depth: 0.5, BagCount: 4})

	assert.Equal(t, DerivedMetrics{Area: 6, Volume: 3, MaterialMass: 100}, got)
	assert.Equal(t, got, c.Derive(Measurement{Length: 2, Width: 3, Depth: 0.5, BagCount: 4}))
}

func TestCalculator_DeriveZeroBags(t *testing.T) {
	got := NewCalculator().Derive(Measurement{Length: 1, Width: 1, Depth: 1})

	assert.Zero(t, got.MaterialMass)
}

func TestMeasurement_Validate(t *testing.T) {
	tests := []struct {
		name      string
		m         Measurement
		wantField string
	}{
		{name: "valid", m: Measurement{Length: 2, Width: 3, Depth: 0.5, BagCount: 4}},
		{name: "zero length", m: Measurement{Length: 0, Width: 3, Depth: 0.5, BagCount: 4}, wantField: "dimensions.l"},
		{name: "negative width", m: Measurement{Length: 2, Width: -1, Depth: 0.5, BagCount: 4}, wantField: "dimensions.w"},
		{name: "NaN depth", m: Measurement{Length: 2, Width: 3, Depth: math.NaN(), BagCount: 4}, wantField: "dimensions.d"},
		{name: "infinite depth", m: Measurement{Length: 2, Width: 3, Depth: math.Inf(1), BagCount: 4}, wantField: "dimensions.d"},
		{name: "zero bags", m: Measurement{Length: 2, Width: 3, Depth: 0.5}, wantField: "numberOfBags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var domainErr *DomainInvalidError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.wantField, domainErr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}
