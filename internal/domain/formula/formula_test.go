package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
)

func TestRegistry_Compute(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		key      string
		inputs   []model.Quantity
		expected []model.Quantity
	}{
		{
			name:     "paint is area times coverage rate",
			key:      "PAINT",
			inputs:   []model.Quantity{{Name: "area", Value: 12.5, Unit: "m2"}, {Name: "coverageRate", Value: 0.4, Unit: "l/m2"}},
			expected: []model.Quantity{{Name: "paint", Value: 5, Unit: "l"}},
		},
		{
			name:     "pothole is volume times material cost",
			key:      "POTHOLE",
			inputs:   []model.Quantity{{Name: "volume", Value: 3, Unit: "m3"}, {Name: "materialCost", Value: 1250.55, Unit: "ZAR/m3"}},
			expected: []model.Quantity{{Name: "cost", Value: 3751.65, Unit: "ZAR"}},
		},
		{
			name:     "decimal arithmetic avoids float drift",
			key:      "PAINT",
			inputs:   []model.Quantity{{Name: "area", Value: 0.1}, {Name: "coverageRate", Value: 3}},
			expected: []model.Quantity{{Name: "paint", Value: 0.3, Unit: "l"}},
		},
		{
			name:     "rounds to two places",
			key:      "paint",
			inputs:   []model.Quantity{{Name: "area", Value: 1.005}, {Name: "coverageRate", Value: 1}},
			expected: []model.Quantity{{Name: "paint", Value: 1.01, Unit: "l"}},
		},
		{
			name:     "extra inputs are ignored",
			key:      "POTHOLE",
			inputs:   []model.Quantity{{Name: "volume", Value: 2}, {Name: "materialCost", Value: 10}, {Name: "crew", Value: 4}},
			expected: []model.Quantity{{Name: "cost", Value: 20, Unit: "ZAR"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Compute(tt.key, tt.inputs)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRegistry_Compute_Errors(t *testing.T) {
	r := Default()

	_, err := r.Compute("ASPHALT", nil)
	assert.ErrorIs(t, err, ErrUnknown)

	_, err = r.Compute("PAINT", []model.Quantity{{Name: "area", Value: 2}})
	assert.ErrorIs(t, err, ErrMissingInput)

	var missing *MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "coverageRate", missing.Input)
	assert.Equal(t, "PAINT", missing.Formula)
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(Formula{Key: "line", Output: "x"})

	f, ok := r.Lookup(" LINE ")
	assert.True(t, ok)
	assert.Equal(t, "LINE", f.Key)

	_, ok = r.Lookup("PAINT")
	assert.False(t, ok)
	assert.Equal(t, []string{"PAINT", "POTHOLE"}, Default().Keys())
}
