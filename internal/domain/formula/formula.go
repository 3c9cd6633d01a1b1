// Package formula computes job sheet outputs from captured inputs.
//
// Arithmetic is done in decimal so that money and material quantities do not
// pick up binary floating point error; results are rounded to two places.
package formula

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
)

// Places is the number of decimal places outputs are rounded to.
const Places = 2

var (
	ErrUnknown      = errors.New("unknown formula")
	ErrMissingInput = errors.New("missing formula input")
)

// MissingInputError names the input a formula could not find.
type MissingInputError struct {
	Formula string
	Input   string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("formula %s requires input %q", e.Formula, e.Input)
}

// Unwrap lets errors.Is match ErrMissingInput.
func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// Formula multiplies its inputs into a single named output.
type Formula struct {
	Key    string
	Inputs []model.RequiredInput
	Output string
	Unit   string
}

// Registry holds the formulas job types may reference, keyed by upper-case name.
type Registry struct {
	formulas map[string]Formula
}

// NewRegistry builds a registry from fs. Later entries replace earlier ones with the same key.
func NewRegistry(fs ...Formula) *Registry {
	r := &Registry{formulas: make(map[string]Formula, len(fs))}
	for _, f := range fs {
		f.Key = strings.ToUpper(f.Key)
		r.formulas[f.Key] = f
	}
	return r
}

// Default returns the built-in roadworks formulas:
//
//	PAINT   = area * coverageRate
//	POTHOLE = volume * materialCost
func Default() *Registry {
	return NewRegistry(
		Formula{
			Key:    "PAINT",
			Inputs: []model.RequiredInput{{Name: "area", Unit: "m2"}, {Name: "coverageRate", Unit: "l/m2"}},
			Output: "paint",
			Unit:   "l",
		},
		Formula{
			Key:    "POTHOLE",
			Inputs: []model.RequiredInput{{Name: "volume", Unit: "m3"}, {Name: "materialCost", Unit: "ZAR/m3"}},
			Output: "cost",
			Unit:   "ZAR",
		},
	)
}

// Lookup returns the formula registered under key, case-insensitively.
func (r *Registry) Lookup(key string) (Formula, bool) {
	f, ok := r.formulas[strings.ToUpper(strings.TrimSpace(key))]
	return f, ok
}

// Keys lists the registered formula keys in order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.formulas))
	for k := range r.formulas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Compute evaluates the formula registered under key against inputs.
// Inputs not used by the formula are ignored.
func (r *Registry) Compute(key string, inputs []model.Quantity) ([]model.Quantity, error) {
	f, ok := r.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, key)
	}
	return f.Compute(inputs)
}

// Compute evaluates f against inputs.
func (f Formula) Compute(inputs []model.Quantity) ([]model.Quantity, error) {
	byName := make(map[string]float64, len(inputs))
	for _, in := range inputs {
		byName[in.Name] = in.Value
	}

	product := decimal.NewFromInt(1)
	for _, req := range f.Inputs {
		v, ok := byName[req.Name]
		if !ok {
			return nil, &MissingInputError{Formula: f.Key, Input: req.Name}
		}
		product = product.Mul(decimal.NewFromFloat(v))
	}

	value, _ := product.Round(Places).Float64()
	return []model.Quantity{{Name: f.Output, Value: value, Unit: f.Unit}}, nil
}
