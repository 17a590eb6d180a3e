// Package jovimag computes the vector magnetic field of a magnetized giant
// planet, calibrated for Jupiter: a spherical-harmonic internal field
// (package internal) plus an axisymmetric current-sheet field (package
// currentsheet), composed via package field, with field-line tracing via
// package trace.
//
// Most callers only need NewField, which builds the standard
// internal-plus-current-sheet composite used throughout this module.
package jovimag

import (
	"github.com/anupshinde/jovimag/currentsheet"
	"github.com/anupshinde/jovimag/field"
	"github.com/anupshinde/jovimag/internal"
)

// NewField builds the standard composite field for the named internal
// model ("JRM09" or "JRM33") truncated to degreeCap (0 for the model's
// full degree), paired with the CON2020 current-sheet preset.
func NewField(model string, degreeCap int) (field.Composite, error) {
	in, err := internal.New(model, degreeCap)
	if err != nil {
		return field.Composite{}, err
	}
	cs, err := currentsheet.New("CON2020", nil)
	if err != nil {
		return field.Composite{}, err
	}
	return field.Composite{Internal: in, CurrentSheet: cs}, nil
}
