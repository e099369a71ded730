package blendfx

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lumenfx/blendfx/internal/blend"
)

// Formula selects the per-pixel transform applied by Composite.
type Formula uint8

const (
	// FormulaFreeze darkens the base by b*b/(1-a).
	FormulaFreeze Formula = iota
	// FormulaSoftMix pushes a+b through a logistic curve.
	FormulaSoftMix
	// FormulaVelvetOverlay lifts the base by ln(1+|a-b|).
	FormulaVelvetOverlay
	// FormulaColorRemoval keys out a background color. Single input.
	FormulaColorRemoval

	formulaCount
)

var formulaNames = [formulaCount]string{
	FormulaFreeze:        "freeze",
	FormulaSoftMix:       "soft-mix",
	FormulaVelvetOverlay: "velvet-overlay",
	FormulaColorRemoval:  "color-removal",
}

// Formulas returns every formula in declaration order.
func Formulas() []Formula {
	out := make([]Formula, formulaCount)
	for i := range out {
		out[i] = Formula(i)
	}
	return out
}

// String returns the formula's canonical name.
func (f Formula) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Formula(%d)", uint8(f))
	}
	return formulaNames[f]
}

// IsValid reports whether f is a known formula.
func (f Formula) IsValid() bool {
	return f < formulaCount
}

// DualInput reports whether the formula consumes an overlay stream.
func (f Formula) DualInput() bool {
	return f.IsValid() && f != FormulaColorRemoval
}

// kind maps a dual-input formula to its channel formula.
func (f Formula) kind() blend.Kind {
	switch f {
	case FormulaSoftMix:
		return blend.KindSoftMix
	case FormulaVelvetOverlay:
		return blend.KindVelvetOverlay
	default:
		return blend.KindFreeze
	}
}

// ParseFormula resolves a formula from its name. Matching is case-insensitive
// and treats '_' and ' ' like '-', so "Soft_Mix" names FormulaSoftMix.
func ParseFormula(name string) (Formula, error) {
	key := cases.Fold().String(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, n := range formulaNames {
		if n == key {
			return Formula(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown formula %q", ErrInvalidArgument, name)
}
