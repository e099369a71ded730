package blendfx

import (
	"errors"
	"testing"
)

func TestFormulaString(t *testing.T) {
	tests := []struct {
		f    Formula
		want string
	}{
		{FormulaFreeze, "freeze"},
		{FormulaSoftMix, "soft-mix"},
		{FormulaVelvetOverlay, "velvet-overlay"},
		{FormulaColorRemoval, "color-removal"},
		{Formula(42), "Formula(42)"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Formula(%d).String() = %q, want %q", uint8(tt.f), got, tt.want)
		}
	}
}

func TestParseFormula(t *testing.T) {
	tests := []struct {
		in   string
		want Formula
	}{
		{"freeze", FormulaFreeze},
		{"FREEZE", FormulaFreeze},
		{"Soft_Mix", FormulaSoftMix},
		{" soft-mix ", FormulaSoftMix},
		{"velvet overlay", FormulaVelvetOverlay},
		{"color-removal", FormulaColorRemoval},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormula(tt.in)
			if err != nil {
				t.Fatalf("ParseFormula(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormula(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormulaUnknown(t *testing.T) {
	for _, in := range []string{"", "multiply", "freeze2"} {
		if _, err := ParseFormula(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseFormula(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestParseFormulaRoundTrip(t *testing.T) {
	for _, f := range Formulas() {
		got, err := ParseFormula(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormula(%q) = %v, %v", f.String(), got, err)
		}
	}
}

func TestFormulaDualInput(t *testing.T) {
	for _, f := range Formulas() {
		want := f != FormulaColorRemoval
		if f.DualInput() != want {
			t.Errorf("%v.DualInput() = %v, want %v", f, f.DualInput(), want)
		}
	}
	if Formula(42).DualInput() {
		t.Error("unknown formula should not be dual input")
	}
}
