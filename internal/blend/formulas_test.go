package blend

import (
	"math"
	"testing"
)

func TestFreeze(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want float32
	}{
		{"mid gray over mid gray", 0.5, 0.5, 0.5},
		{"black overlay squares base", 0, 0.6, 0.36},
		{"bright overlay clamps", 0.9, 0.8, 1},
		{"black base stays black", 0.7, 0, 0},
		{"white overlay falls back to base", 1, 0.3, 0.3},
		{"overlay above one falls back to base", 1.5, 0.3, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Freeze(tt.a, tt.b, 0)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("Freeze(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFreezeNeverProducesNaNOrInf(t *testing.T) {
	for _, b := range []float32{0, 0.25, 0.5, 1} {
		got := Freeze(1, b, 0)
		if math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
			t.Fatalf("Freeze(1, %v) = %v", b, got)
		}
		if got != b {
			t.Errorf("Freeze(1, %v) = %v, want base", b, got)
		}
	}
}

func TestSoftMix(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float32
		intensity float32
		want      float32
	}{
		{"balanced sum intensity 1", 0.5, 0.5, 1, 0.5},
		{"balanced sum intensity 2", 0.3, 0.7, 2, 0.5},
		{"zero intensity is flat", 1, 1, 0, 0.5},
		{"bright pair", 1, 1, 1, float32(1 / (1 + math.Exp(-10)))},
		{"dark pair", 0, 0, 1, float32(1 / (1 + math.Exp(10)))},
		{"slight lift", 0.6, 0.5, 0.5, float32(1 / (1 + math.Exp(-0.5)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SoftMix(tt.a, tt.b, tt.intensity)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SoftMix(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.intensity, got, tt.want)
			}
		})
	}
}

func TestSoftMixIsSymmetric(t *testing.T) {
	for _, p := range [][2]float32{{0.1, 0.8}, {0.4, 0.45}, {0.9, 0.2}} {
		x := SoftMix(p[0], p[1], 1.3)
		y := SoftMix(p[1], p[0], 1.3)
		if x != y {
			t.Errorf("SoftMix not symmetric for %v: %v vs %v", p, x, y)
		}
	}
}

func TestVelvetOverlay(t *testing.T) {
	lift := func(a, b, intensity float64) float32 {
		return float32(b + intensity*0.1*math.Log(1+math.Abs(a-b))*(a+0.2))
	}
	tests := []struct {
		name      string
		a, b      float32
		intensity float32
		want      float32
	}{
		{"equal channels", 0.4, 0.4, 8, 0.4},
		{"equal black", 0, 0, 3, 0},
		{"bright overlay", 1, 0.2, 1, lift(1, 0.2, 1)},
		{"dark overlay", 0.1, 0.6, 4, lift(0.1, 0.6, 4)},
		{"zero intensity", 0.9, 0.1, 0, 0.1},
		{"overlay above range clamps", 2, 0.9, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VelvetOverlay(tt.a, tt.b, tt.intensity)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("VelvetOverlay(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.intensity, got, tt.want)
			}
		})
	}
}

func TestVelvetOverlayEqualChannelsIndependentOfIntensity(t *testing.T) {
	for _, intensity := range []float32{0, 0.5, 1, 4, 8} {
		for _, v := range []float32{0, 0.33, 0.5, 1} {
			if got := VelvetOverlay(v, v, intensity); got != v {
				t.Errorf("VelvetOverlay(%v, %v, %v) = %v, want %v", v, v, intensity, got, v)
			}
		}
	}
}

func floatNear(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}
