package blend

import "testing"

func TestLookup(t *testing.T) {
	for _, kind := range []Kind{KindFreeze, KindSoftMix, KindVelvetOverlay} {
		if f, ok := Lookup(kind); !ok || f == nil {
			t.Errorf("Lookup(%d) = nil, %v", kind, ok)
		}
	}
	if _, ok := Lookup(Kind(42)); ok {
		t.Error("Lookup(42) should fail")
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name             string
		base, v, opacity float32
		want             float32
	}{
		{"zero opacity keeps base", 0.2, 0.9, 0, 0.2},
		{"full opacity takes value", 0.2, 0.9, 1, 0.9},
		{"half opacity", 0.2, 0.6, 0.5, 0.4},
		{"quarter opacity", 1, 0, 0.25, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.base, tt.v, tt.opacity); !floatNear(got, tt.want, 1e-6) {
				t.Errorf("Mix(%v, %v, %v) = %v, want %v", tt.base, tt.v, tt.opacity, got, tt.want)
			}
		})
	}
}

func TestPixelAppliesFormulaPerChannel(t *testing.T) {
	r, g, b := Pixel(Freeze, 0.5, 0, 1, 0.5, 0.6, 0.3, 0, 1)
	if !floatNear(r, 0.5, 1e-6) || !floatNear(g, 0.36, 1e-6) || b != 0.3 {
		t.Errorf("Pixel(Freeze) = %v, %v, %v", r, g, b)
	}
}

func TestPixelZeroOpacityIsExactBase(t *testing.T) {
	for _, kind := range []Kind{KindFreeze, KindSoftMix, KindVelvetOverlay} {
		f, _ := Lookup(kind)
		r, g, b := Pixel(f, 0.9, 0.1, 1, 0.123, 0.456, 0.789, 2, 0)
		if r != 0.123 || g != 0.456 || b != 0.789 {
			t.Errorf("kind %d: Pixel at opacity 0 = %v, %v, %v", kind, r, g, b)
		}
	}
}
