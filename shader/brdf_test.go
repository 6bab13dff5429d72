package shader

import (
	"testing"

	"github.com/chewxy/math32"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-4*max(1, math32.Abs(b))
}

func TestFresnelSchlickEndpoints(t *testing.T) {
	// At normal incidence the approximation is within 1e-3 of F0.
	for _, f0 := range []float32{0.04, 0.5, 0.95} {
		if got := FresnelSchlick(f0, 1); math32.Abs(got-f0) > 1e-3 {
			t.Errorf("FresnelSchlick(%v, 1) = %v, want ~%v", f0, got, f0)
		}
		if got := FresnelSchlick(f0, 0); !near(got, 1) {
			t.Errorf("FresnelSchlick(%v, 0) = %v, want 1", f0, got)
		}
	}
}

func TestDistributionGGX(t *testing.T) {
	// Roughness 1 gives a uniform distribution of 1/pi.
	for _, nh := range []float32{0, 0.3, 1} {
		if got := DistributionGGX(nh, 1); !near(got, 1/math32.Pi) {
			t.Errorf("DistributionGGX(%v, 1) = %v, want %v", nh, got, 1/math32.Pi)
		}
	}
	// Smoother surfaces peak higher at n.h = 1.
	if DistributionGGX(1, 0.2) <= DistributionGGX(1, 0.8) {
		t.Error("GGX peak does not grow as roughness decreases")
	}
}

func TestGeometrySmith(t *testing.T) {
	if got := GeometrySmith(1, 1, 0.5); !near(got, 1) {
		t.Errorf("GeometrySmith(1, 1) = %v, want 1", got)
	}
	// k = (0.5+1)^2/8 = 0.28125
	k := float32(0.28125)
	want := GeometrySchlick(0.5, k) * GeometrySchlick(0.25, k)
	if got := GeometrySmith(0.5, 0.25, 0.5); !near(got, want) {
		t.Errorf("GeometrySmith(0.5, 0.25, 0.5) = %v, want %v", got, want)
	}
	if got := GeometrySmith(0, 0.5, 0.5); got != 0 {
		t.Errorf("GeometrySmith at grazing view = %v, want 0", got)
	}
}

func TestBaseReflectanceAndGamma(t *testing.T) {
	if got := BaseReflectance(0.8, 0); !near(got, 0.04) {
		t.Errorf("dielectric F0 = %v, want 0.04", got)
	}
	if got := BaseReflectance(0.8, 1); !near(got, 0.8) {
		t.Errorf("metal F0 = %v, want albedo 0.8", got)
	}
	if got := EncodeGamma(1); !near(got, 1) {
		t.Errorf("EncodeGamma(1) = %v", got)
	}
	if got := EncodeGamma(-1); got != 0 {
		t.Errorf("EncodeGamma(-1) = %v, want 0", got)
	}
	if got := EncodeGamma(0.5); !near(got, 0.72974) {
		t.Errorf("EncodeGamma(0.5) = %v, want 0.72974", got)
	}
}
