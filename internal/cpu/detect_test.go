package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	// SSE2 is part of the amd64 baseline.
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Error("amd64 host reports no SSE2")
	}
}

func TestDetectFeaturesUnknownArch(t *testing.T) {
	t.Parallel()

	f := detectFeatures("riscv64")
	if f != (Features{Architecture: "riscv64"}) {
		t.Errorf("detectFeatures(riscv64) = %+v, want only Architecture set", f)
	}
}

func TestFeaturesString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Features
		want string
	}{
		{"none", Features{}, "generic"},
		{"sse2 only", Features{HasSSE2: true}, "sse2"},
		{"avx2 host", Features{HasSSE2: true, HasSSE3: true, HasAVX: true, HasAVX2: true}, "sse2,sse3,avx,avx2"},
		{"neon", Features{HasNEON: true, Architecture: "arm64"}, "neon"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
