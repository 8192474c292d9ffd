package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the instruction set extensions available on the host.
type Features struct {
	HasSSE2   bool
	HasSSE3   bool
	HasSSSE3  bool
	HasSSE41  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	Architecture string
}

// DetectFeatures reports the features of the running CPU.
//
// Detection uses golang.org/x/sys/cpu, which exposes CPUID flags on x86 and
// the HWCAP bits on arm64. Other architectures only report Architecture.
func DetectFeatures() Features {
	return detectFeatures(runtime.GOARCH)
}

func detectFeatures(arch string) Features {
	f := Features{Architecture: arch}

	switch arch {
	case "amd64", "386":
		f.HasSSE2 = cpu.X86.HasSSE2
		f.HasSSE3 = cpu.X86.HasSSE3
		f.HasSSSE3 = cpu.X86.HasSSSE3
		f.HasSSE41 = cpu.X86.HasSSE41
		f.HasAVX = cpu.X86.HasAVX
		f.HasAVX2 = cpu.X86.HasAVX2
		f.HasAVX512 = cpu.X86.HasAVX512
	case "arm64":
		f.HasNEON = cpu.ARM64.HasASIMD
	}

	return f
}

// String returns the detected extensions as a comma-separated list,
// or "generic" when none are present.
func (f Features) String() string {
	var names []string

	for _, ext := range []struct {
		name string
		ok   bool
	}{
		{"sse2", f.HasSSE2},
		{"sse3", f.HasSSE3},
		{"ssse3", f.HasSSSE3},
		{"sse4.1", f.HasSSE41},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	} {
		if ext.ok {
			names = append(names, ext.name)
		}
	}

	if len(names) == 0 {
		return "generic"
	}

	return strings.Join(names, ",")
}
