// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostInfo fingerprints the machine a run was measured on.
type HostInfo struct {
	GoVersion string
	OS        string
	Arch      string
	CPUs      int
	MaxProcs  int
	Features  []string // SIMD features reported by the CPU, e.g. "avx2", "fma"
}

// Host returns the current machine's fingerprint.
func Host() HostInfo {
	return HostInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		MaxProcs:  runtime.GOMAXPROCS(0),
		Features:  cpuFeatures(),
	}
}

func cpuFeatures() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
	}

	return out
}
