//go:build arm64

package popcount

import "golang.org/x/sys/cpu"

func hardwareSupported() bool {
	// VCNT is part of the ASIMD (NEON) extension
	return cpu.ARM64.HasASIMD
}
