//go:build amd64

package popcount

import "golang.org/x/sys/cpu"

func hardwareSupported() bool {
	return cpu.X86.HasPOPCNT
}
