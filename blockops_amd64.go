//go:build amd64 && !noasm

package shortseq

import "golang.org/x/sys/cpu"

// init selects the batched block codec on CPUs that advertise BMI2, the
// instruction set family a real PEXT/PDEP-backed kernel would target. The
// batched implementation here is pure Go (see blockops.go and DESIGN.md for
// why there is no hand-written assembly kernel), so it is correct on any
// amd64 CPU; gating on HasBMI2 mirrors the teacher's
// feature-detected-dispatch idiom (simdpack.go's initSIMDSelection) rather
// than reflecting an actual hardware dependency.
func init() {
	if cpu.X86.HasBMI2 {
		encodeBlock = encodeBlockBatched
		decodeBlock = decodeBlockBatched
	}
}
