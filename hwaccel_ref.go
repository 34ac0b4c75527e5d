// hwaccel_ref.go - Hardware capability probe.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "github.com/klauspost/cpuid/v2"

// initHardwareAcceleration probes for an AVX2-capable CPU using cpuid, but
// there is currently no assembly NTT butterfly implementation to switch
// to: every build runs the reference Go butterflies in ntt.go regardless
// of what the probe finds. The hook exists so that dropping in an
// accelerated nttButterflyFn later is a one-file change, not a rewiring of
// every caller.
func initHardwareAcceleration() {
	isHardwareAccelerated = false
	hardwareAccelImpl = implReference
	nttButterflyFn = ctButterflies

	if cpuid.CPU.Supports(cpuid.AVX2) {
		hardwareAccelImpl = implReference + " (AVX2 available, unused: no assembly implementation wired)"
	}
}
