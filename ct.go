// ct.go - constant-time helpers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// ctZeroise overwrites b with zeroes. The compare/select constant-time
// primitives live directly against crypto/subtle at their call sites in
// kem.go, matching the reference package's own usage; this is the one
// constant-time helper with no single natural call site to inline into.
func ctZeroise(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
