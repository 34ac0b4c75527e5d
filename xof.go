// xof.go - domain-separated extendable-output hashing.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "golang.org/x/crypto/sha3"

// Domain-separation prefixes mixed into the seed-expansion XOF calls
// throughout the PKE and KEM layers, so that a byte string that is a valid
// input under one derivation can never collide with another.
const (
	xofPrefixExpandKeygenSeed = 0x01
	xofPrefixExpandEncSeed    = 0x02
	xofPrefixCCAMessage       = 0x04
	xofPrefixCCADerive        = 0x08
)

// xof fills out with SHAKE256 output absorbed from the concatenation of
// parts, used for every domain-separated derivation outside of uniform Poly
// sampling (which uses SHAKE128 via uniformPoly instead).
func xof(out []byte, parts ...[]byte) {
	h := sha3.NewShake256()
	for _, part := range parts {
		h.Write(part)
	}
	h.Read(out)
}
