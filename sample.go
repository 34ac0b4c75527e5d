// sample.go - deterministic sampling from seeds.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "golang.org/x/crypto/sha3"

// uniformRejectBound is the largest multiple of q that fits in a uint16;
// values sampled at or above it are rejected so that reducing an accepted
// value mod q yields an unbiased result.
const uniformRejectBound = (0x10000 / q) * q

// sampleBlockSize is the number of coefficients produced per XOF
// (re-)initialization in both uniformPoly and samplePoly. Reseeding per
// block, rather than streaming one XOF continuously, is what makes the
// output match the reference NewHope sampler bit-for-bit.
const sampleBlockSize = 64

// uniformPoly deterministically samples a polynomial with coefficients
// that look uniformly random over Z_q. For each 64-coefficient block it
// re-initializes SHAKE128 on seed‖blockIndex and rejection-samples its
// output, so the result matches the reference sampler exactly rather than
// merely "looking" uniform. The coefficients are produced directly in
// natural order, so the result is tagged as already being in the NTT
// domain (this is the matrix/public-value "a-hat" generator; nothing ever
// needs its normal-domain form).
func (p *ParameterSet) uniformPoly(seed []byte) *poly {
	const shake128Rate = 168

	r := newPoly(p)
	r.domain, r.reversed = true, false

	extSeed := make([]byte, len(seed)+1)
	copy(extSeed, seed)

	buf := make([]byte, shake128Rate)
	for base := 0; base < p.n; base += sampleBlockSize {
		extSeed[len(seed)] = byte(base / sampleBlockSize)

		xof := sha3.NewShake128()
		xof.Write(extSeed)

		ctr, pos := 0, len(buf)
		for ctr < sampleBlockSize {
			if pos == len(buf) {
				xof.Read(buf)
				pos = 0
			}
			val := uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)
			pos += 2
			// Reject values outside the largest multiple of q below
			// 2^16, so the reduction mod q below doesn't bias the
			// distribution.
			if val < uniformRejectBound {
				r.coeffs[base+ctr] = val % q
				ctr++
			}
		}
	}
	return r
}

// hammingWeight8 counts the set bits in the low 8 bits of v.
func hammingWeight8(v uint32) uint32 {
	v = v&0x55 + (v>>1)&0x55
	v = v&0x33 + (v>>2)&0x33
	v = v&0x0f + (v>>4)&0x0f
	return v
}

// samplePoly deterministically samples a normal-domain polynomial from a
// centered binomial distribution of variance 4. For each 64-coefficient
// block it re-initializes SHAKE256 on seed‖nonce‖blockIndex and squeezes
// exactly 128 bytes (no rejection is needed for the binomial), pairing
// consecutive bytes into Hamming-weight differences to get values in
// [-8, 8].
func (p *ParameterSet) samplePoly(seed []byte, nonce byte) *poly {
	r := newPoly(p)

	extSeed := make([]byte, len(seed)+2)
	copy(extSeed, seed)
	extSeed[len(seed)] = nonce

	buf := make([]byte, 2*sampleBlockSize)
	for base := 0; base < p.n; base += sampleBlockSize {
		extSeed[len(seed)+1] = byte(base / sampleBlockSize)

		xof := sha3.NewShake256()
		xof.Write(extSeed)
		xof.Read(buf)

		for j := 0; j < sampleBlockSize; j++ {
			a := hammingWeight8(uint32(buf[2*j]))
			b := hammingWeight8(uint32(buf[2*j+1]))
			r.coeffs[base+j] = small(int16(a) - int16(b))
		}
	}
	return r
}
