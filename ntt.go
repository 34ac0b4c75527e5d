// ntt.go - negacyclic number-theoretic transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// bitreversePermute permutes c in place so that c[bitrev[i]] and c[i] are
// swapped; since bitrev is an involution, applying it twice is the
// identity.
func bitreversePermute(c []uint16, bitrev []uint16) {
	for i, j := range bitrev {
		if uint16(i) < j {
			c[i], c[j] = c[j], c[i]
		}
	}
}

// ctButterflies runs the in-place, iterative decimation-in-time butterfly
// network shared by the forward and inverse transforms; only the twiddle
// table differs between the two directions. c is expected to already be in
// bit-reversed order on entry, and is left in natural order on return.
func ctButterflies(c []uint16, n int, twiddle [][]uint16) {
	length := 2
	for lvl := 0; length <= n; lvl++ {
		half := length / 2
		row := twiddle[lvl]
		for start := 0; start < n; start += length {
			for j := 0; j < half; j++ {
				u := c[start+j]
				v := barrettReduce(montgomeryReduce(uint32(row[j]) * uint32(c[start+j+half])))
				c[start+j] = barrettReduce(u + v)
				c[start+j+half] = barrettReduce(u + 3*q - v)
			}
		}
		length *= 2
	}
}

// nttForwardCore computes the forward transform of a natural-order,
// normal-domain coefficient array in place: twist by powers of gamma,
// bit-reverse-permute, then run the butterfly network.
func nttForwardCore(c []uint16, t *nttTables) {
	for i := range c {
		c[i] = barrettReduce(montgomeryReduce(uint32(c[i]) * uint32(t.psiMont[i])))
	}
	bitreversePermute(c, t.bitrev)
	nttButterflyFn(c, t.n, t.twiddleFwd)
}

// nttInverseCore computes the inverse transform of a natural-order,
// hat-domain coefficient array in place: bit-reverse-permute, run the
// butterfly network with the inverse twiddles, then detwist by powers of
// gamma^-1 with the 1/n scaling folded in.
func nttInverseCore(c []uint16, t *nttTables) {
	bitreversePermute(c, t.bitrev)
	nttButterflyFn(c, t.n, t.twiddleInv)
	for i := range c {
		c[i] = barrettReduce(montgomeryReduce(uint32(c[i]) * uint32(t.psiInvMont[i])))
	}
}

// ntt returns the NTT of p. p must be a normal-domain polynomial, which by
// invariant is never tagged reversed.
func (p *poly) ntt() *poly {
	p.assertTag(false, false)
	r := p.clone()
	nttForwardCore(r.coeffs, r.params.tables)
	r.domain = true
	return r
}

// invNTT returns the inverse NTT of p. p must be an NTT-domain polynomial;
// it may carry either storage order, since a caller's reverseBits call
// preceding invNTT is accounted for here regardless. The result is always
// a plain, natural-order normal-domain polynomial.
func (p *poly) invNTT() *poly {
	if !p.domain {
		panic("newhope: invNTT requires an NTT-domain polynomial")
	}
	r := p.clone()
	if r.reversed {
		bitreversePermute(r.coeffs, r.params.tables.bitrev)
	}
	nttInverseCore(r.coeffs, r.params.tables)
	r.domain, r.reversed = false, false
	return r
}

// reverseBits physically permutes an NTT-domain polynomial into (or out
// of) bit-reversed storage order, toggling the reversed tag to match. It
// is only meaningful on NTT-domain polynomials: a normal-domain polynomial
// is never tagged reversed, so there is nothing for it to toggle.
func (p *poly) reverseBits() *poly {
	if !p.domain {
		panic("newhope: reverseBits requires an NTT-domain polynomial")
	}
	r := p.clone()
	bitreversePermute(r.coeffs, r.params.tables.bitrev)
	r.reversed = !r.reversed
	return r
}
