// tables.go - NTT twiddle-factor tables.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// nttTables holds everything the forward and inverse transforms need for a
// given ring degree n. Every entry is derived at construction time from the
// defining relations (q, n, and a primitive 2n-th root of unity found by
// trial exponentiation) rather than transcribed from a reference table, so
// that no table entry is a hand-copied constant.
type nttTables struct {
	n    int
	logN uint

	// bitrev[i] is the bit-reversal of i over logN bits.
	bitrev []uint16

	// psiMont[i] = Montgomery(gamma^i mod q); twists a natural-order
	// polynomial into the form the butterflies expect.
	psiMont []uint16

	// psiInvMont[i] = Montgomery(gamma^-i * n^-1 mod q); undoes psiMont
	// and folds in the 1/n scaling the inverse transform needs.
	psiInvMont []uint16

	// twiddleFwd[lvl] holds, for the level with block length 1<<(lvl+1),
	// the Montgomery forms of omega^(j*n/length) for j in [0, length/2).
	twiddleFwd [][]uint16

	// twiddleInv is the same shape as twiddleFwd, but built from the
	// inverse of omega.
	twiddleInv [][]uint16
}

func modPow(base, exp, mod uint32) uint32 {
	result := uint32(1)
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = uint32((uint64(result) * uint64(base)) % uint64(mod))
		}
		base = uint32((uint64(base) * uint64(base)) % uint64(mod))
		exp >>= 1
	}
	return result
}

func modInverse(a, mod uint32) uint32 {
	return modPow(a, mod-2, mod)
}

func primeFactors(n int) []int {
	var factors []int
	m := n
	for d := 2; d*d <= m; d++ {
		if m%d == 0 {
			factors = append(factors, d)
			for m%d == 0 {
				m /= d
			}
		}
	}
	if m > 1 {
		factors = append(factors, m)
	}
	return factors
}

// findPrimitiveRootOfOrder returns an element of Z_q^* whose multiplicative
// order is exactly order, which must divide q-1.
func findPrimitiveRootOfOrder(order int) uint32 {
	if (q-1)%order != 0 {
		panic("newhope: order must divide q-1")
	}
	factors := primeFactors(order)
	for cand := uint32(2); cand < q; cand++ {
		x := modPow(cand, uint32((q-1)/order), q)
		if x == 0 || x == 1 {
			continue
		}
		ok := true
		for _, f := range factors {
			if modPow(x, uint32(order/f), q) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return x
		}
	}
	panic("newhope: no primitive root found")
}

func toMontgomery(x uint32) uint16 {
	return montgomeryReduce(r2ModQ * x)
}

func buildBitrev(n int, logN uint) []uint16 {
	tbl := make([]uint16, n)
	for i := 0; i < n; i++ {
		r := 0
		v := i
		for b := uint(0); b < logN; b++ {
			r = (r << 1) | (v & 1)
			v >>= 1
		}
		tbl[i] = uint16(r)
	}
	return tbl
}

func buildTwiddles(n int, logN uint, omega uint32) [][]uint16 {
	levels := make([][]uint16, logN)
	length := 2
	for lvl := uint(0); lvl < logN; lvl++ {
		half := length / 2
		wlen := modPow(omega, uint32(n/length), q)
		row := make([]uint16, half)
		w := uint32(1)
		for j := 0; j < half; j++ {
			row[j] = toMontgomery(w)
			w = (w * wlen) % q
		}
		levels[lvl] = row
		length *= 2
	}
	return levels
}

// buildNTTTables computes the full set of NTT constants for ring degree n.
func buildNTTTables(n int, logN uint) *nttTables {
	gamma := findPrimitiveRootOfOrder(2 * n)
	omega := modPow(gamma, 2, q)

	gammaInv := modInverse(gamma, q)
	nInv := modInverse(uint32(n)%q, q)

	psiMont := make([]uint16, n)
	psiInvMont := make([]uint16, n)

	g := uint32(1)
	gInv := uint32(1)
	for i := 0; i < n; i++ {
		psiMont[i] = toMontgomery(g)
		psiInvMont[i] = toMontgomery((uint64ModMul(gInv, nInv)))
		g = (g * gamma) % q
		gInv = (gInv * gammaInv) % q
	}

	return &nttTables{
		n:          n,
		logN:       logN,
		bitrev:     buildBitrev(n, logN),
		psiMont:    psiMont,
		psiInvMont: psiInvMont,
		twiddleFwd: buildTwiddles(n, logN, omega),
		twiddleInv: buildTwiddles(n, logN, modInverse(omega, q)),
	}
}

func uint64ModMul(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) % q)
}
