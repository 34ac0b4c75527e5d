// ntt_test.go - NTT round-trip and multiplicativity tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(t *testing.T, p *ParameterSet) *poly {
	t.Helper()
	r := newPoly(p)
	buf := make([]byte, 2)
	for i := range r.coeffs {
		_, err := rand.Read(buf)
		require.NoError(t, err)
		r.coeffs[i] = (uint16(buf[0]) | uint16(buf[1])<<8) % q
	}
	return r
}

// negacyclicConvolve is a direct O(n^2) reference implementation of
// multiplication in Z_q[X]/(X^n+1), used only to check the NTT-based
// pointwise product against.
func negacyclicConvolve(a, b []uint16, n int) []uint16 {
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			k := i + j
			v := uint32(a[i]) * uint32(b[j]) % q
			if k >= n {
				k -= n
				v = (q - v) % q
			}
			out[k] = (out[k] + v) % q
		}
	}
	r := make([]uint16, n)
	for i, v := range out {
		r[i] = uint16(v)
	}
	return r
}

func TestNTTRoundTrip(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)
			for i := 0; i < 10; i++ {
				a := randomPoly(t, p)
				// invNTT output is equal to a modulo q, but not
				// necessarily frozen, so compare canonical values.
				got := a.ntt().reverseBits().invNTT()
				for k := range a.coeffs {
					require.Equal(a.coeffs[k], freeze(got.coeffs[k]), "coefficient %d", k)
				}
				require.False(got.domain)
				require.False(got.reversed)

				got2 := a.ntt().invNTT()
				for k := range a.coeffs {
					require.Equal(a.coeffs[k], freeze(got2.coeffs[k]), "coefficient %d", k)
				}
			}
		})
	}
}

func TestNTTMultiplicativity(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)
			for i := 0; i < 5; i++ {
				a := randomPoly(t, p)
				b := randomPoly(t, p)

				want := negacyclicConvolve(a.coeffs, b.coeffs, p.n)

				aHat := a.ntt()
				bHat := b.ntt()
				got := aHat.mul(bHat).reverseBits().invNTT()

				for k := range want {
					require.Equal(freeze(want[k]), freeze(got.coeffs[k]), "coefficient %d", k)
				}
			}
		})
	}
}

func TestBitreversePermuteInvolution(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			a := randomPoly(t, p)
			want := append([]uint16(nil), a.coeffs...)
			bitreversePermute(a.coeffs, p.tables.bitrev)
			bitreversePermute(a.coeffs, p.tables.bitrev)
			require.Equal(t, want, a.coeffs)
		})
	}
}
