// sample_test.go - deterministic sampler tests.
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

func TestUniformPolyDeterministic(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)
			seed := make([]byte, SymSize)
			_, err := rand.Read(seed)
			require.NoError(err)

			a := p.uniformPoly(seed)
			b := p.uniformPoly(seed)
			require.Equal(a.coeffs, b.coeffs)
			require.True(a.domain)
			require.False(a.reversed)

			for _, c := range a.coeffs {
				require.Less(c, uint16(q))
			}
		})
	}
}

func TestUniformPolyDistinctSeeds(t *testing.T) {
	p := NewHope1024
	seed1 := make([]byte, SymSize)
	seed2 := make([]byte, SymSize)
	seed2[0] = 1

	a := p.uniformPoly(seed1)
	b := p.uniformPoly(seed2)
	require.NotEqual(t, a.coeffs, b.coeffs)
}

func TestSamplePolyDeterministicAndBounded(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)
			seed := make([]byte, SymSize)
			_, err := rand.Read(seed)
			require.NoError(err)

			a := p.samplePoly(seed, 7)
			b := p.samplePoly(seed, 7)
			require.Equal(a.coeffs, b.coeffs)
			require.False(a.domain)
			require.False(a.reversed)

			for _, c := range a.coeffs {
				// A centered-binomial sample in [-8, 8] is encoded as
				// either a small value near 0 or near q.
				ok := c <= 8 || c >= q-8
				require.True(ok, "coefficient %d out of range", c)
			}

			c := p.samplePoly(seed, 8)
			require.NotEqual(a.coeffs, c.coeffs)
		})
	}
}
