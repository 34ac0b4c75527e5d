// pke_test.go - PKE primitive correctness tests.
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

func TestPKERoundTrip(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)

			pk, sk, err := p.pkeGenerate(rand.Reader)
			require.NoError(err)
			require.Len(pk.packed, p.publicKeySize)
			require.Len(sk.packed, p.pkeSecretKeySize)

			for i := 0; i < nTests; i++ {
				msg := make([]byte, SymSize)
				_, err := rand.Read(msg)
				require.NoError(err)

				coins := make([]byte, SymSize)
				_, err = rand.Read(coins)
				require.NoError(err)

				ct := p.pkeEncrypt(pk, msg, coins)
				require.Len(ct, p.pkeCipherTextSize)

				got := p.pkeDecrypt(sk, ct)
				require.Equal(msg, got)
			}
		})
	}
}

func TestPKEWrongKeyFails(t *testing.T) {
	p := NewHope1024
	require := require.New(t)

	pkA, _, err := p.pkeGenerate(rand.Reader)
	require.NoError(err)
	_, skB, err := p.pkeGenerate(rand.Reader)
	require.NoError(err)

	msg := make([]byte, SymSize)
	_, err = rand.Read(msg)
	require.NoError(err)
	coins := make([]byte, SymSize)
	_, err = rand.Read(coins)
	require.NoError(err)

	ct := p.pkeEncrypt(pkA, msg, coins)
	got := p.pkeDecrypt(skB, ct)
	require.NotEqual(msg, got)
}
