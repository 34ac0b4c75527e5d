// determinism_test.go - seed-driven determinism and golden-path tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKEMCPAFromSeedDeterministic(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)

			genSeed := make([]byte, SymSize)
			pkA, skA := p.pkeGenerateFromSeed(genSeed)
			cpaPK := &CPAPublicKey{params: p, pk: pkA}
			cpaSK := &CPASecretKey{params: p, sk: skA}

			encSeed := make([]byte, SymSize)
			encSeed[0] = 0x01

			ct1, ss1, err := EncapsulateCPAFromSeed(cpaPK, encSeed)
			require.NoError(err)
			ct2, ss2, err := EncapsulateCPAFromSeed(cpaPK, encSeed)
			require.NoError(err)
			require.Equal(ct1, ct2)
			require.Equal(ss1, ss2)

			got, err := DecapsulateCPA(cpaSK, ct1)
			require.NoError(err)
			require.Equal(ss1, got)

			otherSeed := make([]byte, SymSize)
			otherSeed[0] = 0x02
			ct3, ss3, err := EncapsulateCPAFromSeed(cpaPK, otherSeed)
			require.NoError(err)
			require.NotEqual(ct1, ct3)
			require.NotEqual(ss1, ss3)
		})
	}
}

func TestKEMCCAFromSeedAgreement(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)

			pairSeed := make([]byte, 2*SymSize)
			pairSeed[0] = 0x02
			pk, sk := p.GenerateKeyPairFromSeed(pairSeed)

			encSeed := make([]byte, SymSize)
			encSeed[0] = 0x03

			ct, ssEnc := pk.KEMEncryptFromSeed(encSeed)
			require.Len(ct, p.CipherTextSize())
			require.Len(ssEnc, SymSize)

			ssDec := sk.KEMDecrypt(ct)
			require.Equal(ssEnc, ssDec)
		})
	}
}

func TestKEMCCAFromSeedDeterministic(t *testing.T) {
	p := NewHope512
	pairSeed := make([]byte, 2*SymSize)
	pk, _ := p.GenerateKeyPairFromSeed(pairSeed)

	encSeed := make([]byte, SymSize)
	encSeed[0] = 0x2a

	ct1, ss1 := pk.KEMEncryptFromSeed(encSeed)
	ct2, ss2 := pk.KEMEncryptFromSeed(encSeed)
	require.Equal(t, ct1, ct2)
	require.Equal(t, ss1, ss2)
}

// TestKEMCCATamperFallsBackToRejectSeed exercises the failure path:
// flipping a bit of an honest ciphertext makes decapsulation diverge from
// the encapsulator's shared secret, yields XOF(z ‖ XOF(tampered), 32), and
// does so deterministically for a fixed (secret key, tampered ciphertext)
// pair.
func TestKEMCCATamperFallsBackToRejectSeed(t *testing.T) {
	p := NewHope512
	require := require.New(t)

	pairSeed := make([]byte, 2*SymSize)
	pairSeed[0] = 0x02
	pk, sk := p.GenerateKeyPairFromSeed(pairSeed)

	encSeed := make([]byte, SymSize)
	encSeed[0] = 0x03
	ct, ssHonest := pk.KEMEncryptFromSeed(encSeed)

	tampered := make([]byte, len(ct))
	copy(tampered, ct)
	tampered[len(tampered)-1] ^= 0x01

	ss1 := sk.KEMDecrypt(tampered)
	require.NotEqual(ssHonest, ss1)

	// The re-encryption check fails, so the shared secret is derived from
	// the reject seed z in place of b0.
	ctHash := make([]byte, SymSize)
	xof(ctHash, tampered)
	want := make([]byte, SymSize)
	xof(want, sk.z, ctHash)
	require.Equal(want, ss1)

	ss2 := sk.KEMDecrypt(tampered)
	require.Equal(ss1, ss2)
}
