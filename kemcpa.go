// kemcpa.go - CPA-secure key encapsulation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "io"

// CPAPublicKey is a CPA-secure KEM public key. It is the PKE public key
// verbatim; CPA security alone does not require hiding re-encryption, so
// no additional wrapping is needed over the PKE layer.
type CPAPublicKey struct {
	params *ParameterSet
	pk     *pkePublicKey
}

// CPASecretKey is a CPA-secure KEM secret key: the PKE secret key
// verbatim.
type CPASecretKey struct {
	params *ParameterSet
	sk     *pkeSecretKey
}

// Bytes returns the encoded form of the public key.
func (pk *CPAPublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// Bytes returns the encoded form of the secret key.
func (sk *CPASecretKey) Bytes() []byte {
	return sk.sk.toBytes()
}

// CPAPublicKeyFromBytes decodes a CPA-secure KEM public key.
func CPAPublicKeyFromBytes(p *ParameterSet, b []byte) (*CPAPublicKey, error) {
	if len(b) != p.PublicKeySize() {
		return nil, ErrInvalidKeySize
	}
	packed := make([]byte, len(b))
	copy(packed, b)
	return &CPAPublicKey{params: p, pk: &pkePublicKey{packed: packed}}, nil
}

// CPASecretKeyFromBytes decodes a CPA-secure KEM secret key.
func CPASecretKeyFromBytes(p *ParameterSet, b []byte) (*CPASecretKey, error) {
	if len(b) != p.PKESecretKeySize() {
		return nil, ErrInvalidKeySize
	}
	packed := make([]byte, len(b))
	copy(packed, b)
	return &CPASecretKey{params: p, sk: &pkeSecretKey{packed: packed}}, nil
}

// GenerateCPAKeyPair generates a fresh CPA-secure KEM key pair.
func (p *ParameterSet) GenerateCPAKeyPair(rng io.Reader) (*CPAPublicKey, *CPASecretKey, error) {
	pk, sk, err := p.pkeGenerate(rng)
	if err != nil {
		return nil, nil, err
	}
	return &CPAPublicKey{params: p, pk: pk}, &CPASecretKey{params: p, sk: sk}, nil
}

// EncapsulateCPA reads a 32-byte encapsulation seed from rng and derives
// the message and the message and encryption coins from it, rather than
// drawing each independently: this is what makes the whole operation
// reproducible from a single seed, for callers needing determinism (see
// EncapsulateCPAFromSeed). It offers no protection against a decapsulator
// that is handed a maliciously-modified ciphertext; see the CCA KEM for
// that.
func EncapsulateCPA(rng io.Reader, pk *CPAPublicKey) (cipherText, sharedSecret []byte, err error) {
	encSeed := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, encSeed); err != nil {
		return nil, nil, err
	}
	return EncapsulateCPAFromSeed(pk, encSeed)
}

// EncapsulateCPAFromSeed is the deterministic, allocation-light primitive
// EncapsulateCPA is built on: a 32-byte encSeed expands via a 0x02-tagged
// XOF into the plaintext message and the encryption coins, the message is
// PKE-encrypted under pk, and the shared secret is derived from the
// message alone (not the coins), so a passive observer of the ciphertext
// cannot recompute it without knowing encSeed.
func EncapsulateCPAFromSeed(pk *CPAPublicKey, encSeed []byte) (cipherText, sharedSecret []byte, err error) {
	buf := make([]byte, 2*SymSize)
	xof(buf, []byte{xofPrefixExpandEncSeed}, encSeed)
	message, noiseSeed := buf[:SymSize], buf[SymSize:]

	cipherText = pk.params.pkeEncrypt(pk.pk, message, noiseSeed)

	sharedSecret = make([]byte, SymSize)
	xof(sharedSecret, message)

	ctZeroise(buf)

	return cipherText, sharedSecret, nil
}

// DecapsulateCPA recovers the shared secret EncapsulateCPA produced for
// cipherText.
func DecapsulateCPA(sk *CPASecretKey, cipherText []byte) ([]byte, error) {
	if len(cipherText) != sk.params.PKECipherTextSize() {
		return nil, ErrInvalidCipherTextSize
	}
	message := sk.params.pkeDecrypt(sk.sk, cipherText)
	sharedSecret := make([]byte, SymSize)
	xof(sharedSecret, message)
	ctZeroise(message)
	return sharedSecret, nil
}
