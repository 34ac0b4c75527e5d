// kem.go - NewHope CCA-secure key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key
	// is an invalid size.
	ErrInvalidKeySize = errors.New("newhope: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte
	// serialized ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("newhope: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("newhope: invalid private key")
)

// PublicKey is a NewHope CCA-secure KEM public key.
type PublicKey struct {
	pk *pkePublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.PublicKeySize() {
		return nil, ErrInvalidKeySize
	}
	packed := make([]byte, len(b))
	copy(packed, b)
	return &PublicKey{pk: &pkePublicKey{packed: packed, h: pkHash(packed)}, p: p}, nil
}

// PrivateKey is a NewHope CCA-secure KEM private key. Per the
// Fujisaki-Okamoto transform, it carries the PKE secret key, a copy of the
// matching public key (whose cached hash is mixed into the message/coin
// derivation), and a random reject seed z used to manufacture a
// pseudorandom shared secret when decapsulation's re-encryption check
// fails.
type PrivateKey struct {
	PublicKey
	sk *pkeSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = &pkeSecretKey{packed: make([]byte, p.pkeSecretKeySize)}
	copy(sk.sk.packed, b[:p.pkeSecretKeySize])

	off := p.pkeSecretKeySize
	sk.PublicKey.p = p
	sk.PublicKey.pk = &pkePublicKey{packed: make([]byte, p.publicKeySize)}
	copy(sk.PublicKey.pk.packed, b[off:off+p.publicKeySize])
	sk.PublicKey.pk.h = pkHash(sk.PublicKey.pk.packed)
	off += p.publicKeySize

	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize

	sk.z = make([]byte, SymSize)
	copy(sk.z, b[off:])

	return sk, nil
}

// GenerateKeyPair generates a private and public key parameterized with
// the given ParameterSet, reading a 64-byte pair-seed (reject seed ‖ CPA
// generation seed) from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	var pairSeed [2 * SymSize]byte
	if _, err := io.ReadFull(rng, pairSeed[:]); err != nil {
		return nil, nil, err
	}
	pk, sk := p.GenerateKeyPairFromSeed(pairSeed[:])
	ctZeroise(pairSeed[:])
	return pk, sk, nil
}

// GenerateKeyPairFromSeed is the deterministic primitive GenerateKeyPair is
// built on: the first SymSize bytes of the 64-byte seed become the
// persistent reject seed (used only on decapsulation failure), and the
// second SymSize bytes drive the underlying CPA-secure key generation.
func (p *ParameterSet) GenerateKeyPairFromSeed(seed []byte) (*PublicKey, *PrivateKey) {
	reject, cpaSeed := seed[:SymSize], seed[SymSize:2*SymSize]

	kp := new(PrivateKey)
	kp.PublicKey.pk, kp.sk = p.pkeGenerateFromSeed(cpaSeed)
	kp.PublicKey.p = p

	kp.z = make([]byte, SymSize)
	copy(kp.z, reject)

	return &kp.PublicKey, kp
}

// KEMEncrypt generates a ciphertext and shared secret via the CCA-secure
// Fujisaki-Okamoto transform applied to the PKE primitive, reading a
// 32-byte encapsulation seed from rng.
func (pk *PublicKey) KEMEncrypt(rng io.Reader) (cipherText []byte, sharedSecret []byte, err error) {
	seed := make([]byte, SymSize)
	if _, err = io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}
	cipherText, sharedSecret = pk.KEMEncryptFromSeed(seed)
	ctZeroise(seed)
	return cipherText, sharedSecret, nil
}

// KEMEncryptFromSeed is the deterministic primitive KEMEncrypt is built on.
// The seed is hashed (tagged 0x04) into the PKE plaintext message; the
// message together with the public-key hash (tagged 0x08) expands into the
// encryption coins (b1), the pre-image of the shared secret (b0), and a
// 32-byte check tag (b2) that travels alongside the PKE ciphertext. The
// shared secret is finally derived from b0 together with a hash of the
// complete ciphertext, so it depends on both the message and which exact
// bytes were transmitted.
func (pk *PublicKey) KEMEncryptFromSeed(seed []byte) (cipherText, sharedSecret []byte) {
	p := pk.p

	message := make([]byte, SymSize)
	xof(message, []byte{xofPrefixCCAMessage}, seed)

	b := make([]byte, 3*SymSize)
	xof(b, []byte{xofPrefixCCADerive}, message, pk.pk.h[:])
	b0, b1, b2 := b[:SymSize], b[SymSize:2*SymSize], b[2*SymSize:]

	c := p.pkeEncrypt(pk.pk, message, b1)

	cipherText = make([]byte, p.cipherTextSize)
	copy(cipherText[:p.pkeCipherTextSize], c)
	copy(cipherText[p.pkeCipherTextSize:], b2)

	ctHash := make([]byte, SymSize)
	xof(ctHash, cipherText)

	sharedSecret = make([]byte, SymSize)
	xof(sharedSecret, b0, ctHash)

	ctZeroise(message)
	ctZeroise(b)

	return cipherText, sharedSecret
}

// KEMDecrypt generates the shared secret for a given ciphertext via the
// CCA-secure NewHope key encapsulation mechanism.
//
// On failures, sharedSecret contains a pseudorandom value derived from z
// rather than an error: a decapsulation failure must be indistinguishable
// from success to a network attacker, so this never returns early and
// never branches on the comparison outcome. Providing a ciphertext that is
// obviously malformed (wrong length) still results in a panic.
func (sk *PrivateKey) KEMDecrypt(cipherText []byte) (sharedSecret []byte) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		panic(ErrInvalidCipherTextSize)
	}

	message := p.pkeDecrypt(sk.sk, cipherText[:p.pkeCipherTextSize])

	b := make([]byte, 3*SymSize)
	xof(b, []byte{xofPrefixCCADerive}, message, sk.PublicKey.pk.h[:])
	b0, b1, b2 := b[:SymSize], b[SymSize:2*SymSize], b[2*SymSize:]

	cmpC := p.pkeEncrypt(sk.PublicKey.pk, message, b1)

	cmpCipherText := make([]byte, p.cipherTextSize)
	copy(cmpCipherText[:p.pkeCipherTextSize], cmpC)
	copy(cmpCipherText[p.pkeCipherTextSize:], b2)

	// Constant-time: fail is 0x00 if the re-encryption reproduces the
	// exact bytes handed in, 0xff otherwise, and the reject-seed mux
	// below is a pure bitwise select on that mask.
	equal := subtle.ConstantTimeCompare(cipherText, cmpCipherText)
	failMask := byte(subtle.ConstantTimeSelect(equal, 0x00, 0xff))

	b0prime := make([]byte, SymSize)
	for i := range b0prime {
		b0prime[i] = b0[i] ^ (failMask & (sk.z[i] ^ b0[i]))
	}

	ctHash := make([]byte, SymSize)
	xof(ctHash, cipherText)

	sharedSecret = make([]byte, SymSize)
	xof(sharedSecret, b0prime, ctHash)

	ctZeroise(message)
	ctZeroise(b)
	ctZeroise(b0prime)

	return sharedSecret
}
