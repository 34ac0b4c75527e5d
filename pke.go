// pke.go - CPA-secure public-key encryption primitive.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

import "io"

// pkePublicKey is the encoded NTT-domain "b-hat" polynomial together with
// the public seed used to regenerate "a-hat". The polynomial alone occupies
// pkePublicKeySize bytes; packed carries both, since nothing can use the
// key without the seed. h caches pkHash(packed), which the CCA KEM layer
// mixes into its message/coin derivation as a multitarget countermeasure.
type pkePublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *pkePublicKey) toBytes() []byte {
	return pk.packed
}

// pkHash derives the 32-byte public-key hash the CCA KEM layer mixes into
// its message/coin derivation, via the same domain-separated XOF used
// elsewhere rather than a plain hash function.
func pkHash(packed []byte) [32]byte {
	var h [32]byte
	xof(h[:], packed)
	return h
}

// pkeSecretKey is the encoded NTT-domain "s-hat" polynomial.
type pkeSecretKey struct {
	packed []byte
}

func (sk *pkeSecretKey) toBytes() []byte {
	return sk.packed
}

// expandSeed splits a SymSize-byte seed into a parameter seed (which
// regenerates "a-hat" via uniformPoly) and a key seed (which drives the
// centered-binomial sampling of "s-hat"/"e-hat"), via the 0x01-tagged XOF
// expansion.
func expandSeed(seed []byte) (publicSeed, noiseSeed []byte) {
	buf := make([]byte, 2*SymSize)
	xof(buf, []byte{xofPrefixExpandKeygenSeed}, seed)
	return buf[:SymSize], buf[SymSize:]
}

// pkeGenerateFromSeed deterministically derives a PKE key pair from a
// SymSize-byte seed.
func (p *ParameterSet) pkeGenerateFromSeed(seed []byte) (*pkePublicKey, *pkeSecretKey) {
	publicSeed, noiseSeed := expandSeed(seed)

	aHat := p.uniformPoly(publicSeed)
	sHat := p.samplePoly(noiseSeed, 0).ntt()
	eHat := p.samplePoly(noiseSeed, 1).ntt()

	bHat := aHat.mul(sHat).add(eHat)

	pk := &pkePublicKey{packed: make([]byte, p.publicKeySize)}
	bHat.toBytes(pk.packed[:p.packedPolySize])
	copy(pk.packed[p.packedPolySize:], publicSeed)
	pk.h = pkHash(pk.packed)

	sk := &pkeSecretKey{packed: make([]byte, p.pkeSecretKeySize)}
	sHat.toBytes(sk.packed)

	ctZeroise(noiseSeed)

	return pk, sk
}

// pkeGenerate draws a fresh seed from rng and derives a PKE key pair from
// it.
func (p *ParameterSet) pkeGenerate(rng io.Reader) (*pkePublicKey, *pkeSecretKey, error) {
	seed := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}
	pk, sk := p.pkeGenerateFromSeed(seed)
	return pk, sk, nil
}

func (p *ParameterSet) unpackPublicKey(packed []byte) (*poly, []byte) {
	bHat := newPoly(p)
	bHat.fromBytes(packed[:p.packedPolySize])
	bHat.domain, bHat.reversed = true, false
	return bHat, packed[p.packedPolySize:]
}

func (p *ParameterSet) unpackSecretKey(packed []byte) *poly {
	sHat := newPoly(p)
	sHat.fromBytes(packed)
	sHat.domain, sHat.reversed = true, false
	return sHat
}

// pkeEncrypt encrypts msg (SymSize bytes) under pk, using coins (SymSize
// bytes) as the encryption randomness.
func (p *ParameterSet) pkeEncrypt(pk *pkePublicKey, msg, coins []byte) []byte {
	bHat, publicSeed := p.unpackPublicKey(pk.packed)

	aHat := p.uniformPoly(publicSeed)
	sHatPrime := p.samplePoly(coins, 0).ntt()
	eHatPrime := p.samplePoly(coins, 1).ntt()
	ePrimePrime := p.samplePoly(coins, 2)

	uHat := aHat.mul(sHatPrime).add(eHatPrime)

	t := bHat.mul(sHatPrime).reverseBits().invNTT()
	v := t.add(ePrimePrime).add(newPoly(p).fromMessage(msg))

	ct := make([]byte, p.pkeCipherTextSize)
	uHat.toBytes(ct[:p.packedPolySize])
	v.compress(ct[p.packedPolySize:])
	return ct
}

// pkeDecrypt decrypts ct under sk, returning the SymSize-byte message.
func (p *ParameterSet) pkeDecrypt(sk *pkeSecretKey, ct []byte) []byte {
	sHat := p.unpackSecretKey(sk.packed)

	uHat := newPoly(p)
	uHat.fromBytes(ct[:p.packedPolySize])
	uHat.domain, uHat.reversed = true, false

	v := newPoly(p)
	v.decompress(ct[p.packedPolySize:])

	t := uHat.mul(sHat).reverseBits().invNTT()
	mPrime := t.sub(v)

	msg := make([]byte, SymSize)
	mPrime.toMessageNegate(msg)
	return msg
}
