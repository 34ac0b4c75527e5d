// params.go - NewHope parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// SymSize is the size of seeds, symmetric keys, and the shared secret
// produced by a KEM, in bytes.
const SymSize = 32

var (
	// NewHope512 is the n=512 parameter set, aiming at roughly 128-bit
	// post-quantum security.
	//
	// This parameter set has a 896 byte PKE public key, 896 byte PKE
	// secret key, and a 1088 byte PKE cipher text (928/1888/1120 at the
	// KEM layer, once the 32-byte seed and FO-transform overhead are
	// added).
	NewHope512 = newParameterSet("NewHope512", 512)

	// NewHope1024 is the n=1024 parameter set, matching the original
	// NewHope submission's primary proposal.
	//
	// This parameter set has a 1792 byte PKE public key, 1792 byte PKE
	// secret key, and a 2176 byte PKE cipher text.
	NewHope1024 = newParameterSet("NewHope1024", 1024)
)

// ParameterSet is a NewHope parameter set, fixing the ring degree n and
// carrying every byte size and precomputed table derived from it.
type ParameterSet struct {
	name string

	n    int
	logN uint

	tables *nttTables

	packedPolySize     int
	compressedPolySize int

	pkePublicKeySize  int
	pkeSecretKeySize  int
	pkeCipherTextSize int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// N returns the ring degree of a given ParameterSet.
func (p *ParameterSet) N() int {
	return p.n
}

// PKEPublicKeySize returns the size of a PKE public key in bytes.
func (p *ParameterSet) PKEPublicKeySize() int {
	return p.pkePublicKeySize
}

// PKESecretKeySize returns the size of a PKE secret key in bytes.
func (p *ParameterSet) PKESecretKeySize() int {
	return p.pkeSecretKeySize
}

// PKECipherTextSize returns the size of a PKE cipher text in bytes.
func (p *ParameterSet) PKECipherTextSize() int {
	return p.pkeCipherTextSize
}

// PublicKeySize returns the size of a CCA-KEM public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a CCA-KEM private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a CCA-KEM cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, n int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.n = n

	for p.logN = 0; 1<<p.logN < n; p.logN++ {
	}
	if 1<<p.logN != n {
		panic("newhope: n must be a power of 2")
	}

	p.tables = buildNTTTables(n, p.logN)

	p.packedPolySize = 7 * n / 4
	p.compressedPolySize = 3 * n / 8

	// The PKE public key proper is just the packed b-hat polynomial;
	// the 32-byte seed that regenerates a-hat travels alongside it
	// (bundled in at the KEM wire-format layer below), not inside it.
	p.pkePublicKeySize = p.packedPolySize
	p.pkeSecretKeySize = p.packedPolySize
	p.pkeCipherTextSize = p.packedPolySize + p.compressedPolySize

	p.publicKeySize = p.pkePublicKeySize + SymSize
	p.secretKeySize = p.pkeSecretKeySize + p.publicKeySize + 2*SymSize
	p.cipherTextSize = p.pkeCipherTextSize + SymSize

	return &p
}
