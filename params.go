// params.go - ML-KEM parameterization.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymBytes is the width, in bytes, of seeds, hashes, and the message
	// that the IND-CPA scheme encrypts.
	SymBytes = 32

	// SharedSecretBytes is the width, in bytes, of the KEM shared secret.
	SharedSecretBytes = 32

	n = 256
	q = 3329

	k    = 3 // module rank: this is the ML-KEM-768 profile, and only this one.
	eta1 = 2
	eta2 = 2
	du   = 10
	dv   = 4

	polyBytes              = 12 * n / 8
	polyCompressedBytes    = dv * n / 8
	polyVecBytes           = k * polyBytes
	polyVecCompressedBytes = k * du * n / 8

	indcpaMsgBytes       = SymBytes
	indcpaPublicKeyBytes = polyVecBytes + SymBytes
	indcpaSecretKeyBytes = polyVecBytes
	indcpaBytes          = polyVecCompressedBytes + polyCompressedBytes
)

// MLKEM768 is the single supported parameter profile: module rank 3,
// aiming for security roughly equivalent to AES-192. This package
// intentionally does not support any other rank; a caller that needs a
// different security level should use a separate build, not a runtime
// switch.
var MLKEM768 = &Parameters{
	name:           "ML-KEM-768",
	publicKeySize:  indcpaPublicKeyBytes,
	secretKeySize:  indcpaSecretKeyBytes + indcpaPublicKeyBytes + 2*SymBytes,
	cipherTextSize: indcpaBytes,
}

// Parameters describes the byte sizes of the keys and ciphertext produced
// by this package's fixed ML-KEM-768 profile.
type Parameters struct {
	name string

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of the parameter profile.
func (p *Parameters) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public key in bytes.
func (p *Parameters) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *Parameters) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *Parameters) CipherTextSize() int {
	return p.cipherTextSize
}
