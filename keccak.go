// keccak.go - SHA3-256, SHA3-512, SHAKE-128, and SHAKE-256 used by the
// rest of this package, backed by golang.org/x/crypto/sha3's
// Keccak-f[1600] permutation.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// shake128Rate is the SHAKE-128 sponge's rate in bytes, used by
// genMatrix to size its rejection-sampling buffer.
const shake128Rate = 168

// xof is a streaming SHAKE-128 instance, used by genMatrix to squeeze
// rejection-sampling blocks one at a time without buffering the whole
// output stream up front.
type xof struct {
	sha3.ShakeHash
}

func newShake128() *xof {
	return &xof{sha3.NewShake128()}
}

func (x *xof) absorb(parts ...[]byte) {
	for _, p := range parts {
		x.Write(p)
	}
}

func (x *xof) squeezeBlock(out []byte) {
	x.Read(out)
}

// shake256 derives len(out) bytes of SHAKE-256 output from the
// concatenation of in.
func shake256(out []byte, in ...[]byte) {
	h := sha3.NewShake256()
	for _, p := range in {
		h.Write(p)
	}
	h.Read(out)
}

// sha3_256Sum computes the SHA3-256 digest of the concatenation of in.
func sha3_256Sum(in ...[]byte) [32]byte {
	h := sha3.New256()
	for _, p := range in {
		h.Write(p)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// sha3_512Sum computes the SHA3-512 digest of the concatenation of in.
func sha3_512Sum(in ...[]byte) [64]byte {
	h := sha3.New512()
	for _, p := range in {
		h.Write(p)
	}

	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}
