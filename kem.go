// kem.go - the ML-KEM-768 key encapsulation mechanism: a Fujisaki-Okamoto
// transform wrapped around the IND-CPA scheme in indcpa.go, making
// decryption failures and chosen-ciphertext attacks unobservable.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"errors"
)

var (
	// ErrInvalidKeySize is returned when a byte-serialized key has the
	// wrong length for the ML-KEM-768 profile.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte-serialized
	// ciphertext has the wrong length for the ML-KEM-768 profile.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is returned when a byte-serialized private
	// key fails its embedded consistency check against the public key.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")
)

// PublicKey is an ML-KEM-768 public key.
type PublicKey struct {
	packed [indcpaPublicKeyBytes]byte
	h      [32]byte // H(packed), precomputed once at construction.
}

// Bytes returns the byte serialization of pk.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, indcpaPublicKeyBytes)
	copy(b, pk.packed[:])
	return b
}

// PublicKeyFromBytes deserializes a byte-serialized PublicKey.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != indcpaPublicKeyBytes {
		return nil, ErrInvalidKeySize
	}

	pk := new(PublicKey)
	copy(pk.packed[:], b)
	pk.h = sha3_256Sum(pk.packed[:])

	return pk, nil
}

// PrivateKey is an ML-KEM-768 private key.
type PrivateKey struct {
	PublicKey
	sk [polyVecBytes]byte
	z  [SymBytes]byte // implicit-rejection seed
}

// Bytes returns the byte serialization of sk: the packed IND-CPA
// secret key, the packed public key, H(public key), and the implicit
// rejection seed z, in that order.
func (sk *PrivateKey) Bytes() []byte {
	b := make([]byte, 0, MLKEM768.PrivateKeySize())
	b = append(b, sk.sk[:]...)
	b = append(b, sk.PublicKey.packed[:]...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z[:]...)
	return b
}

// PrivateKeyFromBytes deserializes a byte-serialized PrivateKey,
// verifying that the embedded public-key hash matches the embedded
// public key.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != MLKEM768.PrivateKeySize() {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)

	off := polyVecBytes
	copy(sk.sk[:], b[:off])

	copy(sk.PublicKey.packed[:], b[off:off+indcpaPublicKeyBytes])
	off += indcpaPublicKeyBytes

	sk.PublicKey.h = sha3_256Sum(sk.PublicKey.packed[:])
	if !bytes.Equal(sk.PublicKey.h[:], b[off:off+SymBytes]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymBytes

	copy(sk.z[:], b[off:])

	return sk, nil
}

// GenerateKeyPair generates a fresh ML-KEM-768 keypair, drawing
// randomness from rng.
func GenerateKeyPair(rng RandomSource) (*PublicKey, *PrivateKey, error) {
	var coins [SymBytes]byte
	if err := fillRandom(rng, coins[:]); err != nil {
		return nil, nil, err
	}

	pkBytes, skBytes, _ := indcpaKeyPair(coins[:])
	zeroize(coins[:])

	sk := new(PrivateKey)
	copy(sk.sk[:], skBytes)
	copy(sk.PublicKey.packed[:], pkBytes)
	sk.PublicKey.h = sha3_256Sum(sk.PublicKey.packed[:])

	if err := fillRandom(rng, sk.z[:]); err != nil {
		return nil, nil, err
	}

	return &sk.PublicKey, sk, nil
}

// KEMEncrypt encapsulates a fresh shared secret against pk, returning
// the ciphertext to send to the holder of the corresponding private
// key and the shared secret derived on this side.
func (pk *PublicKey) KEMEncrypt(rng RandomSource) (ciphertext, sharedSecret []byte, err error) {
	var m [SymBytes]byte
	if err = fillRandom(rng, m[:]); err != nil {
		return nil, nil, err
	}
	m = sha3_256Sum(m[:]) // Never release raw RNG output as the message.

	kr := sha3_512Sum(m[:], pk.h[:])
	preK, coins := kr[:SymBytes], kr[SymBytes:]

	ciphertext = make([]byte, indcpaBytes)
	indcpaEncrypt(ciphertext, m[:], pk.packed[:], coins)

	hc := sha3_256Sum(ciphertext)
	ss := make([]byte, SharedSecretBytes)
	shake256(ss, preK, hc[:])
	sharedSecret = ss

	zeroize(m[:])
	return ciphertext, sharedSecret, nil
}

// KEMDecrypt decapsulates the shared secret carried in ciphertext. A
// ciphertext that was never honestly produced, or that has been
// tampered with, never produces an error: it instead yields a
// deterministic but unpredictable shared secret via implicit
// rejection, indistinguishable from a honest decapsulation to anyone
// without sk.
func (sk *PrivateKey) KEMDecrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != indcpaBytes {
		return nil, ErrInvalidCipherTextSize
	}

	var m [SymBytes]byte
	indcpaDecrypt(m[:], ciphertext, sk.sk[:])

	kr := sha3_512Sum(m[:], sk.PublicKey.h[:])
	preK, coins := kr[:SymBytes], kr[SymBytes:]

	cmp := make([]byte, indcpaBytes)
	indcpaEncrypt(cmp, m[:], sk.PublicKey.packed[:], coins)

	fail := byte(1)
	if eqCT(ciphertext, cmp) {
		fail = 0
	}

	hc := sha3_256Sum(ciphertext)

	ssOk := make([]byte, SharedSecretBytes)
	shake256(ssOk, preK, hc[:])

	ssRej := make([]byte, SharedSecretBytes)
	shake256(ssRej, sk.z[:], ciphertext)

	cmov(ssOk, ssRej, fail)

	if fail == 1 {
		defaultTraceHook.OnDecapsulationReject(ciphertext)
	}

	zeroize(m[:])
	return ssOk, nil
}
