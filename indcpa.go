// indcpa.go - the IND-CPA-secure public-key encryption scheme that the
// KEM's Fujisaki-Okamoto transform builds on. None of this file is
// safe to expose directly: the decryption failure rate under active
// attack is what the transform in kem.go is there to hide.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// packPublicKey serializes pk as its 12-bit-packed coefficients
// followed by the seed used to regenerate the matrix A.
func packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[polyVecBytes:], seed[:SymBytes])
}

// unpackPublicKey is the inverse of packPublicKey.
func unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)
	copy(seed, packedPk[polyVecBytes:polyVecBytes+SymBytes])
}

// packCiphertext serializes a ciphertext as the du-compressed b vector
// followed by the dv-compressed v polynomial.
func packCiphertext(r []byte, b *polyVec, v *poly) {
	b.compress(r)
	v.compress(r[polyVecCompressedBytes:])
}

// unpackCiphertext is the inverse of packCiphertext.
func unpackCiphertext(b *polyVec, v *poly, c []byte) {
	b.decompress(c)
	v.decompress(c[polyVecCompressedBytes:])
}

// indcpaKeyPair generates an IND-CPA keypair using coinsIn as the
// 32-byte seed (drawn from the caller's RandomSource), returning the
// packed public and secret keys plus the public seed rho so the caller
// can fold it into the KEM's public key hash.
func indcpaKeyPair(coinsIn []byte) (pk, sk []byte, rho []byte) {
	var seedBuf [SymBytes + 1]byte
	copy(seedBuf[:SymBytes], coinsIn)
	seedBuf[SymBytes] = k

	g := sha3_512Sum(seedBuf[:SymBytes+1])
	publicSeed, noiseSeed := g[:SymBytes], g[SymBytes:]

	a := genMatrix(publicSeed, false)

	var nonce byte
	var skpv polyVec
	for i := range skpv.vec {
		skpv.vec[i].getNoise(noiseSeed, nonce)
		nonce++
	}

	var e polyVec
	for i := range e.vec {
		e.vec[i].getNoise(noiseSeed, nonce)
		nonce++
	}

	skpv.ntt()
	e.ntt()

	var pkpv polyVec
	for i := range pkpv.vec {
		pkpv.vec[i].basemulAcc(&a[i], &skpv)
		pkpv.vec[i].tomont()
	}

	pkpv.add(&pkpv, &e)
	pkpv.reduce()

	sk = make([]byte, polyVecBytes)
	skpv.toBytes(sk)

	pk = make([]byte, indcpaPublicKeyBytes)
	packPublicKey(pk, &pkpv, publicSeed)

	rho = make([]byte, SymBytes)
	copy(rho, publicSeed)

	zeroize(seedBuf[:])
	zeroizePolyVec(&skpv)
	zeroizePolyVec(&e)

	return pk, sk, rho
}

// indcpaEncrypt encrypts the 32-byte message m under pk, using coins
// as the randomness for noise sampling. It never fails.
func indcpaEncrypt(c, m, pk, coins []byte) {
	var seed [SymBytes]byte
	var pkpv polyVec
	unpackPublicKey(&pkpv, seed[:], pk)

	var kpoly poly
	kpoly.fromMsg(m)

	at := genMatrix(seed[:], true)

	var nonce byte
	var sp polyVec
	for i := range sp.vec {
		sp.vec[i].getNoise(coins, nonce)
		nonce++
	}

	var ep polyVec
	for i := range ep.vec {
		ep.vec[i].getNoise(coins, nonce)
		nonce++
	}

	var epp poly
	epp.getNoise(coins, nonce)

	sp.ntt()

	var bp polyVec
	for i := range bp.vec {
		bp.vec[i].basemulAcc(&at[i], &sp)
	}

	var v poly
	v.basemulAcc(&pkpv, &sp)

	bp.invntt()
	v.invntt()

	bp.add(&bp, &ep)
	v.add(&v, &epp)
	v.add(&v, &kpoly)

	bp.reduce()
	v.reduce()

	packCiphertext(c, &bp, &v)
}

// indcpaDecrypt recovers the 32-byte message encrypted into c under
// the secret key sk. It never fails: a tampered ciphertext simply
// yields an unrelated message, which the KEM transform detects.
func indcpaDecrypt(m, c, sk []byte) {
	var bp polyVec
	var v poly
	unpackCiphertext(&bp, &v, c)

	var skpv polyVec
	skpv.fromBytes(sk)

	bp.ntt()

	var mp poly
	mp.basemulAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)
	mp.reduce()

	mp.toMsg(m)
}
