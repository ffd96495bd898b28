// Package mlkem implements the ML-KEM-768 key encapsulation mechanism
// (FIPS 203 / CRYSTALS-Kyber), a module-lattice-based KEM whose security
// rests on the hardness of the Module Learning-With-Errors problem over
// the ring Z_q[X]/(X^256 + 1), q = 3329.
//
// This implementation is a from-scratch port grounded on the public
// domain Kyber reference implementation, pinned to the single
// ML-KEM-768 parameter profile (module rank 3). It provides three
// operations: GenerateKeyPair, KEMEncrypt, and KEMDecrypt. Decryption
// failure is never observable: a correctly sized but invalid or
// tampered ciphertext yields a pseudo-random but deterministic shared
// secret via implicit rejection, rather than an error. Only a
// ciphertext of the wrong length is rejected with an error.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package mlkem
