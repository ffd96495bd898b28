// doc_test.go - package godoc examples.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/rand"
)

func Example_keyEncapsulationMechanism() {
	// Alice, step 1: Generate a key pair.
	alicePublicKey, alicePrivateKey, err := GenerateKeyPair(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Alice, step 2: Send the public key to Bob (not shown).

	// Bob, step 1: Deserialize Alice's public key from the binary encoding.
	peerPublicKey, err := PublicKeyFromBytes(alicePublicKey.Bytes())
	if err != nil {
		panic(err)
	}

	// Bob, step 2: Generate the KEM ciphertext and shared secret.
	cipherText, bobSharedSecret, err := peerPublicKey.KEMEncrypt(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Bob, step 3: Send the ciphertext to Alice (not shown).

	// Alice, step 3: Decrypt the KEM ciphertext.
	aliceSharedSecret, err := alicePrivateKey.KEMDecrypt(cipherText)
	if err != nil {
		panic(err)
	}

	// Alice and Bob have identical values for the shared secret.
	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("shared secrets mismatch")
	}
}
