// poly_test.go - polynomial serialization and message encoding round trips.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyBytesRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(10))

	for trial := 0; trial < 20; trial++ {
		var p, p2 poly
		p.coeffs = randPoly(rng)

		buf := make([]byte, polyBytes)
		p.toBytes(buf)
		p2.fromBytes(buf)

		want := p.reducedCopy()
		got := p2.reducedCopy()
		require.Equal(want.coeffs, got.coeffs, "trial %d", trial)
	}
}

func TestPolyCompressDecompressIdempotent(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		var p, p2 poly
		p.coeffs = randPoly(rng)

		buf := make([]byte, polyCompressedBytes)
		p.compress(buf)
		p2.decompress(buf)

		// Compression is lossy: decompressed values must round-trip
		// through a second compression to the same bytes (idempotent
		// under re-compression), which is the actual property relied on
		// by decryption correctness.
		buf2 := make([]byte, polyCompressedBytes)
		p2.compress(buf2)
		require.Equal(buf, buf2, "trial %d", trial)
	}
}

func TestPolyMsgRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(12))

	for trial := 0; trial < 20; trial++ {
		msg := make([]byte, SymBytes)
		rng.Read(msg)

		var p poly
		p.fromMsg(msg)

		out := make([]byte, SymBytes)
		p.toMsg(out)

		require.Equal(msg, out, "trial %d", trial)
	}
}

func TestPolyGetNoiseRange(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymBytes)
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	for nonce := 0; nonce < 6; nonce++ {
		var p poly
		p.getNoise(seed, byte(nonce))

		for _, c := range p.coeffs {
			require.GreaterOrEqual(c, int16(-eta1))
			require.LessOrEqual(c, int16(eta1))
		}
	}
}
