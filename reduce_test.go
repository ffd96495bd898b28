// reduce_test.go - invariants of the modular reduction primitives.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarrettReduceRange(t *testing.T) {
	require := require.New(t)

	for a := int32(-6 * q); a <= 6*q; a += 7 {
		r := barrettReduce(int16(a))
		require.GreaterOrEqual(int32(r), int32(-q/2-1))
		require.LessOrEqual(int32(r), int32(q/2))
		require.Equal(((a%q)+q)%q, ((int32(r)%q)+q)%q, "a=%d", a)
	}
}

func TestMontgomeryReduceCongruence(t *testing.T) {
	require := require.New(t)

	const rInv = 169 // 2^-16 mod q, i.e. the Montgomery R^-1 used here.

	for a := int32(-q * q); a <= q*q; a += 997 {
		r := montgomeryReduce(a)
		require.GreaterOrEqual(int32(r), -q)
		require.Less(int32(r), q)

		want := ((int64(a) * rInv) % q + q) % q
		got := (int64(r)%q + q) % q
		require.Equal(want, got, "a=%d", a)
	}
}

func TestCsubqIdempotent(t *testing.T) {
	require := require.New(t)

	for a := int16(0); a < 2*q; a++ {
		r := csubq(a)
		require.GreaterOrEqual(r, int16(0))
		require.Less(r, q)
		if a < q {
			require.Equal(a, r)
		} else {
			require.Equal(a-q, r)
		}
	}
}
