// verify_test.go - constant-time comparison and conditional move.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqCTEqual(t *testing.T) {
	require := require.New(t)

	a := bytes.Repeat([]byte{0x5a}, 64)
	b := bytes.Repeat([]byte{0x5a}, 64)

	require.True(eqCT(a, b))
}

func TestEqCTDiffersAtEveryPosition(t *testing.T) {
	require := require.New(t)

	a := make([]byte, 32)
	for i := range a {
		a[i] = byte(i)
	}

	for i := range a {
		b := append([]byte{}, a...)
		b[i] ^= 0x01
		require.False(eqCT(a, b), "differing byte at index %d must be detected", i)
	}
}

func TestEqCTEmpty(t *testing.T) {
	require := require.New(t)

	require.True(eqCT(nil, nil))
}

func TestCmovSelectsXWhenOne(t *testing.T) {
	require := require.New(t)

	r := bytes.Repeat([]byte{0x00}, 32)
	x := bytes.Repeat([]byte{0xff}, 32)

	cmov(r, x, 1)
	require.Equal(x, r)
}

func TestCmovKeepsRWhenZero(t *testing.T) {
	require := require.New(t)

	r := bytes.Repeat([]byte{0x00}, 32)
	orig := append([]byte{}, r...)
	x := bytes.Repeat([]byte{0xff}, 32)

	cmov(r, x, 0)
	require.Equal(orig, r)
}

func TestCmovBothSelectorValues(t *testing.T) {
	require := require.New(t)

	r := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	x := []byte{8, 7, 6, 5, 4, 3, 2, 1}

	want0 := append([]byte{}, r...)
	r0 := append([]byte{}, r...)
	cmov(r0, x, 0)
	require.Equal(want0, r0, "b=0 must leave r untouched")

	r1 := append([]byte{}, r...)
	cmov(r1, x, 1)
	require.Equal(x, r1, "b=1 must copy x into r")
}
