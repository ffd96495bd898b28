// cbd_test.go - centered binomial sampler output range.
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

func TestCBD2Range(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(30))

	buf := make([]byte, 2*n/4)
	for trial := 0; trial < 20; trial++ {
		rng.Read(buf)

		var p poly
		cbd2(&p, buf)

		for _, c := range p.coeffs {
			require.GreaterOrEqual(c, int16(-2))
			require.LessOrEqual(c, int16(2))
		}
	}
}

func TestCBD2DistinctSeedsDiffer(t *testing.T) {
	require := require.New(t)

	buf1 := make([]byte, 2*n/4)
	buf2 := make([]byte, 2*n/4)
	rand.New(rand.NewSource(31)).Read(buf1)
	rand.New(rand.NewSource(32)).Read(buf2)

	var p1, p2 poly
	cbd2(&p1, buf1)
	cbd2(&p2, buf2)

	require.NotEqual(p1.coeffs, p2.coeffs)
}
