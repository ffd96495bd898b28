// cbd.go - centered binomial distribution noise sampling.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

func load32LittleEndian(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// cbd2 samples a polynomial with coefficients from a centered binomial
// distribution with parameter eta=2, given 2*n/4 = 128 bytes of
// uniformly random input. Both eta1 and eta2 are 2 in this profile, so
// a single sampler covers both.
func cbd2(p *poly, buf []byte) {
	for i := 0; i < n/8; i++ {
		t := load32LittleEndian(buf[4*i:])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j+0)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			p.coeffs[8*i+j] = a - b
		}
	}
}
