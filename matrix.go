// matrix.go - uniform pseudo-random matrix generation from a public seed.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// rejUniform decodes 12-bit values from buf and keeps those below q,
// writing them into r starting at index 0. It returns the number of
// coefficients produced, which may be less than len(r) if buf runs out
// first.
func rejUniform(r []int16, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(r) && pos+3 <= len(buf) {
		val0 := uint16(buf[pos]) | uint16(buf[pos+1])<<8
		val1 := uint16(buf[pos+1])>>4 | uint16(buf[pos+2])<<4
		pos += 3

		val0 &= 0x0fff
		val1 &= 0x0fff

		if val0 < q {
			r[ctr] = int16(val0)
			ctr++
		}
		if ctr < len(r) && val1 < q {
			r[ctr] = int16(val1)
			ctr++
		}
	}
	return ctr
}

// genMatrix expands seed into a k-by-k matrix of NTT-domain
// polynomials using SHAKE-128 as an XOF, rejection-sampling each entry
// independently. When transposed is false, a[i][j] is generated from
// (seed, j, i); when it is true, from (seed, i, j), so the result is the
// transpose of the matrix produced with transposed=false.
func genMatrix(seed []byte, transposed bool) [k]polyVec {
	var a [k]polyVec

	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			x := newShake128()
			if transposed {
				x.absorb(seed, []byte{byte(i), byte(j)})
			} else {
				x.absorb(seed, []byte{byte(j), byte(i)})
			}

			var buf [shake128Rate]byte
			ctr := 0
			for ctr < n {
				x.squeezeBlock(buf[:])
				ctr += rejUniform(a[i].vec[j].coeffs[ctr:n], buf[:])
			}
		}
	}

	return a
}
