// adapters.go - pluggable randomness and tracing, the seams that let
// callers swap in a deterministic byte stream for testing without
// touching the algorithm itself.
//
// To the extent possible under law, the authors have waived all
// copyright and related or neighboring rights to this software, using
// the Creative Commons "CC0" public domain dedication. See
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"io"
)

// RandomSource supplies randomness for key generation and
// encapsulation. Callers pass crypto/rand.Reader in production; tests
// substitute a fixed or counting byte stream to exercise specific
// scenarios (an all-zero stream, a stream of a single repeated byte,
// and so on).
type RandomSource interface {
	io.Reader
}

// fillRandom reads exactly len(b) bytes from src into b, treating a
// short read as fatal since none of the RandomSource contracts used by
// this package are expected to return less than requested.
func fillRandom(src RandomSource, b []byte) error {
	_, err := io.ReadFull(src, b)
	return err
}

// TraceHook observes internal events without altering behavior. It
// exists purely for debugging and test introspection; the default hook
// does nothing. A TraceHook must never be used to leak secret material
// outside of deliberately instrumented test builds.
type TraceHook interface {
	OnDecapsulationReject(ciphertext []byte)
}

type noopTraceHook struct{}

func (noopTraceHook) OnDecapsulationReject([]byte) {}

var defaultTraceHook TraceHook = noopTraceHook{}
