// rand.go -- utilities that generate random values
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

func rand64() uint64 {
	var b [8]byte

	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		panic("can't read crypto/rand")
	}

	return binary.BigEndian.Uint64(b[:])
}

// NewDigestKey generates a fresh random (k0, k1) pair suitable for
// DigestWindows, for callers that want an unpredictable fingerprint key
// rather than a fixed one.
func NewDigestKey() (uint64, uint64) {
	return rand64(), rand64()
}
