// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// DigestWindows folds a sequence of emitted window hashes into a single
// siphash-2-4 digest, keyed by k0/k1. This lets a caller fingerprint an
// entire scan (e.g. to compare two sequences for identical k-mer
// content) without retaining every individual hash.
func DigestWindows(k0, k1 uint64, hashes []uint64) uint64 {
	h := siphash.New(sipKey(k0, k1))
	var buf [8]byte
	be := binary.BigEndian
	for _, v := range hashes {
		be.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// sipKey packs two uint64s into the 16-byte key siphash.New expects.
func sipKey(k0, k1 uint64) []byte {
	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[:8], k0)
	binary.BigEndian.PutUint64(key[8:], k1)
	return key
}
