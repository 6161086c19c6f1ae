// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

// Canonical combines a forward-strand hash and its reverse-complement
// hash into one strand-independent value. rev is computed as the
// forward hash of the reverse complement, so Canonical yields the same
// value for a k-mer and its reverse complement.
func Canonical(fwd, rev uint64) uint64 {
	return fwd + rev
}

// ExtendHashes fills hashes with the canonical hash plus (len(hashes)-1)
// further derived values, using the standard ntHash avalanche mix. k is
// the window length the hashes were computed over.
func ExtendHashes(fwd, rev uint64, k uint32, hashes []uint64) {
	if len(hashes) == 0 {
		return
	}
	base := Canonical(fwd, rev)
	hashes[0] = base
	for i := 1; i < len(hashes); i++ {
		mix := uint64(i) ^ (uint64(k) * MultiSeed)
		t := base * mix
		hashes[i] = t ^ (t >> MultiShift)
	}
}
