// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

import (
	lru "github.com/opencoff/golang-lru"
)

// RandomAccessHasher answers direct, non-rolling "what are the hashes of
// seq[pos:pos+k]?" queries, caching recently computed windows in an
// adaptive replacement cache. This suits callers that probe scattered
// positions rather than scanning a sequence left to right, where the
// rolling hashers in this package are the better fit.
type RandomAccessHasher struct {
	seq       []byte
	k         uint16
	numHashes int
	cache     *lru.ARCCache
}

// NewRandomAccessHasher constructs a cached random-access hasher over
// seq, extending each window's base hash to numHashes values (minimum
// 1). size is the number of windows retained in cache (default 128).
func NewRandomAccessHasher(seq []byte, k uint16, numHashes int, size int) (*RandomAccessHasher, error) {
	if k == 0 {
		return nil, ErrInvalidK
	}
	if len(seq) < int(k) {
		return nil, errSequenceTooShort(len(seq), k)
	}
	if numHashes < 1 {
		numHashes = 1
	}
	if size <= 0 {
		size = 128
	}
	c, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &RandomAccessHasher{seq: seq, k: k, numHashes: numHashes, cache: c}, nil
}

// HashAt returns the extended hashes of seq[pos:pos+k], skipping the
// base-hash computation entirely on a cache hit.
func (r *RandomAccessHasher) HashAt(pos int) ([]uint64, error) {
	ks := int(r.k)
	if pos < 0 || pos > len(r.seq)-ks {
		return nil, errPositionOutOfRange(pos, len(r.seq))
	}
	if v, ok := r.cache.Get(pos); ok {
		cached := v.([]uint64)
		out := make([]uint64, len(cached))
		copy(out, cached)
		return out, nil
	}

	win := r.seq[pos : pos+ks]
	fwd := baseForwardHash(win, r.k)
	rev := baseReverseHash(win, r.k)
	hashes := make([]uint64, r.numHashes)
	ExtendHashes(fwd, rev, uint32(r.k), hashes)

	cached := make([]uint64, len(hashes))
	copy(cached, hashes)
	r.cache.Add(pos, cached)
	return hashes, nil
}

// Purge discards every cached window.
func (r *RandomAccessHasher) Purge() {
	r.cache.Purge()
}
