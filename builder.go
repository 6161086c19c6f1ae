// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

// Builder assembles a standard-mode NtHash with a fluent, chainable
// API, mirroring the Add-then-Freeze shape of this package's CHD
// ancestor: set the fields that matter, then call Finish to validate
// and produce an Iterator.
type Builder struct {
	seq       []byte
	k         uint16
	numHashes int
	pos       int
}

// NewBuilder starts building a standard-mode hasher over seq.
func NewBuilder(seq []byte) *Builder {
	return &Builder{seq: seq, numHashes: 1}
}

// K sets the k-mer size.
func (b *Builder) K(k uint16) *Builder {
	b.k = k
	return b
}

// NumHashes sets the number of hashes emitted per window.
func (b *Builder) NumHashes(n int) *Builder {
	b.numHashes = n
	return b
}

// Pos sets the starting position in the sequence.
func (b *Builder) Pos(pos int) *Builder {
	b.pos = pos
	return b
}

// Finish validates the configuration and returns an Iterator.
func (b *Builder) Finish() (*Iterator, error) {
	h, err := New(b.seq, b.k, b.numHashes, b.pos)
	if err != nil {
		return nil, err
	}
	return &Iterator{hasher: h}, nil
}

// Iterator walks valid windows of a standard-mode hasher, yielding
// (pos, hashes) pairs via Next.
type Iterator struct {
	hasher *NtHash
	done   bool
}

// Next advances to the next valid window. It returns false once the
// sequence is exhausted; subsequent calls continue to return false.
func (it *Iterator) Next() ([]uint64, int, bool) {
	if it.done {
		return nil, 0, false
	}
	if !it.hasher.Roll() {
		it.done = true
		return nil, 0, false
	}
	out := make([]uint64, len(it.hasher.Hashes()))
	copy(out, it.hasher.Hashes())
	return out, it.hasher.Pos(), true
}

// BlindBuilder assembles a BlindNtHash that drives itself forward over
// a full backing sequence, the way original_source's
// BlindNtHashBuilder/BlindNtHashIter pair is exercised in its
// regression tests: construction centers the window at Pos, and the
// returned iterator feeds each subsequent byte of seq to Roll.
type BlindBuilder struct {
	seq       []byte
	k         uint16
	numHashes int
	pos       int
}

// NewBlindBuilder starts building a blind hasher over seq.
func NewBlindBuilder(seq []byte) *BlindBuilder {
	return &BlindBuilder{seq: seq, numHashes: 1}
}

// K sets the k-mer size.
func (b *BlindBuilder) K(k uint16) *BlindBuilder {
	b.k = k
	return b
}

// NumHashes sets the number of hashes emitted per window.
func (b *BlindBuilder) NumHashes(n int) *BlindBuilder {
	b.numHashes = n
	return b
}

// Pos sets the starting position in the sequence.
func (b *BlindBuilder) Pos(pos int) *BlindBuilder {
	b.pos = pos
	return b
}

// Finish validates the configuration and returns a BlindIterator that
// first yields the already-computed initial window, then feeds
// seq[pos+k:] to the hasher one byte at a time.
func (b *BlindBuilder) Finish() (*BlindIterator, error) {
	h, err := NewBlind(b.seq, b.k, b.numHashes, b.pos)
	if err != nil {
		return nil, err
	}
	return &BlindIterator{hasher: h, seq: b.seq, next: b.pos + int(b.k)}, nil
}

// BlindIterator drives a BlindNtHash forward over the remainder of the
// backing sequence supplied to BlindBuilder.
type BlindIterator struct {
	hasher  *BlindNtHash
	seq     []byte
	next    int
	started bool
	done    bool
}

// Next returns the hasher's current (pos, hashes) on its first call
// without rolling, then feeds the next byte of the backing sequence to
// the hasher and rolls on every subsequent call. It returns false once
// the backing sequence is exhausted.
func (it *BlindIterator) Next() ([]uint64, int, bool) {
	if it.done {
		return nil, 0, false
	}
	if !it.started {
		it.started = true
	} else {
		if it.next >= len(it.seq) {
			it.done = true
			return nil, 0, false
		}
		it.hasher.Roll(it.seq[it.next])
		it.next++
	}

	out := make([]uint64, len(it.hasher.Hashes()))
	copy(out, it.hasher.Hashes())
	return out, it.hasher.Pos(), true
}

// SeedBuilder assembles a SeedNtHash with a fluent, chainable API.
type SeedBuilder struct {
	seq       []byte
	k         uint16
	masks     []string
	numHashes int
	pos       int
}

// NewSeedBuilder starts building a spaced-seed hasher over seq.
func NewSeedBuilder(seq []byte) *SeedBuilder {
	return &SeedBuilder{seq: seq, numHashes: 1}
}

// K sets the k-mer size.
func (b *SeedBuilder) K(k uint16) *SeedBuilder {
	b.k = k
	return b
}

// Masks sets the spaced-seed masks, one '0'/'1' string per seed.
func (b *SeedBuilder) Masks(masks []string) *SeedBuilder {
	b.masks = masks
	return b
}

// NumHashes sets the number of hashes emitted per seed per window.
func (b *SeedBuilder) NumHashes(n int) *SeedBuilder {
	b.numHashes = n
	return b
}

// Pos sets the starting position in the sequence.
func (b *SeedBuilder) Pos(pos int) *SeedBuilder {
	b.pos = pos
	return b
}

// Finish validates the configuration and returns a SeedIterator.
func (b *SeedBuilder) Finish() (*SeedIterator, error) {
	h, err := NewSeed(b.seq, b.masks, b.numHashes, b.k, b.pos)
	if err != nil {
		return nil, err
	}
	return &SeedIterator{hasher: h}, nil
}

// SeedIterator walks valid windows of a spaced-seed hasher.
type SeedIterator struct {
	hasher *SeedNtHash
	done   bool
}

// Next advances to the next valid window.
func (it *SeedIterator) Next() ([]uint64, int, bool) {
	if it.done {
		return nil, 0, false
	}
	if !it.hasher.Roll() {
		it.done = true
		return nil, 0, false
	}
	out := make([]uint64, len(it.hasher.Hashes()))
	copy(out, it.hasher.Hashes())
	return out, it.hasher.Pos(), true
}
