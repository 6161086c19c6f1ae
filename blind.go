// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

// BlindNtHash is the caller-driven rolling hasher: it never skips a
// window, and treats any byte whose SeedTab entry is zero ("N-like")
// as contributing zero XOR rather than aborting. The window is held in
// a fixed-size ring buffer since the caller supplies each incoming
// byte explicitly rather than the hasher reading ahead in a sequence.
type BlindNtHash struct {
	buf  []byte
	head int
	k    uint16

	fwdHash uint64
	revHash uint64
	hashes  []uint64
	pos     int // signed in spirit; may run outside [0, len(seq)]
}

// NewBlind constructs a blind hasher centered on seq[pos:pos+k].
func NewBlind(seq []byte, k uint16, numHashes int, pos int) (*BlindNtHash, error) {
	if k == 0 {
		return nil, ErrInvalidK
	}
	ks := int(k)
	if pos < 0 || len(seq) < pos+ks {
		return nil, errSequenceTooShortAt(len(seq), pos, k)
	}
	if numHashes < 1 {
		numHashes = 1
	}

	buf := make([]byte, ks)
	copy(buf, seq[pos:pos+ks])

	fwd := baseForwardHashBuf(buf, 0, k)
	rev := baseReverseHashBuf(buf, 0, k)
	hashes := make([]uint64, numHashes)
	ExtendHashes(fwd, rev, uint32(k), hashes)

	return &BlindNtHash{
		buf:     buf,
		head:    0,
		k:       k,
		fwdHash: fwd,
		revHash: rev,
		hashes:  hashes,
		pos:     pos,
	}, nil
}

// K returns the window length.
func (b *BlindNtHash) K() uint16 { return b.k }

// Pos returns the current (possibly out-of-range) window start.
func (b *BlindNtHash) Pos() int { return b.pos }

// ForwardHash returns the current forward-strand accumulator.
func (b *BlindNtHash) ForwardHash() uint64 { return b.fwdHash }

// ReverseHash returns the current reverse-complement accumulator.
func (b *BlindNtHash) ReverseHash() uint64 { return b.revHash }

// Hashes returns the current output buffer.
func (b *BlindNtHash) Hashes() []uint64 { return b.hashes }

// Roll advances the window forward by one base, appending charIn.
func (b *BlindNtHash) Roll(charIn byte) {
	idx := b.head
	charOut := b.buf[idx]
	b.buf[idx] = charIn
	if idx+1 == int(b.k) {
		b.head = 0
	} else {
		b.head = idx + 1
	}

	b.fwdHash = nextForwardHash(b.fwdHash, b.k, charOut, charIn)
	b.revHash = nextReverseHash(b.revHash, b.k, charOut, charIn)
	ExtendHashes(b.fwdHash, b.revHash, uint32(b.k), b.hashes)
	b.pos++
}

// RollBack is the symmetric backward step, prepending charIn.
func (b *BlindNtHash) RollBack(charIn byte) {
	back := b.prevSlot()
	charOut := b.buf[back]
	b.buf[back] = charIn
	b.head = back

	b.fwdHash = prevForwardHash(b.fwdHash, b.k, charOut, charIn)
	b.revHash = prevReverseHash(b.revHash, b.k, charOut, charIn)
	ExtendHashes(b.fwdHash, b.revHash, uint32(b.k), b.hashes)
	b.pos--
}

// Peek computes the hashes a forward Roll(charIn) would produce,
// writing them into out without mutating any internal state.
func (b *BlindNtHash) Peek(charIn byte, out []uint64) []uint64 {
	charOut := b.buf[b.head]
	fwd := nextForwardHash(b.fwdHash, b.k, charOut, charIn)
	rev := nextReverseHash(b.revHash, b.k, charOut, charIn)
	ExtendHashes(fwd, rev, uint32(b.k), out)
	return out
}

// PeekBack is the backward analog of Peek.
func (b *BlindNtHash) PeekBack(charIn byte, out []uint64) []uint64 {
	back := b.prevSlot()
	charOut := b.buf[back]
	fwd := prevForwardHash(b.fwdHash, b.k, charOut, charIn)
	rev := prevReverseHash(b.revHash, b.k, charOut, charIn)
	ExtendHashes(fwd, rev, uint32(b.k), out)
	return out
}

func (b *BlindNtHash) prevSlot() int {
	if b.head == 0 {
		return int(b.k) - 1
	}
	return b.head - 1
}

// baseForwardHashBuf and baseReverseHashBuf compute the initial base
// hashes over the ring buffer (one base at a time, not chunked, since
// construction happens once per hasher rather than per roll).
func baseForwardHashBuf(buf []byte, head int, k uint16) uint64 {
	ks := int(k)
	var h uint64
	for i := 0; i < ks; i++ {
		h = Srol(h)
		h ^= SeedTab[buf[(head+i)%ks]]
	}
	return h
}

func baseReverseHashBuf(buf []byte, head int, k uint16) uint64 {
	ks := int(k)
	var h uint64
	for i := 0; i < ks; i++ {
		h = Srol(h)
		h ^= SeedTab[buf[(head+ks-1-i)%ks]^CPOff]
	}
	return h
}
