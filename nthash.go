// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

// NtHash is the standard-mode rolling hasher: a canonical rolling hash
// over contiguous k-mers that skips any window containing an
// ambiguous base.
type NtHash struct {
	seq []byte
	k   uint16
	pos int

	initialized bool
	fwdHash     uint64
	revHash     uint64
	hashes      []uint64
}

// New constructs a standard-mode hasher over seq, starting its search
// for the first valid window at pos. numHashes is the size of the
// per-window output buffer (at least 1).
func New(seq []byte, k uint16, numHashes int, pos int) (*NtHash, error) {
	if k == 0 {
		return nil, ErrInvalidK
	}
	ks := int(k)
	if len(seq) < ks {
		return nil, errSequenceTooShort(len(seq), k)
	}
	if pos > len(seq)-ks {
		return nil, errPositionOutOfRange(pos, len(seq))
	}
	if numHashes < 1 {
		numHashes = 1
	}
	return &NtHash{
		seq:    seq,
		k:      k,
		pos:    pos,
		hashes: make([]uint64, numHashes),
	}, nil
}

// K returns the window length.
func (h *NtHash) K() uint16 { return h.k }

// Pos returns the index of the current window's first base.
func (h *NtHash) Pos() int { return h.pos }

// ForwardHash returns the current forward-strand accumulator.
func (h *NtHash) ForwardHash() uint64 { return h.fwdHash }

// ReverseHash returns the current reverse-complement accumulator.
func (h *NtHash) ReverseHash() uint64 { return h.revHash }

// Hashes returns the current output buffer. The caller must not retain
// the returned slice across a subsequent Roll/RollBack.
func (h *NtHash) Hashes() []uint64 { return h.hashes }

// Roll advances the window forward by one base. It returns false on
// end-of-sequence; an ambiguous incoming base causes a jump-and-reinit
// skip past the tainted window rather than a failure.
func (h *NtHash) Roll() bool {
	if !h.initialized {
		return h.init()
	}

	ks := int(h.k)
	if h.pos >= len(h.seq)-ks {
		return false
	}

	incoming := h.seq[h.pos+ks]
	if SeedTab[incoming] == SeedN {
		h.pos += ks
		return h.init()
	}

	outgoing := h.seq[h.pos]
	h.fwdHash = nextForwardHash(h.fwdHash, h.k, outgoing, incoming)
	h.revHash = nextReverseHash(h.revHash, h.k, outgoing, incoming)
	h.pos++
	h.refill()
	return true
}

// RollBack is the symmetric backward step. It returns false at the
// sequence head (pos == 0); an ambiguous preceding base causes a
// jump-and-reinit skip, matching Roll's forward behavior.
func (h *NtHash) RollBack() bool {
	if !h.initialized {
		if !h.init() {
			return false
		}
	}
	if h.pos == 0 {
		return false
	}

	ks := int(h.k)
	incoming := h.seq[h.pos-1]
	if SeedTab[incoming] == SeedN {
		if h.pos < ks {
			h.initialized = false
			return false
		}
		h.pos -= ks
		return h.init()
	}

	outgoing := h.seq[h.pos+ks-1]
	h.fwdHash = prevForwardHash(h.fwdHash, h.k, outgoing, incoming)
	h.revHash = prevReverseHash(h.revHash, h.k, outgoing, incoming)
	h.pos--
	h.refill()
	return true
}

// Peek reports whether rolling forward would succeed, writing the
// would-be hashes into the output buffer without mutating pos, fwd or
// rev.
func (h *NtHash) Peek() bool {
	ks := int(h.k)
	if !h.initialized || h.pos >= len(h.seq)-ks {
		return false
	}
	return h.PeekChar(h.seq[h.pos+ks])
}

// PeekChar is like Peek but uses a caller-supplied incoming byte
// instead of reading seq[pos+k].
func (h *NtHash) PeekChar(incoming byte) bool {
	if !h.initialized {
		return false
	}
	if SeedTab[incoming] == SeedN {
		return false
	}
	outgoing := h.seq[h.pos]
	fwd := nextForwardHash(h.fwdHash, h.k, outgoing, incoming)
	rev := nextReverseHash(h.revHash, h.k, outgoing, incoming)
	ExtendHashes(fwd, rev, uint32(h.k), h.hashes)
	return true
}

// PeekBack is the backward analog of Peek.
func (h *NtHash) PeekBack() bool {
	if !h.initialized || h.pos == 0 {
		return false
	}
	return h.PeekBackChar(h.seq[h.pos-1])
}

// PeekBackChar is like PeekBack but uses a caller-supplied incoming
// byte instead of reading seq[pos-1].
func (h *NtHash) PeekBackChar(incoming byte) bool {
	if !h.initialized {
		return false
	}
	if SeedTab[incoming] == SeedN {
		return false
	}
	outgoing := h.seq[h.pos+int(h.k)-1]
	fwd := prevForwardHash(h.fwdHash, h.k, outgoing, incoming)
	rev := prevReverseHash(h.revHash, h.k, outgoing, incoming)
	ExtendHashes(fwd, rev, uint32(h.k), h.hashes)
	return true
}

// init scans forward from pos for the first window with no ambiguous
// base, using the rightmost ambiguous index within a rejected window
// to jump past it in one step.
func (h *NtHash) init() bool {
	ks := int(h.k)
	for h.pos <= len(h.seq)-ks {
		win := h.seq[h.pos : h.pos+ks]
		if idx, ambiguous := rightmostAmbiguous(win); ambiguous {
			h.pos += idx + 1
			continue
		}
		h.fwdHash = baseForwardHash(win, h.k)
		h.revHash = baseReverseHash(win, h.k)
		h.initialized = true
		h.refill()
		return true
	}
	h.initialized = false
	return false
}

func (h *NtHash) refill() {
	ExtendHashes(h.fwdHash, h.revHash, uint32(h.k), h.hashes)
}
