// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

// SeedNtHash computes spaced-seed hashes: for each configured mask only
// the "care" positions of the k-mer window contribute to the hash, and
// windows are recomputed from scratch rather than rolled (spec section
// 4.7), since a spaced seed's bit pattern does not admit the same
// incremental update used by the standard and blind modes.
type SeedNtHash struct {
	seq        []byte
	k          int
	numHashes  int
	seeds      [][]int
	pos        int
	hashes     []uint64
	initalised bool
}

// NewSeed constructs a spaced-seed hasher from a sequence and a set of
// '0'/'1' mask strings, one per seed. Every mask must have length k.
func NewSeed(seq []byte, seedMasks []string, numHashesPerSeed int, k uint16, startPos int) (*SeedNtHash, error) {
	if k == 0 {
		return nil, ErrInvalidK
	}
	ks := int(k)
	if len(seq) < ks {
		return nil, errSequenceTooShort(len(seq), k)
	}
	if startPos > len(seq)-ks {
		return nil, errPositionOutOfRange(startPos, len(seq))
	}

	seeds := make([][]int, len(seedMasks))
	for i, m := range seedMasks {
		care, err := parseSeedString(m, ks)
		if err != nil {
			return nil, err
		}
		seeds[i] = care
	}

	if numHashesPerSeed < 1 {
		numHashesPerSeed = 1
	}
	return &SeedNtHash{
		seq:       seq,
		k:         ks,
		numHashes: numHashesPerSeed,
		seeds:     seeds,
		pos:       startPos,
		hashes:    make([]uint64, len(seedMasks)*numHashesPerSeed),
	}, nil
}

// NewSeedFromCareIndices is an alternate constructor that bypasses mask
// parsing, taking the care positions directly. Every index in every
// seed must lie in [0, k).
func NewSeedFromCareIndices(seq []byte, seeds [][]int, numHashesPerSeed int, k uint16, startPos int) (*SeedNtHash, error) {
	ks := int(k)
	for _, care := range seeds {
		for _, idx := range care {
			if idx < 0 || idx >= ks {
				return nil, errInvalidWindowOffsets(idx, ks)
			}
		}
	}
	dummy := make([]string, len(seeds))
	blank := make([]byte, ks)
	for i := range blank {
		blank[i] = '0'
	}
	for i := range dummy {
		dummy[i] = string(blank)
	}
	h, err := NewSeed(seq, dummy, numHashesPerSeed, k, startPos)
	if err != nil {
		return nil, err
	}
	h.seeds = seeds
	return h, nil
}

// parseSeedString converts a '0'/'1' mask of length k into the list of
// positions marked '1'.
func parseSeedString(mask string, k int) ([]int, error) {
	if len(mask) != k {
		return nil, errInvalidWindowOffsets(len(mask), k)
	}
	var care []int
	for i := 0; i < len(mask); i++ {
		switch mask[i] {
		case '1':
			care = append(care, i)
		case '0':
		default:
			return nil, ErrInvalidSequence
		}
	}
	return care, nil
}

// computeSeedPair returns the forward and reverse hash of win restricted
// to the positions in care, per spec section 4.7: each care position's
// base contributes a position-dependent rotated seed, XORed together.
func computeSeedPair(win []byte, care []int, k int) (uint64, uint64) {
	var fwd, rev uint64
	for _, p := range care {
		cf := win[p]
		cr := cf ^ CPOff

		fwd ^= SrolTable(cf, uint(k-1-p))
		rev ^= SrolTable(cr, uint(p))
	}
	return fwd, rev
}

// K returns the window length.
func (h *SeedNtHash) K() int { return h.k }

// Pos returns the index of the current window's first base.
func (h *SeedNtHash) Pos() int { return h.pos }

// Hashes returns the current output buffer, seed-major: hashes for seed
// i occupy [i*numHashes : (i+1)*numHashes].
func (h *SeedNtHash) Hashes() []uint64 { return h.hashes }

// Roll advances to the next valid window, scanning forward past any
// window where a care position lands on an ambiguous base. Unlike
// original_source's seed hasher, which only performs this scan on the
// very first call, Roll here keeps scanning on every call (spec section
// 4.7 — a rejected window is "skipped exactly as in standard mode").
func (h *SeedNtHash) Roll() bool {
	if !h.initalised {
		return h.init()
	}

	for h.pos < len(h.seq)-h.k {
		h.pos++
		if h.computeCurrent() {
			return true
		}
	}
	return false
}

// computeCurrent computes every seed's hashes for the window at the
// current position, returning false (without touching h.hashes) if any
// seed's care position lands on an ambiguous base.
func (h *SeedNtHash) computeCurrent() bool {
	win := h.seq[h.pos : h.pos+h.k]
	for _, care := range h.seeds {
		for _, p := range care {
			if SeedTab[win[p]] == SeedN {
				return false
			}
		}
	}

	for i, care := range h.seeds {
		fwd, rev := computeSeedPair(win, care, h.k)
		slice := h.hashes[i*h.numHashes : (i+1)*h.numHashes]
		ExtendHashes(fwd, rev, uint32(h.k), slice)
	}
	return true
}

// init scans forward from pos for the first window where every seed's
// care positions avoid ambiguous bases.
func (h *SeedNtHash) init() bool {
	for h.pos <= len(h.seq)-h.k {
		if h.computeCurrent() {
			h.initalised = true
			return true
		}
		h.pos++
	}
	return false
}
