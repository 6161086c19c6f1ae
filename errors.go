// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is zero.
	ErrInvalidK = errors.New("nthash: k must be > 0")

	// ErrSequenceTooShort is returned when the sequence is shorter than k
	// (or, in blind mode, shorter than pos+k).
	ErrSequenceTooShort = errors.New("nthash: sequence too short for k")

	// ErrPositionOutOfRange is returned when the starting position leaves
	// no room for a full k-mer.
	ErrPositionOutOfRange = errors.New("nthash: start position out of range")

	// ErrInvalidSequence is returned when a spaced-seed mask contains a
	// byte other than '0' or '1'.
	ErrInvalidSequence = errors.New("nthash: mask contains characters other than '0' and '1'")

	// ErrInvalidWindowOffsets is returned when a care index falls outside
	// [0, k), or when a mask's length differs from k.
	ErrInvalidWindowOffsets = errors.New("nthash: care index exceeds k-1")
)

func errSequenceTooShort(seqLen int, k uint16) error {
	return fmt.Errorf("%w: len(seq)=%d k=%d", ErrSequenceTooShort, seqLen, k)
}

func errSequenceTooShortAt(seqLen, pos int, k uint16) error {
	return fmt.Errorf("%w: len(seq)=%d pos=%d k=%d", ErrSequenceTooShort, seqLen, pos, k)
}

func errPositionOutOfRange(pos, seqLen int) error {
	return fmt.Errorf("%w: pos=%d len(seq)=%d", ErrPositionOutOfRange, pos, seqLen)
}

func errInvalidWindowOffsets(idx, k int) error {
	return fmt.Errorf("%w: index=%d k=%d", ErrInvalidWindowOffsets, idx, k)
}
