// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package nthash

import "testing"

func TestSrolBoundaries(t *testing.T) {
	assert := newAsserter(t)
	check := func(x, want uint64) {
		assert(Srol(x) == want, "Srol(%#x): got %#x want %#x", x, Srol(x), want)
	}

	check(0x0000000000000000, 0x0000000000000000)
	check(0x0000000000000001, 0x0000000000000002)
	check(0x0000000000000002, 0x0000000000000004)
	check(0x00000000FFFFFFFF, 0x00000001FFFFFFFE)
	check(0x0000000100000000, 0x0000000000000001)
	check(0x0000000200000000, 0x0000000400000000)
	check(0x7FFFFFFFFFFFFFFF, 0xFFFFFFFDFFFFFFFF)
	check(0x8000000000000000, 0x0000000200000000)
	check(0x8000000100000001, 0x0000000200000003)
	check(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)
	check(0x0123456789ABCDEF, 0x02468ACD13579BDF)
}

func TestSrorBoundaries(t *testing.T) {
	assert := newAsserter(t)
	check := func(x, want uint64) {
		assert(Sror(x) == want, "Sror(%#x): got %#x want %#x", x, Sror(x), want)
	}

	check(0x0000000000000000, 0x0000000000000000)
	check(0x0000000000000001, 0x0000000100000000)
	check(0x0000000000000002, 0x0000000000000001)
	check(0x00000000FFFFFFFF, 0x000000017FFFFFFF)
	check(0x0000000100000000, 0x0000000080000000)
	check(0x0000000200000000, 0x8000000000000000)
	check(0x7FFFFFFFFFFFFFFF, 0xBFFFFFFFFFFFFFFF)
	check(0x8000000000000000, 0x4000000000000000)
	check(0x8000000100000001, 0x4000000180000000)
	check(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)
	check(0x0123456789ABCDEF, 0x8091A2B3C4D5E6F7)
}

func TestSrolNBoundaries(t *testing.T) {
	assert := newAsserter(t)
	check := func(x uint64, d uint, want uint64) {
		got := SrolN(x, d)
		assert(got == want, "SrolN(%#x, %d): got %#x want %#x", x, d, got, want)
	}

	check(0x00000000FFFFFFFF, 1, 0x00000001FFFFFFFE)
	check(0x0000000000000000, 32, 0x0000000000000000)
	check(0xFFFFFFFF00000000, 32, 0xFFFFFFFE80000000)
	check(0x0000000000000001, 0, 0x0000000000000001)
	check(0x0000000200000000, 33, 0x0000000800000000)
	check(0x0000000100000000, 63, 0x0000000020000000)
	check(0x8000000000000000, 63, 0x0000000200000000)
	check(0x00000000FFFFFFFF, 33, 0x00000000FFFFFFFF)
	check(0x0123456789ABCDEF, 0, 0x0123456789ABCDEF)
	check(0x0000000000000001, 1, 0x0000000000000002)
	check(0x0000000200000000, 0, 0x0000000200000000)
	check(0xFFFFFFFF00000000, 33, 0xFFFFFFFF00000000)
	check(0xFFFFFFFF00000000, 0, 0xFFFFFFFF00000000)
	check(0x0000000000000000, 0, 0x0000000000000000)
	check(0x00000000FFFFFFFF, 63, 0x00000001DFFFFFFF)
	check(0x8000000000000000, 32, 0x0000000200000000)
	check(0x0123456789ABCDEF, 63, 0x02468ACDF13579BD)
	check(0x0000000000000000, 63, 0x0000000000000000)
	check(0xFFFFFFFF00000000, 1, 0xFFFFFFFE00000001)
	check(0x0000000000000001, 63, 0x0000000040000000)
	check(0x8000000000000000, 1, 0x0000000200000000)
	check(0x0000000200000000, 63, 0x0000000400000000)
	check(0x0000000000000001, 33, 0x0000000000000001)
	check(0x0000000000000001, 32, 0x0000000100000000)
	check(0x0000000000000000, 33, 0x0000000000000000)
	check(0x0000000100000000, 0, 0x0000000100000000)
	check(0x0000000200000000, 1, 0x0000000400000000)
	check(0x0000000100000000, 1, 0x0000000000000001)
	check(0x8000000000000000, 33, 0x0000000400000000)
	check(0x0000000100000000, 33, 0x0000000100000000)
	check(0x00000000FFFFFFFF, 0, 0x00000000FFFFFFFF)
	check(0x0123456789ABCDEF, 1, 0x02468ACD13579BDF)
	check(0x0123456789ABCDEF, 33, 0x048D159989ABCDEF)
	check(0x0000000100000000, 32, 0x0000000080000000)
	check(0x0123456789ABCDEF, 32, 0x02468ACDC4D5E6F7)
	check(0x0000000000000000, 1, 0x0000000000000000)
	check(0xFFFFFFFF00000000, 63, 0xFFFFFFFE20000000)
	check(0x0000000200000000, 32, 0x0000000400000000)
	check(0x8000000000000000, 0, 0x8000000000000000)
	check(0x00000000FFFFFFFF, 32, 0x000000017FFFFFFF)
}

func TestSrolSrorInverse(t *testing.T) {
	assert := newAsserter(t)
	x := uint64(0xDEADBEEFDEADBEEF)
	for i := 0; i < 128; i++ {
		x = Srol(x)
		x = Sror(x)
	}
	assert(x == 0xDEADBEEFDEADBEEF, "Srol/Sror round trip diverged: got %#x", x)
}

// TestSrolTableAgreesWithSrolN checks SrolTable against a brute-force
// application of SrolN for every base byte present in SeedTab and a
// spread of rotation distances, since MsTab31L/MsTab33R are generated
// (not hand-transcribed) and must reproduce SrolN exactly.
func TestSrolTableAgreesWithSrolN(t *testing.T) {
	assert := newAsserter(t)
	bases := []byte{'A', 'a', 'C', 'c', 'G', 'g', 'T', 't', 'N', 'n', 0}
	for _, c := range bases {
		for d := uint(0); d < 130; d++ {
			want := SrolN(SeedTab[c], d)
			got := SrolTable(c, d)
			assert(got == want, "SrolTable(%q, %d): got %#x want %#x", c, d, got, want)
		}
	}
}
