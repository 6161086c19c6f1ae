// main.go -- command line driver for the nthash rolling hasher
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

// nthash reads a nucleotide sequence (from a file or stdin) and prints
// the canonical ntHash of every valid k-mer window, one per line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencoff/go-nthash"

	flag "github.com/opencoff/pflag"
)

func main() {
	var k uint
	var numHashes int
	var mask string
	var blind bool

	usage := fmt.Sprintf("%s [options] [FILE]", os.Args[0])

	flag.UintVarP(&k, "k", "k", 16, "Use `K` as the k-mer size")
	flag.IntVarP(&numHashes, "num-hashes", "n", 1, "Emit `N` hashes per window")
	flag.StringVarP(&mask, "seed", "s", "", "Use `MASK` as a spaced-seed ('0'/'1' string) instead of standard mode")
	flag.BoolVarP(&blind, "blind", "b", false, "Use blind (caller-driven) mode instead of standard mode")
	flag.Usage = func() {
		fmt.Printf("nthash - stream canonical ntHash values for every k-mer in a sequence\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	var rd io.Reader = os.Stdin
	if len(args) > 0 {
		fd, err := os.Open(args[0])
		if err != nil {
			die("can't open %s: %s", args[0], err)
		}
		defer fd.Close()
		rd = fd
	}

	seq, err := readSequence(rd)
	if err != nil {
		die("can't read sequence: %s", err)
	}

	switch {
	case mask != "":
		runSeed(seq, mask, uint16(k), numHashes)
	case blind:
		runBlind(seq, uint16(k), numHashes)
	default:
		runStandard(seq, uint16(k), numHashes)
	}
}

func runStandard(seq []byte, k uint16, numHashes int) {
	it, err := nthash.NewBuilder(seq).K(k).NumHashes(numHashes).Finish()
	if err != nil {
		die("can't build hasher: %s", err)
	}
	for {
		hashes, pos, ok := it.Next()
		if !ok {
			break
		}
		printWindow(pos, hashes)
	}
}

func runBlind(seq []byte, k uint16, numHashes int) {
	it, err := nthash.NewBlindBuilder(seq).K(k).NumHashes(numHashes).Finish()
	if err != nil {
		die("can't build hasher: %s", err)
	}
	for {
		hashes, pos, ok := it.Next()
		if !ok {
			break
		}
		printWindow(pos, hashes)
	}
}

func runSeed(seq []byte, mask string, k uint16, numHashes int) {
	it, err := nthash.NewSeedBuilder(seq).K(k).Masks([]string{mask}).NumHashes(numHashes).Finish()
	if err != nil {
		die("can't build hasher: %s", err)
	}
	for {
		hashes, pos, ok := it.Next()
		if !ok {
			break
		}
		printWindow(pos, hashes)
	}
}

func printWindow(pos int, hashes []uint64) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", pos)
	for _, h := range hashes {
		fmt.Fprintf(&b, "\t%016x", h)
	}
	fmt.Println(b.String())
}

func readSequence(rd io.Reader) ([]byte, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	var b strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); n == 0 || s[n-1] != '\n' {
		s += "\n"
	}
	fmt.Fprint(os.Stderr, s)
}
