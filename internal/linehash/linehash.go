// Package linehash gives the line-mode diff reducer a fixed-width key for
// interning a line, so the dedup lookup never re-hashes or re-compares an
// arbitrarily long line string.
package linehash

import "github.com/zeebo/blake3"

// Size is the digest width, matching blake3's default output size.
const Size = 32

// Sum is a fixed-width BLAKE3 digest, usable as a map key.
type Sum [Size]byte

// Of hashes line with BLAKE3.
func Of(line string) Sum {
	var s Sum
	h := blake3.New()
	_, _ = h.Write([]byte(line))
	copy(s[:], h.Sum(nil))
	return s
}
