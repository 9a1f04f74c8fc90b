package hashfuck

import (
	"crypto/md5"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"github.com/minio/sha256-simd"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the closed set of hash functions a program may name and the single
// capability each of them provides to the chain generator: appending the lowercase hexadecimal
// digest of some text.

// Algorithm selects the hash function applied at every step of a digest chain.
type Algorithm uint8

const (
	MD5 Algorithm = iota + 1
	SHA256
	SHA512
)

type variant struct {
	name string
	size int /* digest size in bytes */
	sum  func(dst *[sha512.Size]byte, text []byte)
}

/* Indexed by Algorithm; the zero entry stands for "no algorithm". */
var variants = [...]variant{
	MD5: {"md5", md5.Size, func(dst *[sha512.Size]byte, text []byte) {
		sum := md5.Sum(text)
		copy(dst[:], sum[:])
	}},
	SHA256: {"sha256", sha256.Size, func(dst *[sha512.Size]byte, text []byte) {
		sum := sha256.Sum256(text)
		copy(dst[:], sum[:])
	}},
	SHA512: {"sha512", sha512.Size, func(dst *[sha512.Size]byte, text []byte) {
		*dst = sha512.Sum512(text)
	}},
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm { return []Algorithm{MD5, SHA256, SHA512} }

// ParseAlgorithm maps a program's algorithm token onto an Algorithm. Matching is exact and
// case-sensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if variants[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

func (a Algorithm) valid() bool { return a > 0 && int(a) < len(variants) }

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return variants[a].name
}

// Size returns the length in bytes of a raw digest; its hex text is twice as long.
func (a Algorithm) Size() int {
	if !a.valid() {
		return 0
	}
	return variants[a].size
}

// AppendHex appends the lowercase hex digest of text to dst and returns the extended slice.
// The text is hashed exactly as given; it is never decoded from hex first.
func (a Algorithm) AppendHex(dst, text []byte) []byte {
	if !a.valid() {
		panic("hashfuck: AppendHex on unsupported algorithm")
	}
	v, sum := variants[a], [sha512.Size]byte{}
	v.sum(&sum, text)

	n := len(dst)
	dst = append(dst, make([]byte, v.size<<1)...)
	hex.Encode(dst[n:], sum[:v.size])
	return dst
}
