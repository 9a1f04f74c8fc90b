package hashfuck

import (
	"strconv"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// table maps a byte's value modulo 8 onto an instruction of the tape language. Classes 4 and 5
// share the output instruction, so only seven symbols ever appear.
var table = [8]byte{'>', '<', '+', '-', '.', '.', '[', ']'}

// Symbol returns the instruction for one byte value.
func Symbol(b byte) byte { return table[b&7] }

// Symbols maps every two-character group of chain, read as a base-16 byte, onto its
// instruction. Uppercase digits are accepted; a lone trailing digit is read as its own group.
// The first group that is not hexadecimal fails the whole call with a *HexGroupError.
func Symbols(chain string) (string, error) {
	var b strings.Builder
	b.Grow((len(chain) + 1) >> 1)
	for i := 0; i < len(chain); i += 2 {
		group := chain[i:min(i+2, len(chain))]
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return "", &HexGroupError{Offset: i, Group: group}
		}
		b.WriteByte(Symbol(byte(v)))
	}
	return b.String(), nil
}
