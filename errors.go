package hashfuck

import (
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var (
	ErrMalformedProgram     = errors.New("hashfuck: program is not of the form algorithm:seed")
	ErrUnsupportedAlgorithm = errors.New("hashfuck: unsupported hash algorithm")
	ErrInvalidHexGroup      = errors.New("hashfuck: invalid hex group")
	ErrStepLimit            = errors.New("hashfuck: step limit reached before a stopping pair")
)

// HexGroupError reports the first group of a chain that is not base-16 text.
type HexGroupError struct {
	Offset int /* byte offset of the group within the chain */
	Group  string
}

func (e *HexGroupError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrInvalidHexGroup, e.Group, e.Offset)
}

func (e *HexGroupError) Is(target error) bool { return target == ErrInvalidHexGroup }
