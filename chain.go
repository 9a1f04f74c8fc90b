package hashfuck

import (
	"context"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the digest chain generator: the seed is hashed as text, the digest's hex
// text is hashed again, and so on until some digest holds the stopping pair "ff" as one of its
// byte-aligned groups. Every digest before that one is kept whole; the last is cut just before
// the pair.

// DefaultMaxSteps bounds a chain when no explicit limit is given. A chain is expected to stop
// within a few dozen steps for any of the supported algorithms.
const DefaultMaxSteps = 1 << 16

// Chain returns the extended digest chain of seed under alg. A positive limit caps the number
// of hash applications, zero selects DefaultMaxSteps, and a negative limit removes the cap.
// Reaching the cap yields ErrStepLimit and no chain.
func Chain(alg Algorithm, seed string, limit int) (string, error) {
	return ChainContext(context.Background(), alg, seed, limit)
}

// ChainContext is Chain with ctx checked between steps, so a deadline bounds the wall-clock
// time spent on a chain.
func ChainContext(ctx context.Context, alg Algorithm, seed string, limit int) (string, error) {
	c := Compiler{MaxSteps: limit}
	chain, _, err := c.chain(ctx, alg, seed)
	return chain, err
}

// cut returns the part of digest preceding its first aligned stopping pair and whether such a
// pair exists. An "ff" straddling two groups does not count.
func cut(digest []byte) ([]byte, bool) {
	for i := 0; i+1 < len(digest); i += 2 {
		if digest[i] == 'f' && digest[i+1] == 'f' {
			return digest[:i], true
		}
	}
	return digest, false
}

func (c *Compiler) chain(ctx context.Context, alg Algorithm, seed string) (string, int, error) {
	if !alg.valid() {
		return "", 0, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, alg)
	}
	limit, log := c.maxSteps(), c.logger()

	var (
		out     []byte
		current = []byte(seed)
		digest  = make([]byte, 0, alg.Size()<<1)
	)
	for step := 1; limit < 0 || step <= limit; step++ {
		if err := ctx.Err(); err != nil {
			return "", step - 1, fmt.Errorf("hashfuck: chain abandoned after %d steps: %w", step-1, err)
		}
		digest = alg.AppendHex(digest[:0], current)
		log.Debug().Int("step", step).Bytes("digest", digest).Msg("hashed")

		prefix, stop := cut(digest)
		out = append(out, prefix...)
		if stop {
			return string(out), step, nil
		}
		/* The previous text's buffer is free to receive the next digest. */
		current, digest = digest, current
	}
	return "", limit, fmt.Errorf("%w: %d steps of %v", ErrStepLimit, limit, alg)
}
