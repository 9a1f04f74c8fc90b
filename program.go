package hashfuck

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the Go API for turning a program of the form algorithm:seed into its
// instruction text: the program is parsed, its chain generated, and the chain mapped onto
// symbols.

// Program is a parsed algorithm:seed request.
type Program struct {
	Source    string
	Algorithm Algorithm
	Seed      string
}

// Result carries everything a compilation produced.
type Result struct {
	Program Program
	Chain   string /* extended digest chain */
	Output  string /* instruction text */
	Steps   int    /* hash applications performed */
}

// ParseProgram splits src at every ':'. Exactly two parts must result, the first naming a
// supported algorithm; the seed is taken verbatim and may be empty.
func ParseProgram(src string) (Program, error) {
	parts := strings.Split(src, ":")
	if len(parts) != 2 {
		return Program{}, fmt.Errorf("%w: %d parts in %q", ErrMalformedProgram, len(parts), src)
	}
	alg, err := ParseAlgorithm(parts[0])
	if err != nil {
		return Program{}, err
	}
	return Program{Source: src, Algorithm: alg, Seed: parts[1]}, nil
}

// Compiler holds the settings shared by every compilation. The zero value bounds chains at
// DefaultMaxSteps and logs nothing.
type Compiler struct {
	MaxSteps int /* same meaning as Chain's limit */
	Logger   *zerolog.Logger
}

var nop = zerolog.Nop()

func (c *Compiler) logger() *zerolog.Logger {
	if c.Logger == nil {
		return &nop
	}
	return c.Logger
}

func (c *Compiler) maxSteps() int {
	if c.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return c.MaxSteps
}

// Chain generates the extended digest chain of seed, honoring c's step limit and ctx.
func (c *Compiler) Chain(ctx context.Context, alg Algorithm, seed string) (string, error) {
	chain, _, err := c.chain(ctx, alg, seed)
	return chain, err
}

// Compile parses src and renders its instruction text. Nothing is returned on failure.
func (c *Compiler) Compile(ctx context.Context, src string) (Result, error) {
	p, err := ParseProgram(src)
	if err != nil {
		return Result{}, err
	}
	chain, steps, err := c.chain(ctx, p.Algorithm, p.Seed)
	if err != nil {
		return Result{}, err
	}
	out, err := Symbols(chain)
	if err != nil {
		return Result{}, err /* unreachable for a generated chain */
	}

	c.logger().Info().
		Str("program", p.Source).
		Stringer("algorithm", p.Algorithm).
		Str("seed", p.Seed).
		Str("chain", chain).
		Int("steps", steps).
		Msg("compiled")
	return Result{Program: p, Chain: chain, Output: out, Steps: steps}, nil
}

// Compile renders src with a zero Compiler.
func Compile(src string) (string, error) {
	r, err := (&Compiler{}).Compile(context.Background(), src)
	return r.Output, err
}
