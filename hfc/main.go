package main

import (
	"bufio"
	"context"
	. "fmt"
	"github.com/p7r0x7/hashfuck"
	"github.com/p7r0x7/vainpath"
	"github.com/rs/zerolog"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var stdout io.Writer = os.Stdout
var warnings = 0

func main() {
	Parse()
	os.Exit(program())
}

// help prints a usage menu. To consistently correctly render this menu in most terminal
// windows, its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "hfc" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Compiles algorithm:seed programs into tape-machine instructions.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-ct] [-n <int>] [-v...] [--config PATH] [--timeout DURATION]"+n,
		spaces, "[--quiet|no-codes] [--strict] -|PROGRAM..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Programs take the form"+n+
		"md5|sha256|sha512:SEED. `-` reads one program per line from ", os.Stdin.Name(), "."+n)
}

// This program is a command-line interface for hashfuck: it compiles every program given as an
// argument or read from STDIN and prints the resulting instructions, one program per line.
func program() int {
	if pHelp || NArg() == 0 {
		help()
		return success
	}

	s := defaultSettings()
	if pConfig != "" {
		if err := loadConfig(pConfig, &s); err != nil {
			Fprint(os.Stderr, purp, vainpath.Simplify(pConfig), ": ", err, zero, n)
			return invalid
		}
	}
	applyEnv(&s)
	applyFlags(&s)
	if s.noCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	log := newLogger(s)
	if pConfig != "" {
		log.Debug().Str("config", vainpath.Simplify(pConfig)).Msg("loaded settings")
	}
	c := &hashfuck.Compiler{MaxSteps: s.maxSteps, Logger: &log}
	run(c, s, Args(), os.Stdin)

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "program failed to compile.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "programs failed to compile.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

/* Only flags the operator actually set override the config file. */
func applyFlags(s *settings) {
	if CommandLine.Changed("max-steps") {
		s.maxSteps = pMaxSteps
	}
	if CommandLine.Changed("timeout") {
		s.timeout = pTimeout
	}
	if CommandLine.Changed("chain") {
		s.chain = pChain
	}
	if CommandLine.Changed("no-codes") || pQuiet {
		s.noCodes = pNoCodes
	}
	switch {
	case pQuiet:
		s.level = zerolog.Disabled
	case pVerbose == 1:
		s.level = zerolog.InfoLevel
	case pVerbose > 1:
		s.level = zerolog.DebugLevel
	}
}

func newLogger(s settings) zerolog.Logger {
	if s.level == zerolog.Disabled {
		return zerolog.Nop()
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: s.noCodes}
	return zerolog.New(output).Level(s.level).With().Timestamp().Str("app", "hfc").Logger()
}

// run compiles each target; "-" stands for every non-blank line of in.
func run(c *hashfuck.Compiler, s settings, targets []string, in io.Reader) {
	for _, target := range targets {
		if target != "-" {
			compile(c, s, target)
			continue
		}
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 4096), 1<<20)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				compile(c, s, line)
			}
		}
		if err := scanner.Err(); err != nil {
			warn(c, "-", err)
		}
	}
}

func compile(c *hashfuck.Compiler, s settings, src string) {
	if src == "" {
		return /* Nothing to compile. */
	}
	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	defer cancel()

	start, delta := time.Now(), ""
	r, err := c.Compile(ctx, src)
	if err != nil {
		warn(c, src, err)
		return
	}
	if pTime {
		d := time.Since(start)
		if d.Microseconds() > 99 {
			d = d.Truncate(10 * time.Microsecond)
		}
		delta = " (" + d.String() + ")"
	}

	str := r.Output
	if s.chain {
		str = r.Chain
	}
	if pQuiet {
		Fprint(stdout, str, n)
	} else {
		Fprint(stdout, yell, str, zero, `  "`, und, src, zero, `"`, delta, n)
	}
}

func warn(c *hashfuck.Compiler, src string, err error) {
	if pStrict {
		panic(err)
	}
	if c.Logger != nil {
		c.Logger.Error().Err(err).Str("program", src).Msg("compile failed")
	}
	warnings++
}
