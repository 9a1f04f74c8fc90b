package main

import (
	. "github.com/spf13/pflag"
	"os"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pMaxSteps, pVerbose, pConfig, pTimeout, pNoCodesDefault = 0, 0, "", time.Duration(0), false
var pHelp, pChain, pNoCodes, pQuiet, pStrict, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pChain, "chain", "c", false,
		purp+"print the extended digest chain instead of instructions"+zero)

	StringVar(&pConfig, "config", "",
		purp+"read settings from a TOML file"+zero)

	IntVarP(&pMaxSteps, "max-steps", "n", 0,
		purp+"give up after this many hash steps"+zero+
			n+purp+"(0 for the default of 65536, negative for no limit)"+zero)

	BoolVar(&pNoCodes, "no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes"+zero)

	BoolVar(&pQuiet, "quiet", false,
		purp+"suppress diagnostics and print ONLY instructions"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause hfc to panic on any error"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to compile each program"+zero)

	DurationVar(&pTimeout, "timeout", 0,
		purp+"abandon any program taking longer than this"+zero)

	CountVarP(&pVerbose, "verbose", "v", purp+"log each program's chain; twice logs every step"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
}
