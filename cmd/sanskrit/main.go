// Copyright 2026 The Sanskrit Tools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sanskrit reads Sanskrit transliterated in the Latin alphabet and writes it
// in Devanagari.
//
// Usage:
//
//	sanskrit [flags] [file ...]
//
// With no file arguments it reads standard input. The result is written to
// standard output as UTF-8. Each file starts afresh: a consonant at the end of
// one file is not joined to a consonant at the start of the next.
//
// The flags are:
//
//	-encoding name
//		character encoding of the input (default utf-8)
//	-nfc
//		compose the input to NFC first, so that letters written with
//		combining diacritics are recognized
//	-iso
//		also accept the ISO 15919 spellings r̥, r̥̄, l̥, l̥̄ and ṁ
//	-q
//		do not annotate untransliterated runes with their value
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns the exit
// status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "sanskrit: ", 0)

	fs := flag.NewFlagSet("sanskrit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c config
	fs.StringVar(&c.encoding, "encoding", "utf-8", "character `encoding` of the input")
	fs.BoolVar(&c.nfc, "nfc", false, "compose the input to NFC before transliterating")
	fs.BoolVar(&c.iso, "iso", false, "accept ISO 15919 spellings")
	fs.BoolVar(&c.quiet, "q", false, "do not annotate untransliterated runes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: sanskrit [flags] [file ...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	if err := c.init(); err != nil {
		logger.Print(err)
		return exitUsage
	}

	files := fs.Args()
	if len(files) == 0 {
		if err := c.transliterate(stdout, stdin); err != nil {
			logger.Print(err)
			return exitError
		}
		return exitOK
	}
	for _, name := range files {
		if err := c.transliterateFile(stdout, name); err != nil {
			logger.Print(err)
			return exitError
		}
	}
	return exitOK
}
