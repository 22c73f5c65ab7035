/*
File    : noctis/cmd/noctisc/main.go
*/

// Package main is the entry point for noctisc, the Noctis front-end
// driver. It provides three modes of operation:
//  1. REPL mode (default): parse source typed interactively
//  2. File mode: parse a source file, printing its tree or a JSON dump
//  3. Playground mode: serve live parse feedback over a websocket
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/internal/jsonast"
	"github.com/noctis-lang/noctis/internal/playground"
	"github.com/noctis-lang/noctis/internal/repl"
	"github.com/noctis-lang/noctis/parser"
)

// VERSION is the current version of the noctisc driver.
var VERSION = "v0.1.0"

// AUTHOR is displayed in the REPL banner.
var AUTHOR = "noctis-lang"

// LICENSE names the project's license.
var LICENSE = "MIT"

// PROMPT is the interactive prompt string.
var PROMPT = "noctis> "

// LINE is the separator used in the REPL banner.
var LINE = "----------------------------------------------------------------"

// BANNER is the ASCII logo shown at REPL startup.
var BANNER = `
 _   _            _   _
| \ | | ___   ___| |_(_)___
|  \| |/ _ \ / __| __| / __|
| |\  | (_) | (__| |_| \__ \
|_| \_|\___/ \___|\__|_|___/
`

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	jsonFlag := flag.Bool("json", false, "dump the parsed module as JSON instead of pretty-printed source")
	serveAddr := flag.String("serve", "", "start the playground websocket server on this address instead of parsing")
	versionFlag := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *versionFlag {
		showVersion()
		return
	}

	if *serveAddr != "" {
		if err := playground.NewServer().ListenAndServe(*serveAddr); err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	runFile(args[0], *jsonFlag)
}

func showVersion() {
	cyanColor.Println("noctisc - the Noctis front-end driver")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile parses a single source file and prints its tree, either as
// canonical Noctis source (the default) or as the §6.2 JSON contract.
func runFile(fileName string, asJSON bool) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	m, parseErr := parser.Parse(string(source))
	if parseErr != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", parseErr)
		os.Exit(1)
	}

	if asJSON {
		if err := jsonast.Encode(os.Stdout, m); err != nil {
			redColor.Fprintf(os.Stderr, "[OUTPUT ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := ast.Print(os.Stdout, m); err != nil {
		redColor.Fprintf(os.Stderr, "[OUTPUT ERROR] %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout)
}
