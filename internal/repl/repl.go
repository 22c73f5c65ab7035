/*
File    : noctis/internal/repl/repl.go
*/

// Package repl implements the Read-Parse-Print Loop for Noctis. Unlike the
// evaluator-driven REPL it is adapted from, this loop never executes
// anything: it tokenizes and parses whatever the user types and prints
// either the resulting module tree (via ast.Print) or a colored error,
// matching the front-end-only scope of the core library.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/noctis-lang/noctis/ast"
	"github.com/noctis-lang/noctis/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Noctis!")
	cyanColor.Fprintf(writer, "%s\n", "Type or paste a module, then an empty line to parse it")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' on its own line to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: readline-backed input, buffered until a blank
// line, parsed as one module, and echoed back as pretty-printed source or
// a colored diagnostic.
//
// A single readline line rarely holds a whole function (clauses span
// several lines), so unlike the REPL this is adapted from, input is
// accumulated until the user enters a blank line or '.exit'.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.TrimRight(line, " \t\r")

		if strings.TrimSpace(trimmed) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if trimmed == "" {
			source := buf.String()
			buf.Reset()
			if strings.TrimSpace(source) == "" {
				continue
			}
			rl.SaveHistory(strings.TrimSpace(source))
			r.parseAndPrint(writer, source)
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

// parseAndPrint parses source as one module and prints either the
// canonical rendering of the resulting tree or the parser's diagnostic.
func (r *Repl) parseAndPrint(writer io.Writer, source string) {
	m, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if printErr := ast.Print(writer, m); printErr != nil {
		redColor.Fprintf(writer, "[OUTPUT ERROR] %v\n", printErr)
	}
}

// StartFromReader adapts an arbitrary line-oriented io.Reader (e.g. a
// piped file) rather than an interactive terminal, for non-TTY use. It
// shares parseAndPrint but skips readline entirely, and parses any input
// still buffered when the reader ends.
func StartFromReader(r *Repl, reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	scanner := bufio.NewScanner(reader)
	var buf strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == ".exit" {
			break
		}
		if strings.TrimSpace(line) == "" {
			source := buf.String()
			buf.Reset()
			if strings.TrimSpace(source) == "" {
				continue
			}
			r.parseAndPrint(writer, source)
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	if strings.TrimSpace(buf.String()) != "" {
		r.parseAndPrint(writer, buf.String())
	}
}
