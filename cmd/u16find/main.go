// Command u16find searches and replaces text in files, treating them as
// sequences of UTF-16 code units.
//
// Usage:
//
//	u16find [options] pattern file...
//
// Without -r, every match is printed with its line and display column.
// With -r, matches are replaced and the resulting text is written to stdout.
// The exit status is 0 if a match was found, 1 if not and 2 on errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/textbuilder"
	"github.com/npillmayer/textbuilder/highlight"
	"github.com/npillmayer/textbuilder/html"
	"github.com/npillmayer/textbuilder/textfile"
	"github.com/npillmayer/textbuilder/textsource"
)

type options struct {
	encoding    string
	replacement string
	replace     bool
	all         bool
	skip        bool
	last        bool
	regexp      bool
	limit       int
	html        bool
	htmlInput   bool
	color       bool
	verbose     bool
	pattern     string
	files       []string
}

// tracer traces with key "textbuilder", shared with the library packages.
// Flag -v makes it log to stderr.
func tracer() tracing.Trace {
	return tracing.Select("textbuilder")
}

// setupTracing installs a Go logger as the global tracer. The returned
// function removes it again.
func setupTracing(w io.Writer) func() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracer()
	t.SetOutput(w)
	t.SetTraceLevel(tracing.LevelDebug)
	return func() { tracing.SetTraceSelector(nil) }
}

var errUsage = errors.New("usage: u16find [options] pattern file...")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.verbose {
		defer setupTracing(stderr)()
	}
	var re *regexp.Regexp
	if opts.regexp {
		if re, err = regexp.Compile(opts.pattern); err != nil {
			fmt.Fprintf(stderr, "Error: invalid regular expression: %v\n", err)
			return 2
		}
	}
	found := false
	for _, name := range opts.files {
		b, err := textfile.Load(name, textfile.Options{Encoding: opts.encoding})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		if opts.htmlInput {
			src, err := html.TextFromHTML(b.Reader())
			if err != nil {
				fmt.Fprintf(stderr, "Error: %s: %v\n", name, err)
				return 2
			}
			b = textbuilder.New(src, 0)
		}
		tracer().Debugf("u16find: %s holds %d code units", name, b.Len())
		var ok bool
		if opts.replace {
			ok, err = replace(b, opts, stdout)
		} else {
			ok, err = find(b, name, re, opts, stdout)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		found = found || ok
	}
	if !found {
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("u16find", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.encoding, "e", "utf-8", "Encoding of the input files (e.g. utf-8, utf16le, latin1)")
	fs.StringVar(&opts.replacement, "r", "", "Replace matches by this text and print the result")
	fs.BoolVar(&opts.all, "all", false, "Report or replace all matches, ignoring -limit")
	fs.BoolVar(&opts.skip, "skip", false, "Report non-overlapping matches only")
	fs.BoolVar(&opts.last, "last", false, "Search backwards from the end of the text")
	fs.BoolVar(&opts.regexp, "regexp", false, "Interpret the pattern as a regular expression")
	fs.IntVar(&opts.limit, "limit", 0, "Maximum number of matches (default 1000 for searches, all for replacements)")
	fs.BoolVar(&opts.html, "html", false, "Print the text as HTML with matches marked")
	fs.BoolVar(&opts.htmlInput, "text", false, "Interpret input files as HTML and search their text content")
	fs.BoolVar(&opts.color, "color", false, "Colour matches, even if stdout is not a terminal")
	fs.BoolVar(&opts.verbose, "v", false, "Trace to the log")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "%v\n\nOptions:\n", errUsage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "r" {
			opts.replace = true
		}
	})
	if fs.NArg() < 2 {
		fs.Usage()
		return nil, errUsage
	}
	opts.pattern = fs.Arg(0)
	opts.files = fs.Args()[1:]
	if opts.replace && (opts.regexp || opts.last || opts.html) {
		return nil, errors.New("-r cannot be combined with -regexp, -last or -html")
	}
	return opts, nil
}

func replace(b *textbuilder.Builder, opts *options, w io.Writer) (bool, error) {
	pattern, repl := textsource.String(opts.pattern), textsource.String(opts.replacement)
	found := len(b.IndexOf(pattern, 0, 1)) > 0
	if opts.all {
		b.ReplaceAll(pattern, repl)
	} else {
		b.ReplacePattern(pattern, repl, 0, opts.limit)
	}
	_, err := b.WriteTo(w)
	return found, err
}

func find(b *textbuilder.Builder, name string, re *regexp.Regexp, opts *options, w io.Writer) (bool, error) {
	limit := opts.limit
	if opts.all {
		limit = b.Len() + 1
	}
	var ranges []highlight.Range
	if re != nil {
		for _, m := range b.IndexOfRegExp(re, 0, limit) {
			ranges = append(ranges, highlight.Range{Start: m.Start, End: m.End})
		}
	} else {
		pattern := textsource.String(opts.pattern)
		var offsets []int
		switch {
		case opts.last:
			offsets = b.LastIndexOf(pattern, 0, limit)
		case opts.skip:
			offsets = b.IndexOfSkip(pattern, 0, limit)
		default:
			offsets = b.IndexOf(pattern, 0, limit)
		}
		ranges = highlight.Ranges(offsets, textsource.Len(pattern))
	}
	if opts.html {
		return len(ranges) > 0, highlight.HTML{Class: "u16find"}.Print(w, b.Units(), ranges)
	}
	if len(ranges) == 0 {
		return false, nil
	}
	console := highlight.NewConsole(name, highlight.TerminalWidth(), opts.color)
	return true, console.Print(w, b.Units(), ranges)
}
