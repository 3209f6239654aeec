// Command jsonget prints the value found at a dot-separated key path in a
// JSON file.
//
//	jsonget [-o format] [-debug] <json-file-path> <dot-separated-key-path>
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/calumari/jsonget"
)

// errMessage is the single diagnostic for every failure kind.
const errMessage = "Error: Invalid Key or File"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonget", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("o", "text", "output format: text, json, pretty or yaml")
	debug := fs.Bool("debug", false, "log the cause of a failure to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: jsonget [-o format] [-debug] <json-file-path> <dot-separated-key-path>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	jsonget.SetLogger(logger)

	name, expr := fs.Arg(0), fs.Arg(1)
	out, err := render(name, expr, *format, stdin)
	if err != nil {
		logger.Debug("lookup failed", "file", name, "path", expr, "error", err)
		fmt.Fprintln(stderr, errMessage)
		return 1
	}
	if _, err := stdout.Write(out); err != nil {
		logger.Error("write output", "error", err)
		return 1
	}
	return 0
}

// render produces the complete output in memory so a failure at any step
// leaves stdout untouched. A name of "-" reads stdin.
func render(name, expr, format string, stdin io.Reader) ([]byte, error) {
	reg, err := jsonget.NewRegistry(jsonget.Builtin())
	if err != nil {
		return nil, err
	}

	var root any
	if name == "-" {
		root, err = jsonget.Decode(stdin)
	} else {
		root, err = jsonget.Load(name)
	}
	if err != nil {
		return nil, err
	}

	v, err := jsonget.Get(root, expr)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := reg.Format(format, &buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
