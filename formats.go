package jsonget

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

var (
	// TextFormat prints strings without quotes and everything else as
	// compact JSON in source key order.
	//
	//	"hello"        -> hello
	//	42             -> 42
	//	{"b":1,"a":2}  -> {"b":1,"a":2}
	TextFormat = NewFormat("std.text", writeText)

	// JSONFormat prints any value as compact JSON.
	JSONFormat = NewFormat("std.json", writeJSON)

	// PrettyFormat prints any value as JSON indented by two spaces.
	PrettyFormat = NewFormat("std.pretty", writePretty)

	// YAMLFormat prints any value as a YAML document.
	YAMLFormat = NewFormat("std.yaml", writeYAML)
)

// Builtin bundles the std formats.
func Builtin() Registration {
	return Group(TextFormat, JSONFormat, PrettyFormat, YAMLFormat)
}

func writeText(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := io.WriteString(w, s+"\n")
		return err
	}
	return writeJSON(w, v)
}

func writeJSON(w io.Writer, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func writePretty(w io.Writer, v any) error {
	b, err := Marshal(v, jsontext.WithIndent("  "))
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
