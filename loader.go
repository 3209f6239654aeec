package jsonget

import (
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Load reads the file name to completion and parses it as a single JSON
// document. The file is closed before Load returns.
func Load(name string) (any, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}
	defer f.Close()

	v, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return v, nil
}

// Decode reads r to completion and parses the result with Parse.
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrFile, err)
	}
	logger.Debug("read document", "bytes", len(data))
	return Parse(data)
}

// Parse decodes data as a single JSON document. Objects become Document,
// arrays Array and numbers Number; strings, booleans and null keep their
// natural Go types. Duplicate object keys are accepted, the last one wins.
func Parse(data []byte) (any, error) {
	var v any
	err := json.Unmarshal(data, &v,
		json.WithUnmarshalers(Unmarshalers()),
		jsontext.AllowDuplicateNames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return v, nil
}
