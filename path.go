package jsonget

import (
	"fmt"
	"strings"
)

// Path is the sequence of object keys to follow from the root value.
type Path []string

// ParsePath splits expr on '.'. There is no escaping, and empty segments are
// kept as empty keys, so "" is the single key "".
func ParsePath(expr string) Path {
	return strings.Split(expr, ".")
}

// String returns the dot-joined form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// PathError records the step at which a walk failed.
type PathError struct {
	Path  Path
	Index int
	Err   error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("key %q at %q: %v", e.Path[e.Index], e.Path[:e.Index+1].String(), e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Walk follows path from root. Every step must land on an object holding the
// next key; the first step that does not fails the whole walk. An empty path
// returns root.
func Walk(root any, path Path) (any, error) {
	cur := root
	for i, key := range path {
		logger.Debug("walk", "index", i, "key", key, "kind", kindOf(cur))
		var (
			next any
			ok   bool
		)
		switch v := cur.(type) {
		case Document:
			next, ok = v.Get(key)
		case map[string]any:
			next, ok = v[key]
		default:
			return nil, &PathError{Path: path, Index: i, Err: fmt.Errorf("%w (got %s)", ErrNotObject, kindOf(cur))}
		}
		if !ok {
			return nil, &PathError{Path: path, Index: i, Err: ErrKeyNotFound}
		}
		cur = next
	}
	return cur, nil
}

// Get walks root along the dot-separated expression expr.
func Get(root any, expr string) (any, error) {
	return Walk(root, ParsePath(expr))
}

// Lookup loads the JSON file name and returns the value at expr.
func Lookup(name, expr string) (any, error) {
	root, err := Load(name)
	if err != nil {
		return nil, err
	}
	return Get(root, expr)
}

func kindOf(v any) string {
	switch v.(type) {
	case Document, map[string]any:
		return "object"
	case Array, []any:
		return "array"
	case string:
		return "string"
	case Number, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
