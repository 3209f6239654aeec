// Package jsonget loads JSON documents into an ordered value tree and looks
// up values in them by dot-separated key paths.
package jsonget

import "strconv"

// Document represents a JSON object, defined as an ordered collection of
// key-value pairs. Keys appear in the order of the source text.
type Document []Entry

// Array represents a JSON array, defined as a slice of values of any type.
type Array []any

// Entry represents a single entry in a document. It consists of a string key
// and an associated value of any type.
type Entry struct {
	Key   string
	Value any
}

// Get returns the value stored under key and whether the key exists.
func (d Document) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the document keys in order.
func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}

// Number holds a JSON number as its literal text so it prints exactly as it
// was written.
type Number string

func (n Number) String() string { return string(n) }

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int64 returns the number as an int64. It fails for literals with a
// fraction or exponent.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}
