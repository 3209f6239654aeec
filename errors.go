package jsonget

import "errors"

var (
	// ErrFile reports that the document could not be opened or read.
	ErrFile = errors.New("file error")
	// ErrSyntax reports that the document is not valid JSON.
	ErrSyntax = errors.New("syntax error")
	// ErrKeyNotFound reports a path key missing from the current object.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotObject reports a path key applied to a value that is not an object.
	ErrNotObject = errors.New("not an object")
)
