package jsonget

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns the full set of unmarshalers allowing decoding into:
//   - any/interface{} -> objects as Document, arrays as Array, numbers as Number
//   - *Document       -> direct ordered object decoding
//   - *Array          -> direct array decoding
//   - *Number         -> number literal decoding
//
// Strings, booleans and null are left to the default logic.
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalValue(),
		unmarshalDocument(),
		unmarshalArray(),
		unmarshalNumber(),
	)
}

func unmarshalValue() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			doc, err := decodeDocument(dec)
			if err != nil {
				return err
			}
			*v = doc
			return nil
		case '[':
			arr, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		case '0':
			n, err := decodeNumber(dec)
			if err != nil {
				return err
			}
			*v = n
			return nil
		default:
			return json.SkipFunc
		}
	})
}

func unmarshalDocument() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Document) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		doc, err := decodeDocument(dec)
		if err != nil {
			return err
		}
		*v = doc
		return nil
	})
}

func unmarshalArray() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Array) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		arr, err := decodeArray(dec)
		if err != nil {
			return err
		}
		*v = arr
		return nil
	})
}

func unmarshalNumber() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Number) error {
		if dec.PeekKind() != '0' {
			return json.SkipFunc
		}
		n, err := decodeNumber(dec)
		if err != nil {
			return err
		}
		*v = n
		return nil
	})
}

// decodeDocument decodes a JSON object into a Document. A repeated key
// replaces the earlier value but keeps the position of its first occurrence.
func decodeDocument(dec *jsontext.Decoder) (Document, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	res := Document{}
	var seen map[string]int
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, fmt.Errorf("read value for key %q: %w", k, err)
		}
		if seen == nil {
			seen = make(map[string]int)
		}
		if i, ok := seen[k]; ok {
			res[i].Value = v
			continue
		}
		seen[k] = len(res)
		res = append(res, Entry{Key: k, Value: v})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return res, nil
}

// decodeArray decodes a JSON array into an Array.
func decodeArray(dec *jsontext.Decoder) (Array, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := make(Array, 0)
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element %d: %w", len(arr), err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

func decodeNumber(dec *jsontext.Decoder) (Number, error) {
	val, err := dec.ReadValue()
	if err != nil {
		return "", fmt.Errorf("read number: %w", err)
	}
	return Number(val), nil
}
