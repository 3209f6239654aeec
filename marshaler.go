package jsonget

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Marshalers returns marshalers that encode a Document as a JSON object in
// entry order and a Number as its literal text.
func Marshalers() *json.Marshalers {
	return json.JoinMarshalers(
		json.MarshalToFunc(encodeDocument),
		json.MarshalToFunc(encodeNumber),
	)
}

// Marshal encodes v as JSON using Marshalers. Additional options such as
// jsontext.WithIndent are applied after the defaults.
func Marshal(v any, opts ...json.Options) ([]byte, error) {
	all := append([]json.Options{
		json.WithMarshalers(Marshalers()),
		jsontext.AllowDuplicateNames(true),
	}, opts...)
	return json.Marshal(v, all...)
}

func encodeDocument(enc *jsontext.Encoder, d Document) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return fmt.Errorf("write object open: %w", err)
	}
	for _, e := range d {
		if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
			return fmt.Errorf("write object key: %w", err)
		}
		if err := json.MarshalEncode(enc, e.Value); err != nil {
			return fmt.Errorf("write value for key %q: %w", e.Key, err)
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return fmt.Errorf("write object close: %w", err)
	}
	return nil
}

func encodeNumber(enc *jsontext.Encoder, n Number) error {
	if err := enc.WriteValue(jsontext.Value(n)); err != nil {
		return fmt.Errorf("write number %q: %w", string(n), err)
	}
	return nil
}
