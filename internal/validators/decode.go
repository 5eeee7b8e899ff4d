package validators

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// DecodeRecord parses raw as a single flat JSON object. Numbers are decoded
// as json.Number. Invalid UTF-8, trailing data, a non-object document,
// nested objects or arrays and repeated keys are all reported as
// KindMalformedPayload.
func DecodeRecord(raw []byte) (Record, error) {
	if !utf8.Valid(raw) {
		return nil, malformedPayload("invalid UTF-8", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var record map[string]any
	if err := dec.Decode(&record); err != nil {
		return nil, malformedPayload("request is not JSON", err)
	}
	if record == nil {
		return nil, malformedPayload("document is not an object", nil)
	}

	var trailing any
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, malformedPayload("unexpected data after the object", err)
	}

	if err := checkFlat(record); err != nil {
		return nil, err
	}
	if err := checkDuplicateKeys(raw); err != nil {
		return nil, err
	}

	return Record(record), nil
}

func checkFlat(record map[string]any) error {
	for key, value := range record {
		switch value.(type) {
		case map[string]any, []any:
			return malformedPayload(fmt.Sprintf("field %q is not a scalar", key), nil)
		}
	}
	return nil
}

// checkDuplicateKeys walks the tokens of a flat object that already decoded
// and reports the first key seen twice.
func checkDuplicateKeys(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if _, err := dec.Token(); err != nil {
		return malformedPayload("request is not JSON", err)
	}

	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return malformedPayload("request is not JSON", err)
		}
		key, _ := tok.(string)
		if _, dup := seen[key]; dup {
			return malformedPayload(fmt.Sprintf("field %q is repeated", key), nil)
		}
		seen[key] = struct{}{}

		if _, err := dec.Token(); err != nil {
			return malformedPayload("request is not JSON", err)
		}
	}
	return nil
}
