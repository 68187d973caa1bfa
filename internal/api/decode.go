package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyBody    = errors.New("api: empty request body")
	ErrUnknownField = errors.New("api: unknown field")
)

// ConferenceFields is the complete key set an update conference body may use.
var ConferenceFields = []string{
	"title", "country", "location", "start_date", "end_date",
	"path_to_description", "path_to_logo",
}

// CheckFields returns ErrUnknownField if the JSON object in body has a key
// outside allowed.
func CheckFields(body []byte, allowed []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	for k := range fields {
		if !slices.Contains(allowed, k) {
			return fmt.Errorf("%w %q", ErrUnknownField, k)
		}
	}
	return nil
}

// DecodeOne decodes a single JSON object. With strict set, fields that T does
// not declare are rejected.
func DecodeOne[T any](body []byte, strict bool) (T, error) {
	var item T
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return item, ErrEmptyBody
	}
	if err := newDecoder(trimmed, strict).Decode(&item); err != nil {
		return item, err
	}
	return item, nil
}

// DecodeOneOrMany accepts either a JSON object or an array of objects and
// always returns a slice, preserving request order.
func DecodeOneOrMany[T any](body []byte, strict bool) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrEmptyBody
	}
	if trimmed[0] != '[' {
		item, err := DecodeOne[T](trimmed, strict)
		if err != nil {
			return nil, err
		}
		return []T{item}, nil
	}
	var items []T
	if err := newDecoder(trimmed, strict).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

func newDecoder(b []byte, strict bool) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(b))
	if strict {
		dec.DisallowUnknownFields()
	}
	return dec
}
