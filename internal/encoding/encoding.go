// Package encoding serializes a dataset into the two notations under comparison.
package encoding

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/rotisserie/eris"
	toon "github.com/toon-format/toon-go"

	"github.com/toonlab/toonbench/internal/dataset"
)

// Kind identifies a payload notation.
type Kind string

const (
	KindJSON Kind = "json"
	KindTOON Kind = "toon"
)

// Payload is a dataset serialized into one notation. Both payloads of a
// comparison run derive from the same dataset value.
type Payload struct {
	Kind Kind
	Text string
}

// EncodeError reports a dataset value that has no representation in the
// target notation. Path locates the offending value within the dataset.
type EncodeError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding: %s: unsupported value at %s: %v", e.Kind, e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Encode serializes the dataset into the requested notation. Output is
// byte-deterministic for a given dataset: JSON is indented with sorted keys,
// TOON carries length markers for arrays of objects.
func Encode(ds dataset.Dataset, kind Kind) (Payload, error) {
	if err := validate(ds, kind); err != nil {
		return Payload{}, err
	}

	switch kind {
	case KindJSON:
		raw, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return Payload{}, eris.Wrap(err, "encoding: marshal json")
		}
		return Payload{Kind: KindJSON, Text: string(raw)}, nil

	case KindTOON:
		raw, err := toon.Marshal(ds, toon.WithLengthMarkers(true))
		if err != nil {
			return Payload{}, eris.Wrap(err, "encoding: marshal toon")
		}
		return Payload{Kind: KindTOON, Text: string(raw)}, nil

	default:
		return Payload{}, eris.Errorf("encoding: unknown kind %q", kind)
	}
}

// Decode parses text in the given notation back into a dataset. Used to
// verify round-trip fidelity of an encoded payload.
func Decode(p Payload) (dataset.Dataset, error) {
	var ds dataset.Dataset
	switch p.Kind {
	case KindJSON:
		if err := json.Unmarshal([]byte(p.Text), &ds); err != nil {
			return nil, eris.Wrap(err, "encoding: unmarshal json")
		}
	case KindTOON:
		if err := toon.Unmarshal([]byte(p.Text), &ds); err != nil {
			return nil, eris.Wrap(err, "encoding: unmarshal toon")
		}
	default:
		return nil, eris.Errorf("encoding: unknown kind %q", p.Kind)
	}
	return ds, nil
}

// validate walks the dataset and rejects values that neither notation can
// represent, naming the path of the first offender. Marshalers would fail
// on these anyway but without a usable location.
func validate(ds dataset.Dataset, kind Kind) error {
	return walk(reflect.ValueOf(ds), "$", kind)
}

func walk(v reflect.Value, path string, kind Kind) error {
	if !v.IsValid() {
		return nil // nil is representable in both notations
	}

	// Unwrap interface values.
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := walk(v.Index(i), path+"["+strconv.Itoa(i)+"]", kind); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return &EncodeError{Kind: kind, Path: path, Err: eris.Errorf("map with non-string key type %s", v.Type().Key())}
		}
		iter := v.MapRange()
		for iter.Next() {
			if err := walk(iter.Value(), path+"."+iter.Key().String(), kind); err != nil {
				return err
			}
		}
		return nil

	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return walk(v.Elem(), path, kind)

	default:
		return &EncodeError{Kind: kind, Path: path, Err: eris.Errorf("value of type %s", v.Type())}
	}
}
