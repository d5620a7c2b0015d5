package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/cockroachdb/apd/v3"
)

// Codec converts values of type V to and from their JSON wire representation.
//
// Decode is never called with a JSON null; the descriptor maps null to an absent value before.
type Codec[V any] interface {
	Encode(w io.Writer, v V) error
	Decode(b []byte) (V, error)
}

// Scalar codecs for the primitive wire types.
var (
	String  = JSON[string]()
	Bool    = JSON[bool]()
	Int32   = JSON[int32]()
	Int64   = JSON[int64]()
	Float64 = JSON[float64]()
	// Decimal keeps wire numbers exact, e.g. search scores.
	Decimal Codec[apd.Decimal] = decimalCodec{}
)

type jsonCodec[V any] struct{}

// JSON returns a codec that delegates to encoding/json.
// Generated models are nested through it, as they implement json.Marshaler and json.Unmarshaler.
func JSON[V any]() Codec[V] {
	return jsonCodec[V]{}
}

func (jsonCodec[V]) Encode(w io.Writer, v V) error {
	return encodeJSON(w, v)
}

func (jsonCodec[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

type decimalCodec struct{}

func (decimalCodec) Encode(w io.Writer, v apd.Decimal) error {
	if v.Form != apd.Finite {
		return fmt.Errorf("cannot encode %s as JSON number", v.Text('G'))
	}
	_, err := io.WriteString(w, v.Text('G'))
	return err
}

func (decimalCodec) Decode(b []byte) (apd.Decimal, error) {
	var d apd.Decimal
	b = bytes.TrimSpace(b)
	if len(b) == 0 || !(b[0] == '-' || (b[0] >= '0' && b[0] <= '9')) || !json.Valid(b) {
		return d, &json.UnmarshalTypeError{Value: jsonKind(b), Type: reflect.TypeFor[apd.Decimal]()}
	}
	if err := d.UnmarshalText(b); err != nil {
		return d, err
	}
	return d, nil
}

// jsonKind names the JSON type of a raw value, as used in json.UnmarshalTypeError.
func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "empty"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func encodeJSON(w io.Writer, v any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return err
}
