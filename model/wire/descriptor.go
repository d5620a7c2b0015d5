package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
)

// Field describes how one wire field of a model of type T is read, written and detected.
type Field[T any] struct {
	name     string
	required bool
	emitNull bool
	present  func(r *T) bool
	encode   func(w io.Writer, r *T) error
	decode   func(b []byte, r *T) error
	reset    func(r *T)
}

// Name returns the wire name of the field.
func (f Field[T]) Name() string {
	return f.name
}

// Required reports whether the field must be present in every payload.
func (f Field[T]) Required() bool {
	return f.required
}

type fieldOptions struct {
	emitNull bool
}

// FieldOption tunes the encoding of an optional field.
type FieldOption func(*fieldOptions)

// EmitNull writes an absent field as JSON null instead of omitting it.
func EmitNull() FieldOption {
	return func(o *fieldOptions) {
		o.emitNull = true
	}
}

func applyOptions(opts []FieldOption) fieldOptions {
	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Optional declares a field that may be absent. A nil pointer means absent.
func Optional[T, V any](name string, get func(r *T) **V, c Codec[V], opts ...FieldOption) Field[T] {
	o := applyOptions(opts)
	return Field[T]{
		name:     name,
		emitNull: o.emitNull,
		present: func(r *T) bool {
			return *get(r) != nil
		},
		encode: func(w io.Writer, r *T) error {
			return c.Encode(w, **get(r))
		},
		decode: func(b []byte, r *T) error {
			v, err := c.Decode(b)
			if err != nil {
				return err
			}
			*get(r) = &v
			return nil
		},
		reset: func(r *T) {
			*get(r) = nil
		},
	}
}

// Required declares a field that must be present. Decoding fails if it is missing or null.
func Required[T, V any](name string, get func(r *T) *V, c Codec[V]) Field[T] {
	return Field[T]{
		name:     name,
		required: true,
		present: func(r *T) bool {
			return true
		},
		encode: func(w io.Writer, r *T) error {
			return c.Encode(w, *get(r))
		},
		decode: func(b []byte, r *T) error {
			v, err := c.Decode(b)
			if err != nil {
				return err
			}
			*get(r) = v
			return nil
		},
		reset: func(r *T) {
			*get(r) = *new(V)
		},
	}
}

// List declares an optional array field.
// A nil slice means absent, an empty slice is written as [].
// Null elements are rejected, as every element type is non-nullable.
func List[T, V any](name string, get func(r *T) *[]V, c Codec[V], opts ...FieldOption) Field[T] {
	o := applyOptions(opts)
	return Field[T]{
		name:     name,
		emitNull: o.emitNull,
		present: func(r *T) bool {
			return *get(r) != nil
		},
		encode: func(w io.Writer, r *T) error {
			if _, err := io.WriteString(w, "["); err != nil {
				return err
			}
			for i, v := range *get(r) {
				if i > 0 {
					if _, err := io.WriteString(w, ","); err != nil {
						return err
					}
				}
				if err := c.Encode(w, v); err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
			}
			_, err := io.WriteString(w, "]")
			return err
		},
		decode: func(b []byte, r *T) error {
			var raw []json.RawMessage
			if err := json.Unmarshal(b, &raw); err != nil {
				return err
			}
			list := make([]V, 0, len(raw))
			for i, e := range raw {
				if isNull(e) {
					return &structuralError{reason: fmt.Sprintf("null element at index %d", i)}
				}
				v, err := c.Decode(e)
				if err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
				list = append(list, v)
			}
			*get(r) = list
			return nil
		},
		reset: func(r *T) {
			*get(r) = nil
		},
	}
}

// Map declares an optional object field with arbitrary keys.
// A nil map means absent. Keys are written in sorted order.
func Map[T, V any](name string, get func(r *T) *map[string]V, c Codec[V], opts ...FieldOption) Field[T] {
	o := applyOptions(opts)
	return Field[T]{
		name:     name,
		emitNull: o.emitNull,
		present: func(r *T) bool {
			return *get(r) != nil
		},
		encode: func(w io.Writer, r *T) error {
			m := *get(r)
			if _, err := io.WriteString(w, "{"); err != nil {
				return err
			}
			for i, k := range slices.Sorted(maps.Keys(m)) {
				if i > 0 {
					if _, err := io.WriteString(w, ","); err != nil {
						return err
					}
				}
				if err := writeKey(w, k); err != nil {
					return err
				}
				if err := c.Encode(w, m[k]); err != nil {
					return fmt.Errorf("key %q: %w", k, err)
				}
			}
			_, err := io.WriteString(w, "}")
			return err
		},
		decode: func(b []byte, r *T) error {
			var raw map[string]json.RawMessage
			if err := json.Unmarshal(b, &raw); err != nil {
				return err
			}
			m := make(map[string]V, len(raw))
			for k, e := range raw {
				if isNull(e) {
					return &structuralError{reason: fmt.Sprintf("null value for key %q", k)}
				}
				v, err := c.Decode(e)
				if err != nil {
					return fmt.Errorf("key %q: %w", k, err)
				}
				m[k] = v
			}
			*get(r) = m
			return nil
		},
		reset: func(r *T) {
			*get(r) = nil
		},
	}
}

// Descriptor is the field table of a model type T.
// It drives encoding, decoding and equality of every generated model.
type Descriptor[T any] struct {
	name       string
	fields     []Field[T]
	byName     map[string]int
	additional func(r *T) *map[string]json.RawMessage
}

// NewDescriptor returns the descriptor of the model name with fields in wire order.
// It panics on duplicate field names.
func NewDescriptor[T any](name string, fields ...Field[T]) *Descriptor[T] {
	d := &Descriptor[T]{
		name:   name,
		fields: fields,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := d.byName[f.name]; dup {
			panic(fmt.Sprintf("model %s: duplicate field %q", name, f.name))
		}
		d.byName[f.name] = i
	}
	return d
}

// WithAdditional keeps undeclared keys in the map returned by get instead of dropping them.
// They are written back after the declared fields, sorted by key.
func (d *Descriptor[T]) WithAdditional(get func(r *T) *map[string]json.RawMessage) *Descriptor[T] {
	d.additional = get
	return d
}

// Name returns the model name.
func (d *Descriptor[T]) Name() string {
	return d.name
}

// FieldNames returns the declared wire field names in wire order.
func (d *Descriptor[T]) FieldNames() []string {
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.name
	}
	return names
}

// Marshal returns the wire encoding of r.
func (d *Descriptor[T]) Marshal(r *T) ([]byte, error) {
	var b bytes.Buffer
	if err := d.Encode(&b, r); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the wire encoding of r to w.
// Absent optional fields are omitted, unless they were declared with EmitNull.
func (d *Descriptor[T]) Encode(w io.Writer, r *T) error {
	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	setComma := false
	writeSep := func() error {
		if !setComma {
			setComma = true
			return nil
		}
		_, err := io.WriteString(w, ",")
		return err
	}

	for _, f := range d.fields {
		present := f.present(r)
		if !present && !f.emitNull {
			continue
		}
		if err := writeSep(); err != nil {
			return err
		}
		if err := writeKey(w, f.name); err != nil {
			return err
		}
		if !present {
			if _, err := io.WriteString(w, "null"); err != nil {
				return err
			}
			continue
		}
		if err := f.encode(w, r); err != nil {
			return fmt.Errorf("encode %s.%s: %w", d.name, f.name, err)
		}
	}

	if d.additional != nil {
		extra := *d.additional(r)
		for _, k := range slices.Sorted(maps.Keys(extra)) {
			if _, declared := d.byName[k]; declared {
				continue
			}
			if err := writeSep(); err != nil {
				return err
			}
			if err := writeKey(w, k); err != nil {
				return err
			}
			v := bytes.TrimSpace(extra[k])
			if len(v) == 0 {
				v = []byte("null")
			}
			if !json.Valid(v) {
				return fmt.Errorf("encode %s.%s: invalid JSON value", d.name, k)
			}
			if _, err := w.Write(v); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "}")
	return err
}

// Unmarshal decodes the payload b into r, replacing all previous contents.
//
// Unknown keys are ignored, or kept if the descriptor accepts additional properties.
// A null value is treated like an absent field, also when it repeats an earlier key.
// Decoding stops at the first error, which is a *MalformedPayloadError or wraps a *DecodeError.
func (d *Descriptor[T]) Unmarshal(b []byte, r *T) error {
	*r = *new(T)

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return &MalformedPayloadError{Type: d.name, Reason: "invalid JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &MalformedPayloadError{Type: d.name, Reason: "expected JSON object, got " + jsonKind(bytes.TrimSpace(b))}
	}

	seen := make([]bool, len(d.fields))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return &MalformedPayloadError{Type: d.name, Reason: "invalid JSON", Err: err}
		}
		key, ok := tok.(string)
		if !ok {
			return &MalformedPayloadError{Type: d.name, Reason: "invalid JSON object key"}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return &MalformedPayloadError{Type: d.name, Field: key, Reason: "invalid JSON", Err: err}
		}

		i, declared := d.byName[key]
		if !declared {
			if d.additional != nil {
				extra := d.additional(r)
				if *extra == nil {
					*extra = map[string]json.RawMessage{}
				}
				var compact bytes.Buffer
				if err := json.Compact(&compact, raw); err != nil {
					return fieldError(d.name, key, err)
				}
				(*extra)[key] = compact.Bytes()
			}
			continue
		}
		if isNull(raw) {
			d.fields[i].reset(r)
			seen[i] = false
			continue
		}
		if err := d.fields[i].decode(raw, r); err != nil {
			return fieldError(d.name, key, err)
		}
		seen[i] = true
	}

	if _, err := dec.Token(); err != nil {
		return &MalformedPayloadError{Type: d.name, Reason: "invalid JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &MalformedPayloadError{Type: d.name, Reason: "unexpected data after JSON object"}
	}

	for i, f := range d.fields {
		if f.required && !seen[i] {
			return &MalformedPayloadError{Type: d.name, Field: f.name, Reason: ReasonMissingField}
		}
	}
	return nil
}

// Equal reports whether a and b have the same wire encoding.
// Values that cannot be encoded, e.g. holding an enum value outside its member set,
// are compared field by field instead.
func (d *Descriptor[T]) Equal(a, b *T) bool {
	ab, errA := d.Marshal(a)
	bb, errB := d.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return bytes.Equal(ab, bb)
}

func writeKey(w io.Writer, key string) error {
	if err := encodeJSON(w, key); err != nil {
		return err
	}
	_, err := io.WriteString(w, ":")
	return err
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
