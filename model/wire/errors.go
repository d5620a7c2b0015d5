package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeError is returned when a wire token does not name a member of an enumeration.
type DecodeError struct {
	// Type is the name of the enumeration type.
	Type string
	// Token is the offending wire token.
	Token string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown %s token %q", e.Type, e.Token)
}

// MalformedPayloadError is returned when a payload lacks structural parts a model requires:
// the payload is not a JSON object, is not valid JSON, carries a value of the wrong JSON type
// or misses a required field.
type MalformedPayloadError struct {
	// Type is the name of the model being decoded.
	Type string
	// Field is the wire name of the field, empty if the error concerns the whole object.
	Field string
	// Reason describes what is missing or wrong.
	Reason string
	// Err is the underlying JSON error, if any.
	Err error
}

// ReasonMissingField is the Reason of a MalformedPayloadError for a required field that is missing or null.
const ReasonMissingField = "missing required field"

func (e *MalformedPayloadError) Error() string {
	msg := "malformed " + e.Type
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// structuralError is a decoding failure of the JSON shape that is not reported by encoding/json itself.
type structuralError struct {
	reason string
}

func (e *structuralError) Error() string {
	return e.reason
}

// fieldError attaches the field path to err.
// Errors of the JSON layer itself are turned into MalformedPayloadErrors,
// errors that are already typed are wrapped so errors.As still finds them.
func fieldError(typeName, field string, err error) error {
	var (
		malformed *MalformedPayloadError
		decodeErr *DecodeError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		structErr *structuralError
	)
	switch {
	case errors.As(err, &malformed), errors.As(err, &decodeErr):
		return fmt.Errorf("%s.%s: %w", typeName, field, err)
	case errors.As(err, &structErr):
		return &MalformedPayloadError{Type: typeName, Field: field, Reason: structErr.reason}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return &MalformedPayloadError{Type: typeName, Field: field, Reason: "invalid JSON", Err: err}
	case errors.As(err, &typeErr):
		return &MalformedPayloadError{Type: typeName, Field: field, Reason: "unexpected JSON type", Err: err}
	default:
		return fmt.Errorf("%s.%s: %w", typeName, field, err)
	}
}
