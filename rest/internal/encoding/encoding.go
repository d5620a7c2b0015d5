// Package encoding reads and writes the JSON bodies of REST requests and responses.
package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
)

// FormatJSON is the only media type of both API planes.
const FormatJSON = "application/json"

// IsJSON reports whether the Content-Type or Accept value contentType selects JSON.
// An empty value is accepted as JSON.
func IsJSON(contentType string) bool {
	if contentType == "" || contentType == "*/*" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == FormatJSON || mediaType == "text/json" || mediaType == "application/*"
}

// Decode reads the whole body and decodes it into a model of type T.
//
// Errors of the model decoder are returned unwrapped,
// so that *wire.MalformedPayloadError and *wire.DecodeError can be found with errors.As.
func Decode[T any, PT interface {
	*T
	json.Unmarshaler
}](r io.Reader) (T, error) {
	var v T
	b, err := io.ReadAll(r)
	if err != nil {
		return v, fmt.Errorf("read body: %w", err)
	}
	if err := PT(&v).UnmarshalJSON(b); err != nil {
		return v, err
	}
	return v, nil
}

// Encode writes the JSON encoding of v followed by a newline.
func Encode(w io.Writer, v json.Marshaler) error {
	b, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// Reader returns the encoding of v as request body.
func Reader(v json.Marshaler) (io.Reader, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return &buf, nil
}
