package dataplane

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/damedic/azsearch-toolbox-go/model/wire"
)

const searchActionKey = "@search.action"

// NewIndexAction returns an action of the given type for doc.
// doc can be anything that marshals to a JSON object, typically a struct with json tags.
func NewIndexAction(action IndexActionType, doc any) (IndexAction, error) {
	fields, err := documentFields(doc)
	if err != nil {
		return IndexAction{}, fmt.Errorf("index action: %w", err)
	}
	delete(fields, searchActionKey)

	return IndexAction{}.
		WithActionType(action).
		WithAdditionalProperties(fields), nil
}

// DecodeDocument decodes the document properties of the action into v.
func (r IndexAction) DecodeDocument(v any) error {
	return decodeDocument(r.additionalProperties, v)
}

// DecodeDocument decodes the document properties of the result into v.
func (r SearchResult) DecodeDocument(v any) error {
	return decodeDocument(r.additionalProperties, v)
}

// Document is a single document of an index, as returned by a lookup by key.
// All of its properties are user defined.
type Document struct {
	fields map[string]json.RawMessage
}

// NewDocument returns the document holding the properties of doc.
// doc can be anything that marshals to a JSON object, typically a struct with json tags.
func NewDocument(doc any) (Document, error) {
	fields, err := documentFields(doc)
	if err != nil {
		return Document{}, fmt.Errorf("document: %w", err)
	}
	return Document{fields: fields}, nil
}

// Fields returns the properties of the document.
func (r Document) Fields() map[string]json.RawMessage {
	return maps.Clone(r.fields)
}

func (r Document) WithFields(v map[string]json.RawMessage) Document {
	r.fields = maps.Clone(v)
	return r
}

// DecodeDocument decodes the properties of the document into v.
func (r Document) DecodeDocument(v any) error {
	return decodeDocument(r.fields, v)
}

var documentDescriptor = wire.NewDescriptor[Document]("Document").
	WithAdditional(func(r *Document) *map[string]json.RawMessage {
		return &r.fields
	})

func (r Document) MarshalJSON() ([]byte, error) {
	return documentDescriptor.Marshal(&r)
}

func (r *Document) UnmarshalJSON(b []byte) error {
	return documentDescriptor.Unmarshal(b, r)
}

// Equal reports whether r and o have the same wire representation.
func (r Document) Equal(o Document) bool {
	return documentDescriptor.Equal(&r, &o)
}

func (r Document) ModelName() string {
	return "Document"
}

func (r Document) String() string {
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "null"
	}
	return string(buf)
}

func documentFields(doc any) (map[string]json.RawMessage, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if b = bytes.TrimSpace(b); len(b) == 0 || b[0] != '{' {
		return nil, fmt.Errorf("document must marshal to a JSON object, got %s", b)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return fields, nil
}

func decodeDocument(fields map[string]json.RawMessage, v any) error {
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
