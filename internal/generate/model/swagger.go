// Package model contains the subset of the Swagger 2.0 document model the generator reads.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Document struct {
	Swagger     string            `json:"swagger"`
	Info        Info              `json:"info"`
	Definitions map[string]Schema `json:"definitions"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type Schema struct {
	Type                 string                `json:"type"`
	Format               string                `json:"format"`
	Ref                  string                `json:"$ref"`
	Description          string                `json:"description"`
	Items                *Schema               `json:"items"`
	Properties           Properties            `json:"properties"`
	Required             []string              `json:"required"`
	Enum                 []string              `json:"enum"`
	ReadOnly             bool                  `json:"readOnly"`
	AdditionalProperties *AdditionalProperties `json:"additionalProperties"`
	XMSEnum              *XMSEnum              `json:"x-ms-enum"`
	XMSClientName        string                `json:"x-ms-client-name"`
	XNullable            bool                  `json:"x-nullable"`
	XMSErrorResponse     bool                  `json:"x-ms-error-response"`
}

type XMSEnum struct {
	Name          string `json:"name"`
	ModelAsString bool   `json:"modelAsString"`
}

// Property is a named schema of an object definition.
type Property struct {
	Name   string
	Schema Schema
}

// Properties keeps the properties of an object definition in document order,
// which is the wire order of the generated fields.
type Properties []Property

func (p *Properties) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties: expected object, got %v", tok)
	}

	*p = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("properties: expected key, got %v", tok)
		}
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf("properties: %s: %w", name, err)
		}
		*p = append(*p, Property{Name: name, Schema: s})
	}

	_, err = dec.Token()
	return err
}

// AdditionalProperties is either a boolean or the schema of the values of a map.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

func (a *AdditionalProperties) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &a.Allowed); err == nil {
		a.Schema = nil
		return nil
	}
	var s Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("additionalProperties: %w", err)
	}
	a.Allowed = true
	a.Schema = &s
	return nil
}
