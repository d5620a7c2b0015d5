package wire_test

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/azsearch-toolbox-go/model/wire"
	"github.com/damedic/azsearch-toolbox-go/utils/ptr"
)

type color string

var colorEnum = wire.NewEnum[color]("Color", "red", "green")

type part struct {
	id      string
	label   *string
	color   *color
	tags    []string
	sizes   map[string]int32
	weight  *apd.Decimal
	comment *string
}

var partDescriptor = wire.NewDescriptor("Part",
	wire.Required("id", func(r *part) *string { return &r.id }, wire.String),
	wire.Optional("label", func(r *part) **string { return &r.label }, wire.String),
	wire.Optional("color", func(r *part) **color { return &r.color }, wire.Codec[color](colorEnum)),
	wire.List("tags", func(r *part) *[]string { return &r.tags }, wire.String),
	wire.Map("sizes", func(r *part) *map[string]int32 { return &r.sizes }, wire.Int32),
	wire.Optional("weight", func(r *part) **apd.Decimal { return &r.weight }, wire.Decimal),
	wire.Optional("comment", func(r *part) **string { return &r.comment }, wire.String, wire.EmitNull()),
)

type openPart struct {
	name  *string
	extra map[string]json.RawMessage
}

var openPartDescriptor = wire.NewDescriptor("OpenPart",
	wire.Optional("name", func(r *openPart) **string { return &r.name }, wire.String),
).WithAdditional(func(r *openPart) *map[string]json.RawMessage { return &r.extra })

func TestDescriptorMarshal(t *testing.T) {
	red := color("red")
	tests := []struct {
		name     string
		in       part
		expected string
	}{
		{
			name:     "only required",
			in:       part{id: "a"},
			expected: `{"id":"a","comment":null}`,
		},
		{
			name: "all fields",
			in: part{
				id:      "b",
				label:   ptr.To("<label>"),
				color:   &red,
				tags:    []string{"x", "y"},
				sizes:   map[string]int32{"z": 3, "a": 1},
				weight:  apd.New(125, -2),
				comment: ptr.To("c"),
			},
			expected: `{"id":"b","label":"<label>","color":"red","tags":["x","y"],"sizes":{"a":1,"z":3},"weight":1.25,"comment":"c"}`,
		},
		{
			name:     "empty list is kept",
			in:       part{id: "c", tags: []string{}},
			expected: `{"id":"c","tags":[],"comment":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := partDescriptor.Marshal(&tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, b)
			}
		})
	}
}

func TestDescriptorMarshalNonMember(t *testing.T) {
	blue := color("blue")
	_, err := partDescriptor.Marshal(&part{id: "a", color: &blue})
	if err == nil {
		t.Fatal("expected error for non-member enum value")
	}
}

func TestDescriptorUnmarshal(t *testing.T) {
	var p part
	err := partDescriptor.Unmarshal([]byte(`{
		"id": "a",
		"label": null,
		"color": "green",
		"tags": [],
		"weight": 0.1000000000000000000001,
		"unknown": {"nested": true}
	}`), &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.id != "a" {
		t.Errorf("expected id a, got %q", p.id)
	}
	if p.label != nil {
		t.Errorf("expected null label to be absent, got %q", *p.label)
	}
	if p.color == nil || *p.color != "green" {
		t.Errorf("expected color green, got %v", p.color)
	}
	if p.tags == nil || len(p.tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %#v", p.tags)
	}
	if p.weight == nil || p.weight.Text('G') != "0.1000000000000000000001" {
		t.Errorf("expected exact weight, got %v", p.weight)
	}
}

func TestDescriptorUnmarshalResets(t *testing.T) {
	p := part{id: "old", label: ptr.To("old")}
	if err := partDescriptor.Unmarshal([]byte(`{"id":"new"}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.label != nil {
		t.Errorf("expected label to be reset, got %q", *p.label)
	}
}

func TestDescriptorUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		field     string
		malformed bool
		token     string
	}{
		{name: "array payload", in: `[]`, malformed: true},
		{name: "null payload", in: `null`, malformed: true},
		{name: "invalid JSON", in: `{"id":`, field: "id", malformed: true},
		{name: "key without value", in: `{"id"`, malformed: true},
		{name: "truncated nested value", in: `{"id":"a","tags":["x"`, field: "tags", malformed: true},
		{name: "required reset by later null", in: `{"id":"a","id":null}`, field: "id", malformed: true},
		{name: "trailing data", in: `{"id":"a"} {}`, malformed: true},
		{name: "missing required", in: `{}`, field: "id", malformed: true},
		{name: "null required", in: `{"id":null}`, field: "id", malformed: true},
		{name: "wrong type", in: `{"id":1}`, field: "id", malformed: true},
		{name: "list not an array", in: `{"id":"a","tags":"x"}`, field: "tags", malformed: true},
		{name: "null list element", in: `{"id":"a","tags":["x",null]}`, field: "tags", malformed: true},
		{name: "null map value", in: `{"id":"a","sizes":{"a":null}}`, field: "sizes", malformed: true},
		{name: "decimal as string", in: `{"id":"a","weight":"1.5"}`, field: "weight", malformed: true},
		{name: "enum not a string", in: `{"id":"a","color":1}`, malformed: true},
		{name: "unknown enum token", in: `{"id":"a","color":"Red"}`, token: "Red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p part
			err := partDescriptor.Unmarshal([]byte(tt.in), &p)
			if err == nil {
				t.Fatal("expected error")
			}

			var malformed *wire.MalformedPayloadError
			if errors.As(err, &malformed) != tt.malformed {
				t.Fatalf("expected malformed=%v, got %v", tt.malformed, err)
			}
			if tt.malformed && tt.field != "" && malformed.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, malformed.Field)
			}

			if tt.token != "" {
				var decodeErr *wire.DecodeError
				if !errors.As(err, &decodeErr) {
					t.Fatalf("expected DecodeError, got %v", err)
				}
				if decodeErr.Token != tt.token || decodeErr.Type != "Color" {
					t.Errorf("unexpected DecodeError %+v", decodeErr)
				}
			}
		})
	}
}

func TestDescriptorUnmarshalDuplicateKeys(t *testing.T) {
	var p part
	in := `{"id":"a","label":"first","label":null,"tags":["x"],"tags":null,"color":"red","color":"green"}`
	if err := partDescriptor.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.label != nil {
		t.Errorf("expected later null to clear label, got %q", *p.label)
	}
	if p.tags != nil {
		t.Errorf("expected later null to clear tags, got %#v", p.tags)
	}
	if p.color == nil || *p.color != "green" {
		t.Errorf("expected last color green, got %v", p.color)
	}
}

func TestDescriptorAdditional(t *testing.T) {
	var p openPart
	in := `{"zeta":[1,2],"name":"n","alpha":{"b":true}}`
	if err := openPartDescriptor.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, slices.Sorted(maps.Keys(p.extra))); diff != "" {
		t.Errorf("additional keys mismatch (-want +got):\n%s", diff)
	}

	b, err := openPartDescriptor.Marshal(&p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"name":"n","alpha":{"b":true},"zeta":[1,2]}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestDescriptorEqual(t *testing.T) {
	a := part{id: "a", tags: []string{"x"}}
	b := part{id: "a", tags: []string{"x"}}
	c := part{id: "a", tags: []string{}}

	if !partDescriptor.Equal(&a, &b) {
		t.Error("expected equal parts")
	}
	if partDescriptor.Equal(&a, &c) {
		t.Error("expected absent and empty list to differ")
	}
}

func TestDescriptorEqualNonMember(t *testing.T) {
	blue := color("blue")
	other := color("blue")
	a := part{id: "a", color: &blue}
	b := part{id: "a", color: &other}
	c := part{id: "b", color: &blue}

	if !partDescriptor.Equal(&a, &b) {
		t.Error("expected identical parts with non-member color to be equal")
	}
	if partDescriptor.Equal(&a, &c) {
		t.Error("expected parts with different ids to differ")
	}
}

func TestDescriptorFieldNames(t *testing.T) {
	expected := []string{"id", "label", "color", "tags", "sizes", "weight", "comment"}
	if diff := cmp.Diff(expected, partDescriptor.FieldNames()); diff != "" {
		t.Errorf("field names mismatch (-want +got):\n%s", diff)
	}
	if partDescriptor.Name() != "Part" {
		t.Errorf("expected name Part, got %s", partDescriptor.Name())
	}
}
