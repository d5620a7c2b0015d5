// Package ir contains the intermediate representation the generators work on.
package ir

// Package is one generated Go package, built from one definitions document.
type Package struct {
	Name       string
	Title      string
	APIVersion string
	Models     []Model
	Enums      []Enum
}

type Model struct {
	Name           string
	FileName       string
	DescriptorName string
	DocComment     string
	Fields         []Field
	// Additional is set for open models that keep undeclared properties.
	Additional bool
	IsError    bool
}

// RequiredFields returns the fields a constructor has to set.
func (m Model) RequiredFields() []Field {
	var required []Field
	for _, f := range m.Fields {
		if f.Required {
			required = append(required, f)
		}
	}
	return required
}

type FieldKind int

const (
	Single FieldKind = iota
	List
	Map
)

type Field struct {
	// Name is the exported name used for accessors and builders.
	Name string
	// VarName is the name of the unexported struct field and of constructor parameters.
	VarName     string
	MarshalName string
	DocComment  string
	Kind        FieldKind
	Type        Type
	Required    bool
	ReadOnly    bool
	Nullable    bool
}

type TypeKind int

const (
	Primitive TypeKind = iota
	Decimal
	ModelRef
	EnumRef
)

type Type struct {
	// Name is the Go type name, a builtin for primitives.
	Name string
	Kind TypeKind
	// Codec is the name of the codec, qualified by the wire package for primitives.
	Codec string
}

type Enum struct {
	Name       string
	FileName   string
	CodecName  string
	DocComment string
	Members    []EnumMember
}

type EnumMember struct {
	Name  string
	Value string
}
