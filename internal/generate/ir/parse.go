package ir

import (
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/damedic/azsearch-toolbox-go/internal/generate/model"
	"github.com/iancoleman/strcase"
)

const refPrefix = "#/definitions/"

// methods that every model gets and no accessor may shadow
var reservedMethods = []string{"String", "Equal", "ModelName", "MarshalJSON", "UnmarshalJSON", "Error", "AdditionalProperties"}

type parser struct {
	doc   *model.Document
	enums map[string]Enum
}

// Parse parses a definitions document into the intermediate representation of the package pkgName.
func Parse(doc *model.Document, pkgName string) (Package, error) {
	p := parser{doc: doc, enums: map[string]Enum{}}

	pkg := Package{
		Name:       pkgName,
		Title:      doc.Info.Title,
		APIVersion: doc.Info.Version,
	}

	for _, name := range slices.Sorted(maps.Keys(doc.Definitions)) {
		s := doc.Definitions[name]

		if len(s.Enum) > 0 {
			if _, err := p.addEnum(enumName(name, s), s, fmt.Sprintf("%s enumerates the values of %s.", name, name)); err != nil {
				return Package{}, err
			}
			continue
		}

		m, err := p.parseModel(name, s)
		if err != nil {
			return Package{}, err
		}
		pkg.Models = append(pkg.Models, m)
	}

	for _, name := range slices.Sorted(maps.Keys(p.enums)) {
		pkg.Enums = append(pkg.Enums, p.enums[name])
	}

	return pkg, nil
}

func (p *parser) parseModel(name string, s model.Schema) (Model, error) {
	if s.Type != "" && s.Type != "object" {
		return Model{}, fmt.Errorf("definition %s: unsupported type %q", name, s.Type)
	}

	m := Model{
		Name:           name,
		FileName:       toGoFileCasing(name),
		DescriptorName: strcase.ToLowerCamel(name) + "Descriptor",
		DocComment:     s.Description,
		Additional:     s.AdditionalProperties != nil && s.AdditionalProperties.Allowed && s.AdditionalProperties.Schema == nil,
		IsError:        s.XMSErrorResponse,
	}

	seen := map[string]string{}
	for _, prop := range s.Properties {
		f, err := p.parseField(name, prop, slices.Contains(s.Required, prop.Name))
		if err != nil {
			return Model{}, fmt.Errorf("definition %s: %w", name, err)
		}
		if other, ok := seen[f.Name]; ok {
			return Model{}, fmt.Errorf("definition %s: properties %s and %s both map to %s", name, other, prop.Name, f.Name)
		}
		seen[f.Name] = prop.Name
		m.Fields = append(m.Fields, f)
	}

	for _, r := range s.Required {
		if !slices.ContainsFunc(s.Properties, func(p model.Property) bool { return p.Name == r }) {
			return Model{}, fmt.Errorf("definition %s: required property %s is not declared", name, r)
		}
	}

	return m, nil
}

func (p *parser) parseField(modelName string, prop model.Property, required bool) (Field, error) {
	s := prop.Schema

	name := s.XMSClientName
	if name == "" {
		name = toGoFieldCasing(prop.Name)
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return Field{}, fmt.Errorf("property %s: %q is not an exported name, set x-ms-client-name", prop.Name, name)
	}
	if slices.Contains(reservedMethods, name) {
		return Field{}, fmt.Errorf("property %s: %s conflicts with a generated method, set x-ms-client-name", prop.Name, name)
	}

	f := Field{
		Name:        name,
		VarName:     toGoVarCasing(name),
		MarshalName: prop.Name,
		DocComment:  s.Description,
		Required:    required,
		ReadOnly:    s.ReadOnly,
		Nullable:    s.XNullable,
	}

	elem := s
	switch {
	case s.Type == "array":
		if s.Items == nil {
			return Field{}, fmt.Errorf("property %s: array without items", prop.Name)
		}
		f.Kind = List
		elem = *s.Items
	case s.Type == "object" && s.AdditionalProperties != nil && s.AdditionalProperties.Schema != nil:
		f.Kind = Map
		elem = *s.AdditionalProperties.Schema
	}
	if required && f.Kind != Single {
		return Field{}, fmt.Errorf("property %s: required lists and maps are not supported", prop.Name)
	}
	if required && s.XNullable {
		return Field{}, fmt.Errorf("property %s: required properties cannot be nullable", prop.Name)
	}

	t, err := p.resolveType(modelName, prop.Name, elem)
	if err != nil {
		return Field{}, fmt.Errorf("property %s: %w", prop.Name, err)
	}
	f.Type = t

	return f, nil
}

func (p *parser) resolveType(modelName, propName string, s model.Schema) (Type, error) {
	if s.Ref != "" {
		name, ok := strings.CutPrefix(s.Ref, refPrefix)
		if !ok {
			return Type{}, fmt.Errorf("unsupported reference %s", s.Ref)
		}
		def, ok := p.doc.Definitions[name]
		if !ok {
			return Type{}, fmt.Errorf("unresolved reference %s", s.Ref)
		}
		if len(def.Enum) > 0 {
			name = enumName(name, def)
			return Type{Name: name, Kind: EnumRef, Codec: strcase.ToLowerCamel(name) + "Codec"}, nil
		}
		return Type{Name: name, Kind: ModelRef}, nil
	}

	if len(s.Enum) > 0 {
		if s.XMSEnum == nil || s.XMSEnum.Name == "" {
			return Type{}, fmt.Errorf("inline enum without x-ms-enum name")
		}
		e, err := p.addEnum(s.XMSEnum.Name, s, fmt.Sprintf("%s enumerates the values of %s.%s.", s.XMSEnum.Name, modelName, propName))
		if err != nil {
			return Type{}, err
		}
		return Type{Name: e.Name, Kind: EnumRef, Codec: e.CodecName}, nil
	}

	switch s.Type {
	case "string":
		return Type{Name: "string", Kind: Primitive, Codec: "String"}, nil
	case "boolean":
		return Type{Name: "bool", Kind: Primitive, Codec: "Bool"}, nil
	case "integer":
		if s.Format == "int64" {
			return Type{Name: "int64", Kind: Primitive, Codec: "Int64"}, nil
		}
		return Type{Name: "int32", Kind: Primitive, Codec: "Int32"}, nil
	case "number":
		if s.Format == "double" || s.Format == "float" {
			return Type{Name: "float64", Kind: Primitive, Codec: "Float64"}, nil
		}
		return Type{Name: "Decimal", Kind: Decimal, Codec: "Decimal"}, nil
	default:
		return Type{}, fmt.Errorf("unsupported type %q", s.Type)
	}
}

func (p *parser) addEnum(name string, s model.Schema, doc string) (Enum, error) {
	if s.Type != "" && s.Type != "string" {
		return Enum{}, fmt.Errorf("enum %s: unsupported type %q", name, s.Type)
	}

	e := Enum{
		Name:       name,
		FileName:   toGoFileCasing(name),
		CodecName:  strcase.ToLowerCamel(name) + "Codec",
		DocComment: doc,
	}
	if s.Description != "" {
		e.DocComment += "\n\n" + s.Description
	}

	seen := map[string]string{}
	for _, v := range s.Enum {
		if v == "" {
			return Enum{}, fmt.Errorf("enum %s: empty value", name)
		}
		member := EnumMember{Name: name + strcase.ToCamel(v), Value: v}
		if other, ok := seen[member.Name]; ok {
			return Enum{}, fmt.Errorf("enum %s: values %q and %q both map to %s", name, other, v, member.Name)
		}
		seen[member.Name] = v
		e.Members = append(e.Members, member)
	}

	if existing, ok := p.enums[name]; ok {
		if !slices.Equal(existing.Members, e.Members) {
			return Enum{}, fmt.Errorf("enum %s: declared twice with different values", name)
		}
		return existing, nil
	}
	p.enums[name] = e
	return e, nil
}

func enumName(defName string, s model.Schema) string {
	if s.XMSEnum != nil && s.XMSEnum.Name != "" {
		return s.XMSEnum.Name
	}
	return defName
}

func toGoFileCasing(s string) string {
	return strcase.ToSnake(s)
}

func toGoFieldCasing(s string) string {
	return strcase.ToCamel(s)
}

func toGoVarCasing(s string) string {
	v := strcase.ToLowerCamel(s)
	if token.IsKeyword(v) {
		v += "_"
	}
	return v
}
