package generate

import (
	"strings"

	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// TypesGenerator generates the model structs with their constructors, accessors and builders.
type TypesGenerator struct {
	NoOpGenerator
}

func (g TypesGenerator) GenerateType(f *File, m ir.Model) bool {
	generateStruct(f, m)
	generateConstructor(f, m)
	generateAccessors(f, m)
	generateBuilders(f, m)
	return true
}

func generateStruct(f *File, m ir.Model) {
	docComment(f, m.DocComment)
	f.Type().Id(m.Name).StructFunc(func(g *Group) {
		for _, field := range m.Fields {
			g.Id(field.VarName).Add(FieldType(field))
		}
		if m.Additional {
			g.Id("additionalProperties").Map(String()).Qual("encoding/json", "RawMessage")
		}
	})
	f.Line()
}

func generateConstructor(f *File, m ir.Model) {
	required := m.RequiredFields()
	if len(required) == 0 {
		return
	}

	f.Commentf("New%s returns a %s with all required fields set.", m.Name, m.Name)
	f.Func().Id("New"+m.Name).ParamsFunc(func(g *Group) {
		for _, field := range required {
			g.Id(field.VarName).Add(ElementType(field.Type))
		}
	}).Id(m.Name).Block(
		Return(Id(m.Name).Values(DictFunc(func(d Dict) {
			for _, field := range required {
				d[Id(field.VarName)] = Id(field.VarName)
			}
		}))),
	)
	f.Line()
}

func generateAccessors(f *File, m ir.Model) {
	for _, field := range m.Fields {
		if doc := accessorDoc(field); doc != "" {
			f.Comment(doc)
		}

		ref := Id("r").Dot(field.VarName)
		stmt := f.Func().Params(Id("r").Id(m.Name)).Id(field.Name).Params()

		switch {
		case field.Required:
			stmt.Add(ElementType(field.Type)).Block(Return(ref))
		case field.Kind == ir.List:
			stmt.Params(Index().Add(ElementType(field.Type)), Bool()).Block(
				Return(Qual("slices", "Clone").Call(ref), ref.Clone().Op("!=").Nil()),
			)
		case field.Kind == ir.Map:
			stmt.Params(Map(String()).Add(ElementType(field.Type)), Bool()).Block(
				Return(Qual("maps", "Clone").Call(ref), ref.Clone().Op("!=").Nil()),
			)
		default:
			stmt.Params(ElementType(field.Type), Bool()).Block(
				Return(Qual(moduleName+"/utils/ptr", "Deref").Call(ref), ref.Clone().Op("!=").Nil()),
			)
		}
		f.Line()
	}

	if m.Additional {
		f.Comment("AdditionalProperties returns the properties that are not declared by the model.")
		f.Func().Params(Id("r").Id(m.Name)).Id("AdditionalProperties").Params().Map(String()).Qual("encoding/json", "RawMessage").Block(
			Return(Qual("maps", "Clone").Call(Id("r").Dot("additionalProperties"))),
		)
		f.Line()
	}
}

func generateBuilders(f *File, m ir.Model) {
	for _, field := range m.Fields {
		if field.ReadOnly {
			continue
		}

		ref := Id("r").Dot(field.VarName)
		var param, assign *Statement
		switch {
		case field.Required:
			param = ElementType(field.Type)
			assign = ref.Op("=").Id("v")
		case field.Kind == ir.List:
			param = Index().Add(ElementType(field.Type))
			assign = ref.Op("=").Qual("slices", "Clone").Call(Id("v"))
		case field.Kind == ir.Map:
			param = Map(String()).Add(ElementType(field.Type))
			assign = ref.Op("=").Qual("maps", "Clone").Call(Id("v"))
		default:
			param = ElementType(field.Type)
			assign = ref.Op("=").Op("&").Id("v")
		}

		f.Func().Params(Id("r").Id(m.Name)).Id("With"+field.Name).Params(Id("v").Add(param)).Id(m.Name).Block(
			assign,
			Return(Id("r")),
		)
		f.Line()
	}

	if m.Additional {
		f.Func().Params(Id("r").Id(m.Name)).Id("WithAdditionalProperties").Params(
			Id("v").Map(String()).Qual("encoding/json", "RawMessage"),
		).Id(m.Name).Block(
			Id("r").Dot("additionalProperties").Op("=").Qual("maps", "Clone").Call(Id("v")),
			Return(Id("r")),
		)
		f.Line()
	}
}

// FieldType returns the type of the struct field holding f.
func FieldType(f ir.Field) *Statement {
	switch {
	case f.Kind == ir.List:
		return Index().Add(ElementType(f.Type))
	case f.Kind == ir.Map:
		return Map(String()).Add(ElementType(f.Type))
	case f.Required:
		return ElementType(f.Type)
	default:
		return Op("*").Add(ElementType(f.Type))
	}
}

// ElementType returns the Go type of a single value of t.
func ElementType(t ir.Type) *Statement {
	if t.Kind == ir.Decimal {
		return Qual("github.com/cockroachdb/apd/v3", "Decimal")
	}
	return Id(t.Name)
}

func accessorDoc(f ir.Field) string {
	d := strings.TrimSpace(f.DocComment)
	switch {
	case d == "":
		return ""
	case strings.HasPrefix(d, "Whether "):
		return f.Name + " reports whether " + strings.TrimPrefix(d, "Whether ")
	default:
		return f.Name + " returns " + strings.ToLower(d[:1]) + d[1:]
	}
}

func docComment(f *File, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		f.Comment(line)
	}
}
