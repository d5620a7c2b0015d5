// Package json generates the descriptor tables and JSON methods of models and enums.
package json

import (
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

const wirePkg = "github.com/damedic/azsearch-toolbox-go/model/wire"

type DescriptorGenerator struct{}

func (g DescriptorGenerator) GenerateType(f *File, m ir.Model) bool {
	implementDescriptor(f, m)
	implementMarshal(f, m)
	implementUnmarshal(f, m)
	implementEqual(f, m)
	implementModelName(f, m)
	return true
}

func (g DescriptorGenerator) GenerateEnum(f *File, e ir.Enum) bool {
	implementEnumCodec(f, e)
	implementEnumJSON(f, e)
	implementEnumText(f, e)
	return true
}

func (g DescriptorGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, pkg ir.Package) {
}

func implementDescriptor(f *File, m ir.Model) {
	stmt := f.Var().Id(m.DescriptorName).Op("=").Qual(wirePkg, "NewDescriptor").CustomFunc(multiline("(", ")"), func(g *Group) {
		g.Lit(m.Name)
		for _, field := range m.Fields {
			g.Add(descriptorField(m, field))
		}
	})
	if m.Additional {
		stmt.Dot("WithAdditional").Call(
			Func().Params(Id("r").Op("*").Id(m.Name)).Op("*").Map(String()).Qual("encoding/json", "RawMessage").Block(
				Return(Op("&").Id("r").Dot("additionalProperties")),
			),
		)
	}
	f.Line()
}

func descriptorField(m ir.Model, field ir.Field) *Statement {
	var constructor string
	getter := Func().Params(Id("r").Op("*").Id(m.Name))
	switch {
	case field.Required:
		constructor = "Required"
		getter.Op("*").Add(elementType(field.Type))
	case field.Kind == ir.List:
		constructor = "List"
		getter.Op("*").Index().Add(elementType(field.Type))
	case field.Kind == ir.Map:
		constructor = "Map"
		getter.Op("*").Map(String()).Add(elementType(field.Type))
	default:
		constructor = "Optional"
		getter.Op("**").Add(elementType(field.Type))
	}
	getter.Block(Return(Op("&").Id("r").Dot(field.VarName)))

	args := []Code{Lit(field.MarshalName), getter, codec(field.Type)}
	if field.Nullable {
		args = append(args, Qual(wirePkg, "EmitNull").Call())
	}
	return Qual(wirePkg, constructor).Call(args...)
}

func codec(t ir.Type) *Statement {
	switch t.Kind {
	case ir.ModelRef:
		return Qual(wirePkg, "JSON").Types(Id(t.Name)).Call()
	case ir.EnumRef:
		return Id(t.Codec)
	default:
		return Qual(wirePkg, t.Codec)
	}
}

func elementType(t ir.Type) *Statement {
	if t.Kind == ir.Decimal {
		return Qual("github.com/cockroachdb/apd/v3", "Decimal")
	}
	return Id(t.Name)
}

func implementMarshal(f *File, m ir.Model) {
	f.Func().Params(Id("r").Id(m.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		Return(Id(m.DescriptorName).Dot("Marshal").Call(Op("&").Id("r"))),
	)
	f.Line()
}

func implementUnmarshal(f *File, m ir.Model) {
	f.Func().Params(Id("r").Op("*").Id(m.Name)).Id("UnmarshalJSON").Params(Id("b").Index().Byte()).Error().Block(
		Return(Id(m.DescriptorName).Dot("Unmarshal").Call(Id("b"), Id("r"))),
	)
	f.Line()
}

func implementEqual(f *File, m ir.Model) {
	f.Comment("Equal reports whether r and o have the same wire representation.")
	f.Func().Params(Id("r").Id(m.Name)).Id("Equal").Params(Id("o").Id(m.Name)).Bool().Block(
		Return(Id(m.DescriptorName).Dot("Equal").Call(Op("&").Id("r"), Op("&").Id("o"))),
	)
	f.Line()
}

func implementModelName(f *File, m ir.Model) {
	f.Func().Params(Id("r").Id(m.Name)).Id("ModelName").Params().String().Block(
		Return(Lit(m.Name)),
	)
	f.Line()
}

func implementEnumCodec(f *File, e ir.Enum) {
	f.Var().Id(e.CodecName).Op("=").Qual(wirePkg, "NewEnum").CustomFunc(multiline("(", ")"), func(g *Group) {
		g.Lit(e.Name)
		for _, m := range e.Members {
			g.Id(m.Name)
		}
	})
	f.Line()
}

func implementEnumJSON(f *File, e ir.Enum) {
	f.Func().Params(Id("e").Id(e.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		Return(Id(e.CodecName).Dot("Marshal").Call(Id("e"))),
	)
	f.Line()

	f.Func().Params(Id("e").Op("*").Id(e.Name)).Id("UnmarshalJSON").Params(Id("b").Index().Byte()).Error().Block(
		List(Id("v"), Err()).Op(":=").Id(e.CodecName).Dot("Decode").Call(Id("b")),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Op("*").Id("e").Op("=").Id("v"),
		Return(Nil()),
	)
	f.Line()
}

func implementEnumText(f *File, e ir.Enum) {
	f.Func().Params(Id("e").Id(e.Name)).Id("MarshalText").Params().Params(Index().Byte(), Error()).Block(
		Return(Id(e.CodecName).Dot("Text").Call(Id("e"))),
	)
	f.Line()

	f.Func().Params(Id("e").Op("*").Id(e.Name)).Id("UnmarshalText").Params(Id("b").Index().Byte()).Error().Block(
		List(Id("v"), Err()).Op(":=").Id(e.CodecName).Dot("Parse").Call(Id("string").Call(Id("b"))),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Op("*").Id("e").Op("=").Id("v"),
		Return(Nil()),
	)
	f.Line()
}

func multiline(open, close string) Options {
	return Options{Open: open, Close: close, Separator: ",", Multi: true}
}
