package generate

import (
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

type StringerGenerator struct {
	NoOpGenerator
}

func (g StringerGenerator) GenerateType(f *File, m ir.Model) bool {
	f.Func().Params(Id("r").Id(m.Name)).Id("String").Params().String().Block(
		List(Id("buf"), Id("err")).Op(":=").Qual("encoding/json", "MarshalIndent").Params(Id("r"), Lit(""), Lit("  ")),
		If(Id("err").Op("!=").Nil()).Block(
			Return(Lit("null")),
		),
		Return(Id("string").Params(Id("buf"))),
	)
	f.Line()

	return true
}

func (g StringerGenerator) GenerateEnum(f *File, e ir.Enum) bool {
	f.Func().Params(Id("e").Id(e.Name)).Id("String").Params().String().Block(
		Return(Id("string").Params(Id("e"))),
	)
	f.Line()

	return true
}
