package generate

import (
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// RegistryGenerator generates the lookup of models by name.
type RegistryGenerator struct {
	NoOpGenerator
}

func (g RegistryGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, pkg ir.Package) {
	file := f("registry", pkg.Name)

	file.Comment("DecodeModel decodes the payload b into the model called name.")
	file.Func().Id("DecodeModel").Params(Id("name").String(), Id("b").Index().Byte()).Params(
		Qual(moduleName+"/model", "Model"), Error(),
	).Block(
		Switch(Id("name")).BlockFunc(func(g *Group) {
			for _, m := range pkg.Models {
				g.Case(Lit(m.Name)).Block(
					Var().Id("r").Id(m.Name),
					If(Err().Op(":=").Id("r").Dot("UnmarshalJSON").Call(Id("b")), Err().Op("!=").Nil()).Block(
						Return(Nil(), Err()),
					),
					Return(Id("r"), Nil()),
				)
			}
			g.Default().Block(
				Return(Nil(), Qual("fmt", "Errorf").Call(Lit("unknown model %q"), Id("name"))),
			)
		}),
	)
	file.Line()

	file.Comment("ModelNames returns the names of all models in alphabetical order.")
	file.Func().Id("ModelNames").Params().Index().String().Block(
		Return(Index().String().CustomFunc(Options{Open: "{", Close: "}", Separator: ",", Multi: true}, func(g *Group) {
			for _, m := range pkg.Models {
				g.Lit(m.Name)
			}
		})),
	)
	file.Line()
}
