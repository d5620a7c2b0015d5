package generate

import (
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// EnumsGenerator generates the enumeration types with their members.
type EnumsGenerator struct {
	NoOpGenerator
}

func (g EnumsGenerator) GenerateEnum(f *File, e ir.Enum) bool {
	docComment(f, e.DocComment)
	f.Type().Id(e.Name).String()
	f.Line()

	f.Const().DefsFunc(func(g *Group) {
		for _, m := range e.Members {
			g.Id(m.Name).Id(e.Name).Op("=").Lit(m.Value)
		}
	})
	f.Line()

	f.Commentf("%sValues returns all members of %s in declaration order.", e.Name, e.Name)
	f.Func().Id(e.Name + "Values").Params().Index().Id(e.Name).Block(
		Return(Id(e.CodecName).Dot("Members").Call()),
	)
	f.Line()

	f.Commentf("Parse%s returns the member of %s for a wire token.", e.Name, e.Name)
	f.Comment("Unknown tokens yield a *wire.DecodeError.")
	f.Func().Id("Parse"+e.Name).Params(Id("token").String()).Params(Id(e.Name), Error()).Block(
		Return(Id(e.CodecName).Dot("Parse").Call(Id("token"))),
	)
	f.Line()

	return true
}
