package generate

import (
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// ErrorResponseGenerator implements error for the error response models.
type ErrorResponseGenerator struct {
	NoOpGenerator
}

func (g ErrorResponseGenerator) GenerateType(f *File, m ir.Model) bool {
	if !m.IsError {
		return false
	}

	f.Func().
		Params(Id("r").Id(m.Name)).
		Id("Error").
		Params().
		String().
		Block(
			Return(Id("r").Dot("String").Call()),
		)
	f.Line()

	return true
}
