package generate

import (
	"fmt"

	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, pkg ir.Package) {
	file := f("doc", pkg.Name)
	file.PackageComment(fmt.Sprintf("Package %s provides generated models for %s, API version %s.", pkg.Name, pkg.Title, pkg.APIVersion))
}
