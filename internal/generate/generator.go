// Package generate generates the model packages from the intermediate representation.
package generate

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

const moduleName = "github.com/damedic/azsearch-toolbox-go"

const headerComment = "Code generated by internal/cmd/generate. DO NOT EDIT."

// Generator contributes code to the generated files.
//
// GenerateType and GenerateEnum add to the file of a single model or enum and report
// whether they did so. GenerateAdditional creates or extends package level files.
type Generator interface {
	GenerateType(f *File, m ir.Model) bool
	GenerateEnum(f *File, e ir.Enum) bool
	GenerateAdditional(f func(fileName string, pkgName string) *File, pkg ir.Package)
}

// NoOpGenerator can be embedded to implement only some of the Generator methods.
type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, m ir.Model) bool {
	return false
}

func (g NoOpGenerator) GenerateEnum(f *File, e ir.Enum) bool {
	return false
}

func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, pkg ir.Package) {
}

// newFile returns a file of package pkgName with the generated code header and the import names of this module.
func newFile(pkgName string) *File {
	f := NewFile(pkgName)
	f.HeaderComment(headerComment)
	f.ImportName(moduleName+"/model", "model")
	f.ImportName(moduleName+"/model/wire", "wire")
	f.ImportName(moduleName+"/utils/ptr", "ptr")
	f.ImportName("github.com/cockroachdb/apd/v3", "apd")
	return f
}

// GenerateAll runs all generators on pkg and writes one file per model and enum, plus the package level files, to dir.
func GenerateAll(pkg ir.Package, dir string, generators ...Generator) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, m := range pkg.Models {
		f := newFile(pkg.Name)
		generated := false
		for _, g := range generators {
			if g.GenerateType(f, m) {
				generated = true
			}
		}
		if generated {
			if err := save(f, dir, m.FileName); err != nil {
				return err
			}
		}
	}

	for _, e := range pkg.Enums {
		f := newFile(pkg.Name)
		generated := false
		for _, g := range generators {
			if g.GenerateEnum(f, e) {
				generated = true
			}
		}
		if generated {
			if err := save(f, dir, e.FileName); err != nil {
				return err
			}
		}
	}

	additional := map[string]*File{}
	for _, g := range generators {
		g.GenerateAdditional(func(fileName string, pkgName string) *File {
			f, ok := additional[fileName]
			if !ok {
				f = newFile(pkgName)
				additional[fileName] = f
			}
			return f
		}, pkg)
	}
	for _, name := range slices.Sorted(maps.Keys(additional)) {
		if err := save(additional[name], dir, name); err != nil {
			return err
		}
	}

	return nil
}

func save(f *File, dir, fileName string) error {
	path := filepath.Join(dir, fileName+".go")
	if err := f.Save(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
