// Command generate generates a model package from a Swagger 2.0 definitions document.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/damedic/azsearch-toolbox-go/internal/generate"
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	"github.com/damedic/azsearch-toolbox-go/internal/generate/json"
)

func main() {
	var definitions, pkgName, out string

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate models from a Swagger 2.0 definitions document",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("reading definitions...")
			doc, err := readDefinitions(definitions)
			if err != nil {
				return err
			}

			pkg, err := ir.Parse(doc, pkgName)
			if err != nil {
				return err
			}

			log.Printf("generating %d models and %d enums for package %s...", len(pkg.Models), len(pkg.Enums), pkg.Name)
			return generate.GenerateAll(pkg, out,
				generate.TypesGenerator{},
				generate.EnumsGenerator{},
				json.DescriptorGenerator{},
				generate.StringerGenerator{},
				generate.ErrorResponseGenerator{},
				generate.RegistryGenerator{},
				generate.ModelPkgDocGenerator{},
			)
		},
	}
	cmd.Flags().StringVar(&definitions, "definitions", "", "path to the definitions document")
	cmd.Flags().StringVar(&pkgName, "package", "", "name of the generated package")
	cmd.Flags().StringVar(&out, "out", "", "output directory")
	for _, name := range []string{"definitions", "package", "out"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Fatal(err)
		}
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
