package generate_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/damedic/azsearch-toolbox-go/internal/generate"
	"github.com/damedic/azsearch-toolbox-go/internal/generate/ir"
	gojson "github.com/damedic/azsearch-toolbox-go/internal/generate/json"
	"github.com/damedic/azsearch-toolbox-go/internal/generate/model"
)

var allGenerators = []generate.Generator{
	generate.TypesGenerator{},
	generate.EnumsGenerator{},
	gojson.DescriptorGenerator{},
	generate.StringerGenerator{},
	generate.ErrorResponseGenerator{},
	generate.RegistryGenerator{},
	generate.ModelPkgDocGenerator{},
}

func parsePackage(t *testing.T, definitions, pkgName string) ir.Package {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "cmd", "generate", "definitions", definitions))
	if err != nil {
		t.Fatal(err)
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	pkg, err := ir.Parse(&doc, pkgName)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}

func readGenerated(t *testing.T, dir, file string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestGenerateManagement(t *testing.T) {
	pkg := parsePackage(t, "management.json", "management")
	dir := t.TempDir()

	if err := generate.GenerateAll(pkg, dir, allGenerators...); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var files []string
	for _, e := range entries {
		files = append(files, e.Name())
	}
	for _, expected := range []string{"capability.go", "capability_status.go", "cloud_error.go", "doc.go", "registry.go", "search_service.go"} {
		if !slices.Contains(files, expected) {
			t.Errorf("expected %s to be generated, got %v", expected, files)
		}
	}

	tests := []struct {
		file     string
		snippets []string
	}{
		{
			file: "capability.go",
			snippets: []string{
				"// Code generated by internal/cmd/generate. DO NOT EDIT.",
				"type Capability struct {",
				"\tsupportedFamilies []Capability\n",
				"\tstatus            *CapabilityStatus\n",
				"var capabilityDescriptor = wire.NewDescriptor(",
				"}, wire.JSON[Capability]()),",
				"}, capabilityStatusCodec),",
				"func (r Capability) Equal(o Capability) bool {",
				"func (r Capability) ModelName() string {",
				"func (r Capability) String() string {",
			},
		},
		{
			file: "capability_status.go",
			snippets: []string{
				"type CapabilityStatus string",
				`CapabilityStatusVisible   CapabilityStatus = "Visible"`,
				"func ParseCapabilityStatus(token string) (CapabilityStatus, error) {",
				"var capabilityStatusCodec = wire.NewEnum(",
				"func (e *CapabilityStatus) UnmarshalText(b []byte) error {",
			},
		},
		{
			file:     "cloud_error.go",
			snippets: []string{"func (r CloudError) Error() string {"},
		},
		{
			file:     "search_service.go",
			snippets: []string{"func NewSearchService(location string) SearchService {"},
		},
		{
			file:     "doc.go",
			snippets: []string{"// Package management provides generated models for SearchManagementClient, API version 2023-11-01."},
		},
		{
			file: "registry.go",
			snippets: []string{
				"func DecodeModel(name string, b []byte) (model.Model, error) {",
				`case "Capability":`,
				`return nil, fmt.Errorf("unknown model %q", name)`,
				"func ModelNames() []string {",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			content := readGenerated(t, dir, tt.file)
			for _, s := range tt.snippets {
				if !strings.Contains(content, s) {
					t.Errorf("expected %s to contain %q", tt.file, s)
				}
			}
		})
	}

	if content := readGenerated(t, dir, "capability.go"); strings.Contains(content, "func (r Capability) Error()") {
		t.Error("only error models implement error")
	}
}

func TestGenerateDataplane(t *testing.T) {
	pkg := parsePackage(t, "dataplane.json", "dataplane")
	dir := t.TempDir()

	if err := generate.GenerateAll(pkg, dir, allGenerators...); err != nil {
		t.Fatal(err)
	}

	field := readGenerated(t, dir, "search_field.go")
	for _, s := range []string{
		"func NewSearchField(name string, type_ SearchFieldDataType) SearchField {",
		"}, wire.String, wire.EmitNull()),",
	} {
		if !strings.Contains(field, s) {
			t.Errorf("expected search_field.go to contain %q", s)
		}
	}

	result := readGenerated(t, dir, "search_result.go")
	for _, s := range []string{
		"additionalProperties map[string]json.RawMessage",
		`wire.Optional("@search.score"`,
		").WithAdditional(",
		"func (r SearchResult) Score() (apd.Decimal, bool) {",
	} {
		if !strings.Contains(result, s) {
			t.Errorf("expected search_result.go to contain %q", s)
		}
	}
}

func TestGenerateOnlyRequestedFiles(t *testing.T) {
	pkg := parsePackage(t, "management.json", "management")
	dir := t.TempDir()

	if err := generate.GenerateAll(pkg, dir, generate.RegistryGenerator{}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "registry.go" {
		t.Errorf("expected only registry.go, got %v", entries)
	}
}
