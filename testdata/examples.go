package testdata

import (
	"embed"
	"io/fs"
	"log"
	"path"
	"strings"
)

//go:embed examples
var examples embed.FS

// Planes lists the API planes with example payloads.
var Planes = []string{"management", "dataplane"}

// GetExamples returns the example payloads of plane keyed by file name.
func GetExamples(plane string) map[string][]byte {
	dir := path.Join("examples", plane)
	entries, err := fs.ReadDir(examples, dir)
	if err != nil {
		log.Fatal(err)
	}

	out := map[string][]byte{}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		out[e.Name()], err = fs.ReadFile(examples, path.Join(dir, e.Name()))
		if err != nil {
			log.Fatal(err)
		}
	}
	return out
}

// ModelName returns the model an example file holds.
// Files are named after the model, optionally followed by a dash and a variant, e.g. "SearchService-running.json".
func ModelName(fileName string) string {
	name := strings.TrimSuffix(fileName, path.Ext(fileName))
	name, _, _ = strings.Cut(name, "-")
	return name
}
