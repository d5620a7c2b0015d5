package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/damedic/azsearch-toolbox-go/internal/generate/model"
)

func readDefinitions(path string) (*model.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse definitions %s: %w", path, err)
	}
	if doc.Swagger != "2.0" {
		return nil, fmt.Errorf("parse definitions %s: unsupported swagger version %q", path, doc.Swagger)
	}

	return &doc, nil
}
