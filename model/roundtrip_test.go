package model_test

import (
	"encoding/json"
	"testing"

	"github.com/damedic/azsearch-toolbox-go/model"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
	"github.com/damedic/azsearch-toolbox-go/testdata"
	"github.com/damedic/azsearch-toolbox-go/testdata/assert"
)

var decoders = map[string]func(name string, b []byte) (model.Model, error){
	"management": management.DecodeModel,
	"dataplane":  dataplane.DecodeModel,
}

func TestRoundtripJSON(t *testing.T) {
	for _, plane := range testdata.Planes {
		t.Run(plane, func(t *testing.T) {
			decode := decoders[plane]

			for name, jsonIn := range testdata.GetExamples(plane) {
				t.Run(name, func(t *testing.T) {
					t.Parallel()

					r, err := decode(testdata.ModelName(name), jsonIn)
					if err != nil {
						t.Fatalf("Failed to unmarshal JSON: %v", err)
					}
					if r.ModelName() != testdata.ModelName(name) {
						t.Errorf("expected model %s, got %s", testdata.ModelName(name), r.ModelName())
					}

					jsonOut, err := json.Marshal(r)
					if err != nil {
						t.Fatalf("Failed to marshal JSON: %v", err)
					}

					assert.JSONEqual(t, string(jsonIn), string(jsonOut))
				})
			}
		})
	}
}

func TestRoundtripStable(t *testing.T) {
	for _, plane := range testdata.Planes {
		decode := decoders[plane]

		for name, jsonIn := range testdata.GetExamples(plane) {
			t.Run(plane+"/"+name, func(t *testing.T) {
				first, err := decode(testdata.ModelName(name), jsonIn)
				if err != nil {
					t.Fatalf("Failed to unmarshal JSON: %v", err)
				}
				b1, err := json.Marshal(first)
				if err != nil {
					t.Fatalf("Failed to marshal JSON: %v", err)
				}

				second, err := decode(testdata.ModelName(name), b1)
				if err != nil {
					t.Fatalf("Failed to unmarshal JSON: %v", err)
				}
				b2, err := json.Marshal(second)
				if err != nil {
					t.Fatalf("Failed to marshal JSON: %v", err)
				}

				if string(b1) != string(b2) {
					t.Errorf("encoding is not stable:\n%s\n%s", b1, b2)
				}
			})
		}
	}
}
