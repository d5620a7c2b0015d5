// Package model contains the interfaces shared by the generated models of the management and data plane.
//
// The models themselves live in the gen/management and gen/dataplane packages.
package model

import (
	"encoding/json"
	"fmt"
)

// Model is any generated model.
type Model interface {
	json.Marshaler
	fmt.Stringer
	ModelName() string
}

// ErrorModel is a generated model that describes a service error.
type ErrorModel interface {
	Model
	error
}
