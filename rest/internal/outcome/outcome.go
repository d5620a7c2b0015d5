// Package outcome builds the error bodies of both API planes.
package outcome

import (
	"errors"

	"github.com/damedic/azsearch-toolbox-go/model"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
)

// Plane selects the error model of a route.
type Plane int

const (
	Management Plane = iota
	Dataplane
)

// Build constructs the plane specific error model with a single code and message.
func Build(plane Plane, code, message string) model.ErrorModel {
	switch plane {
	case Management:
		return management.CloudError{}.WithBody(
			management.CloudErrorBody{}.WithCode(code).WithMessage(message),
		)
	case Dataplane:
		return dataplane.ErrorResponse{}.WithDetail(
			dataplane.ErrorDetail{}.WithCode(code).WithMessage(message),
		)
	default:
		panic("unsupported plane")
	}
}

// Find returns the error model contained in err, if any.
func Find(err error) (model.ErrorModel, bool) {
	var ce management.CloudError
	if errors.As(err, &ce) {
		return ce, true
	}
	var er dataplane.ErrorResponse
	if errors.As(err, &er) {
		return er, true
	}
	return nil, false
}

// Code returns the error code of an error model.
func Code(m model.ErrorModel) string {
	switch m := m.(type) {
	case management.CloudError:
		body, _ := m.Body()
		code, _ := body.Code()
		return code
	case dataplane.ErrorResponse:
		detail, _ := m.Detail()
		code, _ := detail.Code()
		return code
	default:
		return ""
	}
}
