package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/damedic/azsearch-toolbox-go/model"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/wire"
	"github.com/damedic/azsearch-toolbox-go/rest/internal/outcome"
)

// Error codes returned by the server for failures that do not originate from the backend.
const (
	CodeNotImplemented      = "NotImplemented"
	CodeInvalidRequestBody  = "InvalidRequestBody"
	CodeInvalidParameter    = "InvalidParameter"
	CodeInternalServerError = "InternalServerError"
)

// ResponseError is returned by the clients for every response with an unexpected status code.
type ResponseError struct {
	StatusCode int
	// RequestID is the x-ms-request-id of the response, or the client request id if the service did not echo one.
	RequestID string
	// Err is the decoded error body, a management.CloudError or dataplane.ErrorResponse.
	// If the body could not be decoded, Err describes the raw body instead.
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected status code %d (request %s): %v", e.StatusCode, e.RequestID, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// Code returns the service error code, or an empty string if the body carried none.
func (e *ResponseError) Code() string {
	if m, ok := outcome.Find(e.Err); ok {
		return outcome.Code(m)
	}
	return ""
}

// IndexingError reports the failed actions of an indexing batch.
type IndexingError struct {
	Failed []dataplane.IndexingResult
}

func (e *IndexingError) Error() string {
	keys := make([]string, len(e.Failed))
	for i, r := range e.Failed {
		key, _ := r.Key()
		status, _ := r.StatusCode()
		keys[i] = fmt.Sprintf("%s (%d)", key, status)
		if msg, ok := r.ErrorMessage(); ok {
			keys[i] = fmt.Sprintf("%s (%d: %s)", key, status, msg)
		}
	}
	return fmt.Sprintf("%d indexing actions failed: %s", len(e.Failed), strings.Join(keys, ", "))
}

// CheckIndexing returns an *IndexingError if any action of result failed.
func CheckIndexing(result dataplane.IndexDocumentsResult) error {
	results, _ := result.Results()
	var failed []dataplane.IndexingResult
	for _, r := range results {
		if ok, _ := r.Succeeded(); !ok {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &IndexingError{Failed: failed}
}

var codeToHTTPStatus = map[string]int{
	// invalid requests
	"BadRequest":              http.StatusBadRequest,
	"InvalidRequestContent":   http.StatusBadRequest,
	CodeInvalidRequestBody:    http.StatusBadRequest,
	CodeInvalidParameter:      http.StatusBadRequest,
	"InvalidRequestParameter": http.StatusBadRequest,
	"InvalidResourceName":     http.StatusBadRequest,
	"InvalidName":             http.StatusBadRequest,
	"MissingRequiredField":    http.StatusBadRequest,
	"UnknownEnumValue":        http.StatusBadRequest,

	// security
	"AuthenticationFailed": http.StatusUnauthorized,
	"InvalidApiKey":        http.StatusUnauthorized,
	"AuthorizationFailed":  http.StatusForbidden,
	"Forbidden":            http.StatusForbidden,

	// missing resources
	"ResourceNotFound":      http.StatusNotFound,
	"ResourceGroupNotFound": http.StatusNotFound,
	"SubscriptionNotFound":  http.StatusNotFound,
	"IndexNotFound":         http.StatusNotFound,
	"DocumentNotFound":      http.StatusNotFound,

	// conflicts
	"Conflict":           http.StatusConflict,
	"ResourceExists":     http.StatusConflict,
	"IndexAlreadyExists": http.StatusConflict,
	"QuotaExceeded":      http.StatusConflict,
	"PreconditionFailed": http.StatusPreconditionFailed,
	"RequestTooLarge":    http.StatusRequestEntityTooLarge,

	// server side
	CodeNotImplemented:      http.StatusNotImplemented,
	CodeInternalServerError: http.StatusInternalServerError,
	"TooManyRequests":       http.StatusTooManyRequests,
	"ServiceUnavailable":    http.StatusServiceUnavailable,
	"GatewayTimeout":        http.StatusGatewayTimeout,
}

// StatusForCode returns the HTTP status the server answers with for a service error code.
// Unknown codes are client errors.
func StatusForCode(code string) int {
	if status, ok := codeToHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// errToModel converts err into the error body of plane and its HTTP status.
// Errors received from an upstream service keep their status code.
func errToModel(plane outcome.Plane, err error) (int, model.ErrorModel) {
	if m, ok := outcome.Find(err); ok {
		var respErr *ResponseError
		if errors.As(err, &respErr) {
			return respErr.StatusCode, m
		}
		return StatusForCode(outcome.Code(m)), m
	}
	return http.StatusInternalServerError, outcome.Build(plane, CodeInternalServerError, err.Error())
}

// invalidBodyError reports a request body that could not be decoded.
// Wire errors name the offending model and field.
func invalidBodyError(plane outcome.Plane, err error) error {
	var (
		malformed *wire.MalformedPayloadError
		decodeErr *wire.DecodeError
	)
	code := CodeInvalidRequestBody
	switch {
	case errors.As(err, &decodeErr):
		code = "UnknownEnumValue"
	case errors.As(err, &malformed) && malformed.Reason == wire.ReasonMissingField:
		code = "MissingRequiredField"
	}
	return outcome.Build(plane, code, err.Error())
}

func invalidParameterError(plane outcome.Plane, err error) error {
	return outcome.Build(plane, CodeInvalidParameter, err.Error())
}

func notImplementedError(plane outcome.Plane, interaction string) error {
	return outcome.Build(plane, CodeNotImplemented, fmt.Sprintf("%s interaction not implemented", interaction))
}
