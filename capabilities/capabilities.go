// Package capabilities provides interfaces modeling what a search backend can do.
// This flexible architecture allows different use cases, such as
//
//   - building mock services or facades by implementing a custom backend
//   - using this library as a client (the REST clients implement these interfaces)
//
// A backend implements only the interfaces it supports:
//
//	func (b myBackend) Index(ctx context.Context, name string) (dataplane.SearchIndex, error) {}
//
//	func (b myBackend) SearchDocuments(ctx context.Context, index string, request dataplane.SearchRequest) (dataplane.SearchDocumentsResult, error) {}
//
// The REST server detects them by type assertion and answers every other route with a NotImplemented error.
//
// # Errors
//
// Backends signal service errors by returning a management.CloudError or dataplane.ErrorResponse.
// The server maps their code to an HTTP status, see rest.StatusForCode.
package capabilities

import (
	"context"

	"github.com/damedic/azsearch-toolbox-go/capabilities/update"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
)

// The LocationCapabilities interface provides the capability tree of a location.
//
// The returned root is named after the location, its supported families are the offered SKUs.
type LocationCapabilities interface {
	Capabilities(ctx context.Context, location string) (management.Capability, error)
}

// The ServiceRead interface provides read access to search service resources.
type ServiceRead interface {
	Service(ctx context.Context, resourceGroup, name string) (management.SearchService, error)
}

// The ServiceWrite interface provides creation and update of search service resources.
//
// The persisted service is returned.
type ServiceWrite interface {
	CreateOrUpdateService(ctx context.Context, resourceGroup, name string, service management.SearchService) (update.Result[management.SearchService], error)
}

// The ServiceDelete interface provides deletion of search service resources.
type ServiceDelete interface {
	DeleteService(ctx context.Context, resourceGroup, name string) error
}

// The Usages interface provides the quota usages of a location.
type Usages interface {
	Usages(ctx context.Context, location string) (management.QuotaUsagesListResult, error)
}

// The NameAvailability interface checks whether a search service name can be used.
type NameAvailability interface {
	CheckNameAvailability(ctx context.Context, input management.CheckNameAvailabilityInput) (management.CheckNameAvailabilityOutput, error)
}
