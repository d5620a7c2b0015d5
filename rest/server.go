// Package rest provides REST clients and a REST server for both API planes of the search service.
//
// # Clients
//
// ManagementClient covers the resource provider (capabilities, services, usages, name availability),
// ServiceClient covers the data plane of one search service (indexes, documents, search).
// Every request carries the api-version query parameter and a fresh x-ms-client-request-id.
// Responses with an unexpected status are returned as *ResponseError wrapping the decoded
// management.CloudError or dataplane.ErrorResponse.
//
// # Server
//
// Capabilities are detected by type assertion on the backend, see package capabilities.
// Routes of interactions the backend does not implement answer with 501 and a NotImplemented error body.
//
// Currently, installed patterns are:
//   - capabilities: "GET /subscriptions/{subscription}/providers/Microsoft.Search/locations/{location}/capabilities"
//   - usages: "GET /subscriptions/{subscription}/providers/Microsoft.Search/locations/{location}/usages"
//   - name availability: "POST /subscriptions/{subscription}/providers/Microsoft.Search/checkNameAvailability"
//   - service read, create or update, delete:
//     "GET|PUT|DELETE /subscriptions/{subscription}/resourceGroups/{resourceGroup}/providers/Microsoft.Search/searchServices/{name}"
//   - index list: "GET /indexes"
//   - index read, create or update, delete: "GET|PUT|DELETE /indexes/{name}"
//   - index statistics: "GET /indexes/{name}/stats"
//   - document indexing: "POST /indexes/{name}/docs/index"
//   - document lookup: "GET /indexes/{name}/docs/{key}"
//   - document search: "GET /indexes/{name}/docs", "POST /indexes/{name}/docs/search.post.search"
//
// If you do not want the handlers installed at the root, use something like
//
//	mux.Handle("/path/", http.StripPrefix("/path", server))
package rest

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/damedic/azsearch-toolbox-go/capabilities"
	"github.com/damedic/azsearch-toolbox-go/capabilities/search"
	"github.com/damedic/azsearch-toolbox-go/model"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
	"github.com/damedic/azsearch-toolbox-go/rest/internal/encoding"
	"github.com/damedic/azsearch-toolbox-go/rest/internal/outcome"
)

var (
	defaultServerMaxTop     = 1000
	defaultServerDefaultTop = 50
)

const (
	subscriptionPrefix = "/subscriptions/{subscription}"
	providerPrefix     = subscriptionPrefix + "/providers/Microsoft.Search"
	servicePath        = subscriptionPrefix + "/resourceGroups/{resourceGroup}/providers/Microsoft.Search/searchServices/{name}"
)

// Server serves the management and data plane routes, dispatching to Backend.
//
// The Backend field can hold any value implementing at least one interface of package capabilities:
//   - capabilities.LocationCapabilities, capabilities.Usages, capabilities.NameAvailability
//   - capabilities.ServiceRead, capabilities.ServiceWrite, capabilities.ServiceDelete
//   - capabilities.IndexRead, capabilities.IndexCreateOrUpdate, capabilities.IndexDelete, capabilities.IndexStatistics
//   - capabilities.DocumentIndex, capabilities.DocumentLookup, capabilities.DocumentSearch
//
// Errors returned by the backend that are (or wrap) a management.CloudError or dataplane.ErrorResponse
// are returned to the caller with the status of their code, see StatusForCode.
// A *ResponseError from an upstream service keeps its status code, so clients can serve as backends.
// All other errors are answered with 500 InternalServerError.
type Server struct {
	// Backend implementing the capability interfaces.
	Backend any

	// MaxTop caps the page size of document searches.
	// Defaults to 1000.
	MaxTop int
	// DefaultTop is the page size of document searches without $top.
	// Defaults to 50.
	DefaultTop int
	// StrictSearchParameters when true causes the server to return an error
	// if unsupported query parameters are used with a GET search. When false (default),
	// unsupported parameters are silently ignored.
	StrictSearchParameters bool
	// Logger for request errors.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// internal fields
	muxOnce sync.Once
	mux     *http.ServeMux
}

func (s *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	s.muxOnce.Do(s.registerRoutes)

	if id := request.Header.Get(headerClientRequestID); id != "" {
		writer.Header().Set(headerClientRequestID, id)
	}
	writer.Header().Set(headerRequestID, uuid.NewString())

	s.mux.ServeHTTP(writer, request)
}

func (s *Server) registerRoutes() {
	s.mux = http.NewServeMux()
	s.mux.Handle("GET "+providerPrefix+"/locations/{location}/capabilities", http.HandlerFunc(s.handleCapabilities))
	s.mux.Handle("GET "+providerPrefix+"/locations/{location}/usages", http.HandlerFunc(s.handleUsages))
	s.mux.Handle("POST "+providerPrefix+"/checkNameAvailability", http.HandlerFunc(s.handleCheckNameAvailability))
	s.mux.Handle("GET "+servicePath, http.HandlerFunc(s.handleServiceRead))
	s.mux.Handle("PUT "+servicePath, http.HandlerFunc(s.handleServiceWrite))
	s.mux.Handle("DELETE "+servicePath, http.HandlerFunc(s.handleServiceDelete))

	s.mux.Handle("GET /indexes", http.HandlerFunc(s.handleIndexList))
	s.mux.Handle("GET /indexes/{name}", http.HandlerFunc(s.handleIndexRead))
	s.mux.Handle("PUT /indexes/{name}", http.HandlerFunc(s.handleIndexWrite))
	s.mux.Handle("DELETE /indexes/{name}", http.HandlerFunc(s.handleIndexDelete))
	s.mux.Handle("GET /indexes/{name}/stats", http.HandlerFunc(s.handleIndexStatistics))
	s.mux.Handle("POST /indexes/{name}/docs/index", http.HandlerFunc(s.handleDocumentIndex))
	s.mux.Handle("GET /indexes/{name}/docs", http.HandlerFunc(s.handleSearchGet))
	s.mux.Handle("GET /indexes/{name}/docs/{key}", http.HandlerFunc(s.handleDocumentLookup))
	s.mux.Handle("POST /indexes/{name}/docs/search.post.search", http.HandlerFunc(s.handleSearchPost))
}

func (s *Server) logger() *slog.Logger {
	return cmp.Or(s.Logger, slog.Default())
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")

	backend, impl := s.Backend.(capabilities.LocationCapabilities)
	if !s.checkInteractionImplemented(impl, outcome.Management, "capabilities", w) {
		return
	}

	capability, err := backend.Capabilities(r.Context(), location)
	if err != nil {
		s.logger().Error("error reading capabilities", "location", location, "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	returnResult(w, capability, http.StatusOK)
}

func (s *Server) handleUsages(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")

	backend, impl := s.Backend.(capabilities.Usages)
	if !s.checkInteractionImplemented(impl, outcome.Management, "usages", w) {
		return
	}

	usages, err := backend.Usages(r.Context(), location)
	if err != nil {
		s.logger().Error("error reading usages", "location", location, "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	returnResult(w, usages, http.StatusOK)
}

func (s *Server) handleCheckNameAvailability(w http.ResponseWriter, r *http.Request) {
	backend, impl := s.Backend.(capabilities.NameAvailability)
	if !s.checkInteractionImplemented(impl, outcome.Management, "checkNameAvailability", w) {
		return
	}

	input, err := decodeBody[management.CheckNameAvailabilityInput](r, outcome.Management)
	if err != nil {
		s.logger().Warn("invalid request body", "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	output, err := backend.CheckNameAvailability(r.Context(), input)
	if err != nil {
		s.logger().Error("error checking name availability", "name", input.Name(), "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	returnResult(w, output, http.StatusOK)
}

func (s *Server) handleServiceRead(w http.ResponseWriter, r *http.Request) {
	resourceGroup, name := r.PathValue("resourceGroup"), r.PathValue("name")

	backend, impl := s.Backend.(capabilities.ServiceRead)
	if !s.checkInteractionImplemented(impl, outcome.Management, "service read", w) {
		return
	}

	service, err := backend.Service(r.Context(), resourceGroup, name)
	if err != nil {
		s.logger().Error("error reading service", "resourceGroup", resourceGroup, "name", name, "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	returnResult(w, service, http.StatusOK)
}

func (s *Server) handleServiceWrite(w http.ResponseWriter, r *http.Request) {
	resourceGroup, name := r.PathValue("resourceGroup"), r.PathValue("name")

	backend, impl := s.Backend.(capabilities.ServiceWrite)
	if !s.checkInteractionImplemented(impl, outcome.Management, "service create or update", w) {
		return
	}

	service, err := decodeBody[management.SearchService](r, outcome.Management)
	if err != nil {
		s.logger().Warn("invalid request body", "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	result, err := backend.CreateOrUpdateService(r.Context(), resourceGroup, name, service)
	if err != nil {
		s.logger().Error("error writing service", "resourceGroup", resourceGroup, "name", name, "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	returnResult(w, result.Model, status)
}

func (s *Server) handleServiceDelete(w http.ResponseWriter, r *http.Request) {
	resourceGroup, name := r.PathValue("resourceGroup"), r.PathValue("name")

	backend, impl := s.Backend.(capabilities.ServiceDelete)
	if !s.checkInteractionImplemented(impl, outcome.Management, "service delete", w) {
		return
	}

	if err := backend.DeleteService(r.Context(), resourceGroup, name); err != nil {
		s.logger().Error("error deleting service", "resourceGroup", resourceGroup, "name", name, "err", err)
		returnErr(w, outcome.Management, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleIndexList(w http.ResponseWriter, r *http.Request) {
	backend, impl := s.Backend.(capabilities.IndexRead)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "index list", w) {
		return
	}

	indexes, err := backend.Indexes(r.Context())
	if err != nil {
		s.logger().Error("error listing indexes", "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	returnResult(w, indexes, http.StatusOK)
}

func (s *Server) handleIndexRead(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.IndexRead)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "index read", w) {
		return
	}

	index, err := backend.Index(r.Context(), name)
	if err != nil {
		s.logger().Error("error reading index", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	returnResult(w, index, http.StatusOK)
}

func (s *Server) handleIndexWrite(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.IndexCreateOrUpdate)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "index create or update", w) {
		return
	}

	index, err := decodeBody[dataplane.SearchIndex](r, outcome.Dataplane)
	if err != nil {
		s.logger().Warn("invalid request body", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}
	// the path name must match the name included in the definition
	if index.Name() != name {
		err := invalidParameterError(outcome.Dataplane, fmt.Errorf("index name in URL (%s) does not match index name in body (%s)", name, index.Name()))
		returnErr(w, outcome.Dataplane, err)
		return
	}

	result, err := backend.CreateOrUpdateIndex(r.Context(), index)
	if err != nil {
		s.logger().Error("error writing index", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	returnResult(w, result.Model, status)
}

func (s *Server) handleIndexDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.IndexDelete)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "index delete", w) {
		return
	}

	if err := backend.DeleteIndex(r.Context(), name); err != nil {
		s.logger().Error("error deleting index", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleIndexStatistics(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.IndexStatistics)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "index statistics", w) {
		return
	}

	stats, err := backend.IndexStatistics(r.Context(), name)
	if err != nil {
		s.logger().Error("error reading index statistics", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	returnResult(w, stats, http.StatusOK)
}

func (s *Server) handleDocumentIndex(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.DocumentIndex)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "document index", w) {
		return
	}

	batch, err := decodeBody[dataplane.IndexBatch](r, outcome.Dataplane)
	if err != nil {
		s.logger().Warn("invalid request body", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	result, err := backend.IndexDocuments(r.Context(), name, batch)
	if err != nil {
		s.logger().Error("error indexing documents", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	returnResult(w, result, indexingStatus(result))
}

// indexingStatus is 207 if any action of the batch failed.
func indexingStatus(result dataplane.IndexDocumentsResult) int {
	if CheckIndexing(result) != nil {
		return http.StatusMultiStatus
	}
	return http.StatusOK
}

func (s *Server) handleDocumentLookup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	key := r.PathValue("key")

	backend, impl := s.Backend.(capabilities.DocumentLookup)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "document lookup", w) {
		return
	}

	doc, err := backend.LookupDocument(r.Context(), name, key)
	if err != nil {
		s.logger().Error("error looking up document", "index", name, "key", key, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	returnResult(w, doc, http.StatusOK)
}

func (s *Server) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.DocumentSearch)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "document search", w) {
		return
	}

	request, err := search.ParseQuery(
		r.URL.Query(),
		cmp.Or(s.MaxTop, defaultServerMaxTop),
		cmp.Or(s.DefaultTop, defaultServerDefaultTop),
		s.StrictSearchParameters,
	)
	if err != nil {
		s.logger().Warn("invalid search parameters", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, invalidParameterError(outcome.Dataplane, err))
		return
	}

	s.dispatchSearch(w, r, backend, name, request)
}

func (s *Server) handleSearchPost(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	backend, impl := s.Backend.(capabilities.DocumentSearch)
	if !s.checkInteractionImplemented(impl, outcome.Dataplane, "document search", w) {
		return
	}

	request, err := decodeBody[dataplane.SearchRequest](r, outcome.Dataplane)
	if err != nil {
		s.logger().Warn("invalid request body", "index", name, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}
	request, err = search.Limit(request, cmp.Or(s.MaxTop, defaultServerMaxTop), cmp.Or(s.DefaultTop, defaultServerDefaultTop))
	if err != nil {
		returnErr(w, outcome.Dataplane, invalidParameterError(outcome.Dataplane, err))
		return
	}

	s.dispatchSearch(w, r, backend, name, request)
}

func (s *Server) dispatchSearch(w http.ResponseWriter, r *http.Request, backend capabilities.DocumentSearch, index string, request dataplane.SearchRequest) {
	result, err := backend.SearchDocuments(r.Context(), index, request)
	if err != nil {
		s.logger().Error("error searching documents", "index", index, "err", err)
		returnErr(w, outcome.Dataplane, err)
		return
	}

	returnResult(w, result, http.StatusOK)
}

// decodeBody decodes the JSON request body into a model of type T.
// Failures are returned as error model of plane.
func decodeBody[T any, PT interface {
	*T
	json.Unmarshaler
}](r *http.Request, plane outcome.Plane) (T, error) {
	if ct := r.Header.Get("Content-Type"); !encoding.IsJSON(ct) {
		return *new(T), outcome.Build(plane, CodeInvalidRequestBody, fmt.Sprintf("unsupported content type: %s", ct))
	}

	v, err := encoding.Decode[T, PT](r.Body)
	if err != nil {
		return v, invalidBodyError(plane, err)
	}
	return v, nil
}

func returnErr(w http.ResponseWriter, plane outcome.Plane, err error) {
	status, m := errToModel(plane, err)
	returnResult(w, m, status)
}

func returnResult(w http.ResponseWriter, m model.Model, status int) {
	w.Header().Set("Content-Type", encoding.FormatJSON)
	w.WriteHeader(status)

	if err := encoding.Encode(w, m); err != nil {
		// we were not able to return an application level error
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) checkInteractionImplemented(
	implemented bool,
	plane outcome.Plane,
	interaction string,
	w http.ResponseWriter,
) bool {
	if !implemented {
		s.logger().Error("interaction not implemented by backend", "interaction", interaction)
		returnErr(w, plane, notImplementedError(plane, interaction))
		return false
	}
	return true
}
