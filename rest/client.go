package rest

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/damedic/azsearch-toolbox-go/capabilities"
	"github.com/damedic/azsearch-toolbox-go/capabilities/search"
	"github.com/damedic/azsearch-toolbox-go/capabilities/update"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
	"github.com/damedic/azsearch-toolbox-go/rest/internal/encoding"
	"github.com/damedic/azsearch-toolbox-go/rest/internal/outcome"
)

// API versions used when a client does not set one.
const (
	DefaultManagementAPIVersion = "2023-11-01"
	DefaultServiceAPIVersion    = "2023-11-01"
)

const (
	headerClientRequestID = "x-ms-client-request-id"
	headerRequestID       = "x-ms-request-id"
	queryAPIVersion       = "api-version"
	providerNamespace     = "Microsoft.Search"
)

var defaultManagementBaseURL = &url.URL{Scheme: "https", Host: "management.azure.com"}

var (
	_ capabilities.LocationCapabilities = (*ManagementClient)(nil)
	_ capabilities.ServiceRead          = (*ManagementClient)(nil)
	_ capabilities.ServiceWrite         = (*ManagementClient)(nil)
	_ capabilities.ServiceDelete        = (*ManagementClient)(nil)
	_ capabilities.Usages               = (*ManagementClient)(nil)
	_ capabilities.NameAvailability     = (*ManagementClient)(nil)

	_ capabilities.IndexRead           = (*ServiceClient)(nil)
	_ capabilities.IndexCreateOrUpdate = (*ServiceClient)(nil)
	_ capabilities.IndexDelete         = (*ServiceClient)(nil)
	_ capabilities.IndexStatistics     = (*ServiceClient)(nil)
	_ capabilities.DocumentIndex       = (*ServiceClient)(nil)
	_ capabilities.DocumentLookup      = (*ServiceClient)(nil)
	_ capabilities.DocumentSearch      = (*ServiceClient)(nil)
)

// ManagementClient talks to the resource provider of the search service.
//
// Authentication is not handled, set an Authorization header via Header
// or use an http.Client whose transport adds it.
type ManagementClient struct {
	// BaseURL of the resource manager.
	// Defaults to https://management.azure.com.
	BaseURL *url.URL
	// SubscriptionID all requests are scoped to.
	SubscriptionID string
	// Client used for all requests.
	// Defaults to http.DefaultClient.
	Client *http.Client
	// APIVersion sent with every request.
	// Defaults to DefaultManagementAPIVersion.
	APIVersion string
	// Header values added to every request.
	Header http.Header
	// Logger for request logs.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

func (c *ManagementClient) internal() *internalClient {
	return &internalClient{
		baseURL:    cmp.Or(c.BaseURL, defaultManagementBaseURL),
		client:     cmp.Or(c.Client, http.DefaultClient),
		apiVersion: cmp.Or(c.APIVersion, DefaultManagementAPIVersion),
		header:     c.Header,
		logger:     cmp.Or(c.Logger, slog.Default()),
		plane:      outcome.Management,
	}
}

func (c *ManagementClient) subscriptionURL(ic *internalClient, elem ...string) (*url.URL, error) {
	if c.SubscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is empty")
	}
	return ic.url(append([]string{"subscriptions", c.SubscriptionID}, elem...)...)
}

func (c *ManagementClient) locationURL(ic *internalClient, location, resource string) (*url.URL, error) {
	if location == "" {
		return nil, fmt.Errorf("location is empty")
	}
	return c.subscriptionURL(ic, "providers", providerNamespace, "locations", location, resource)
}

func (c *ManagementClient) serviceURL(ic *internalClient, resourceGroup, name string) (*url.URL, error) {
	if resourceGroup == "" || name == "" {
		return nil, fmt.Errorf("resource group and service name must not be empty")
	}
	return c.subscriptionURL(ic, "resourceGroups", resourceGroup, "providers", providerNamespace, "searchServices", name)
}

// Capabilities retrieves the capability tree of a location.
func (c *ManagementClient) Capabilities(ctx context.Context, location string) (management.Capability, error) {
	ic := c.internal()
	u, err := c.locationURL(ic, location, "capabilities")
	if err != nil {
		return management.Capability{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return management.Capability{}, err
	}
	return decodeResponse[management.Capability](resp)
}

// Service retrieves a search service resource.
func (c *ManagementClient) Service(ctx context.Context, resourceGroup, name string) (management.SearchService, error) {
	ic := c.internal()
	u, err := c.serviceURL(ic, resourceGroup, name)
	if err != nil {
		return management.SearchService{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return management.SearchService{}, err
	}
	return decodeResponse[management.SearchService](resp)
}

// CreateOrUpdateService creates a search service or replaces an existing one.
func (c *ManagementClient) CreateOrUpdateService(ctx context.Context, resourceGroup, name string, service management.SearchService) (update.Result[management.SearchService], error) {
	ic := c.internal()
	u, err := c.serviceURL(ic, resourceGroup, name)
	if err != nil {
		return update.Result[management.SearchService]{}, err
	}

	resp, err := ic.do(ctx, http.MethodPut, u, service, http.StatusOK, http.StatusCreated)
	if err != nil {
		return update.Result[management.SearchService]{}, err
	}
	created := resp.StatusCode == http.StatusCreated

	persisted, err := decodeResponse[management.SearchService](resp)
	if err != nil {
		return update.Result[management.SearchService]{}, err
	}
	return update.Result[management.SearchService]{Model: persisted, Created: created}, nil
}

// DeleteService deletes a search service.
func (c *ManagementClient) DeleteService(ctx context.Context, resourceGroup, name string) error {
	ic := c.internal()
	u, err := c.serviceURL(ic, resourceGroup, name)
	if err != nil {
		return err
	}

	resp, err := ic.do(ctx, http.MethodDelete, u, nil, http.StatusOK, http.StatusNoContent)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// Usages retrieves the quota usages of a location.
func (c *ManagementClient) Usages(ctx context.Context, location string) (management.QuotaUsagesListResult, error) {
	ic := c.internal()
	u, err := c.locationURL(ic, location, "usages")
	if err != nil {
		return management.QuotaUsagesListResult{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return management.QuotaUsagesListResult{}, err
	}
	return decodeResponse[management.QuotaUsagesListResult](resp)
}

// CheckNameAvailability checks whether a search service name is valid and not in use.
func (c *ManagementClient) CheckNameAvailability(ctx context.Context, input management.CheckNameAvailabilityInput) (management.CheckNameAvailabilityOutput, error) {
	ic := c.internal()
	u, err := c.subscriptionURL(ic, "providers", providerNamespace, "checkNameAvailability")
	if err != nil {
		return management.CheckNameAvailabilityOutput{}, err
	}

	resp, err := ic.do(ctx, http.MethodPost, u, input, http.StatusOK)
	if err != nil {
		return management.CheckNameAvailabilityOutput{}, err
	}
	return decodeResponse[management.CheckNameAvailabilityOutput](resp)
}

// ServiceClient talks to the data plane of a single search service.
//
// Set the api-key header via Header, or use an http.Client whose transport authenticates requests.
type ServiceClient struct {
	// BaseURL of the search service, e.g. https://mysearchservice.search.windows.net.
	BaseURL *url.URL
	// Client used for all requests.
	// Defaults to http.DefaultClient.
	Client *http.Client
	// APIVersion sent with every request.
	// Defaults to DefaultServiceAPIVersion.
	APIVersion string
	// Header values added to every request.
	Header http.Header
	// FailOnAnyError makes IndexDocuments return an *IndexingError
	// along with the result if any action of the batch failed.
	FailOnAnyError bool
	// Logger for request logs.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

func (c *ServiceClient) internal() *internalClient {
	return &internalClient{
		baseURL:    c.BaseURL,
		client:     cmp.Or(c.Client, http.DefaultClient),
		apiVersion: cmp.Or(c.APIVersion, DefaultServiceAPIVersion),
		header:     c.Header,
		logger:     cmp.Or(c.Logger, slog.Default()),
		plane:      outcome.Dataplane,
	}
}

func (c *ServiceClient) indexURL(ic *internalClient, name string, elem ...string) (*url.URL, error) {
	if name == "" {
		return nil, fmt.Errorf("index name is empty")
	}
	return ic.url(append([]string{"indexes", name}, elem...)...)
}

// Index retrieves an index definition.
func (c *ServiceClient) Index(ctx context.Context, name string) (dataplane.SearchIndex, error) {
	ic := c.internal()
	u, err := c.indexURL(ic, name)
	if err != nil {
		return dataplane.SearchIndex{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return dataplane.SearchIndex{}, err
	}
	return decodeResponse[dataplane.SearchIndex](resp)
}

// Indexes lists all index definitions of the service.
func (c *ServiceClient) Indexes(ctx context.Context) (dataplane.ListIndexesResult, error) {
	ic := c.internal()
	u, err := ic.url("indexes")
	if err != nil {
		return dataplane.ListIndexesResult{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return dataplane.ListIndexesResult{}, err
	}
	return decodeResponse[dataplane.ListIndexesResult](resp)
}

// CreateOrUpdateIndex creates an index or replaces the definition of an existing one.
func (c *ServiceClient) CreateOrUpdateIndex(ctx context.Context, index dataplane.SearchIndex) (update.Result[dataplane.SearchIndex], error) {
	ic := c.internal()
	u, err := c.indexURL(ic, index.Name())
	if err != nil {
		return update.Result[dataplane.SearchIndex]{}, err
	}

	resp, err := ic.do(ctx, http.MethodPut, u, index, http.StatusOK, http.StatusCreated)
	if err != nil {
		return update.Result[dataplane.SearchIndex]{}, err
	}
	created := resp.StatusCode == http.StatusCreated

	persisted, err := decodeResponse[dataplane.SearchIndex](resp)
	if err != nil {
		return update.Result[dataplane.SearchIndex]{}, err
	}
	return update.Result[dataplane.SearchIndex]{Model: persisted, Created: created}, nil
}

// DeleteIndex deletes an index and all its documents.
func (c *ServiceClient) DeleteIndex(ctx context.Context, name string) error {
	ic := c.internal()
	u, err := c.indexURL(ic, name)
	if err != nil {
		return err
	}

	resp, err := ic.do(ctx, http.MethodDelete, u, nil, http.StatusOK, http.StatusNoContent)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// IndexStatistics retrieves the document count and storage usage of an index.
func (c *ServiceClient) IndexStatistics(ctx context.Context, name string) (dataplane.GetIndexStatisticsResult, error) {
	ic := c.internal()
	u, err := c.indexURL(ic, name, "stats")
	if err != nil {
		return dataplane.GetIndexStatisticsResult{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return dataplane.GetIndexStatisticsResult{}, err
	}
	return decodeResponse[dataplane.GetIndexStatisticsResult](resp)
}

// IndexDocuments sends a batch of index actions.
//
// A partially failed batch (207 Multi-Status) is not an error unless FailOnAnyError is set,
// otherwise inspect the per-document results or use CheckIndexing.
func (c *ServiceClient) IndexDocuments(ctx context.Context, index string, batch dataplane.IndexBatch) (dataplane.IndexDocumentsResult, error) {
	ic := c.internal()
	u, err := c.indexURL(ic, index, "docs", "index")
	if err != nil {
		return dataplane.IndexDocumentsResult{}, err
	}

	resp, err := ic.do(ctx, http.MethodPost, u, batch, http.StatusOK, http.StatusMultiStatus)
	if err != nil {
		return dataplane.IndexDocumentsResult{}, err
	}
	result, err := decodeResponse[dataplane.IndexDocumentsResult](resp)
	if err != nil {
		return dataplane.IndexDocumentsResult{}, err
	}
	if c.FailOnAnyError {
		return result, CheckIndexing(result)
	}
	return result, nil
}

// LookupDocument retrieves a document by its key.
//
// A missing document yields a *ResponseError with status 404.
func (c *ServiceClient) LookupDocument(ctx context.Context, index, key string) (dataplane.Document, error) {
	ic := c.internal()
	if key == "" {
		return dataplane.Document{}, fmt.Errorf("document key is empty")
	}
	u, err := c.indexURL(ic, index, "docs", key)
	if err != nil {
		return dataplane.Document{}, err
	}

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return dataplane.Document{}, err
	}
	return decodeResponse[dataplane.Document](resp)
}

// Document retrieves a document by its key and decodes it into v,
// typically a pointer to a struct with json tags.
func (c *ServiceClient) Document(ctx context.Context, index, key string, v any) error {
	doc, err := c.LookupDocument(ctx, index, key)
	if err != nil {
		return err
	}
	return doc.DecodeDocument(v)
}

// SearchDocuments searches the documents of an index, sending the request as JSON body.
func (c *ServiceClient) SearchDocuments(ctx context.Context, index string, request dataplane.SearchRequest) (dataplane.SearchDocumentsResult, error) {
	ic := c.internal()
	u, err := c.indexURL(ic, index, "docs", "search.post.search")
	if err != nil {
		return dataplane.SearchDocumentsResult{}, err
	}

	resp, err := ic.do(ctx, http.MethodPost, u, request, http.StatusOK)
	if err != nil {
		return dataplane.SearchDocumentsResult{}, err
	}
	return decodeResponse[dataplane.SearchDocumentsResult](resp)
}

// SearchDocumentsQuery searches the documents of an index, sending the request as query parameters.
func (c *ServiceClient) SearchDocumentsQuery(ctx context.Context, index string, request dataplane.SearchRequest) (dataplane.SearchDocumentsResult, error) {
	ic := c.internal()
	u, err := c.indexURL(ic, index, "docs")
	if err != nil {
		return dataplane.SearchDocumentsResult{}, err
	}
	u.RawQuery = search.BuildQuery(request)

	resp, err := ic.do(ctx, http.MethodGet, u, nil, http.StatusOK)
	if err != nil {
		return dataplane.SearchDocumentsResult{}, err
	}
	return decodeResponse[dataplane.SearchDocumentsResult](resp)
}

type internalClient struct {
	baseURL    *url.URL
	client     *http.Client
	apiVersion string
	header     http.Header
	logger     *slog.Logger
	plane      outcome.Plane
}

// url joins the escaped path segments elem to the base URL.
func (c *internalClient) url(elem ...string) (*url.URL, error) {
	if c.baseURL == nil {
		return nil, fmt.Errorf("base URL is nil")
	}
	escaped := make([]string, len(elem))
	for i, e := range elem {
		escaped[i] = url.PathEscape(e)
	}
	return c.baseURL.JoinPath(escaped...), nil
}

// do executes a request and returns the response if its status is one of expected.
// Otherwise the body is consumed and a *ResponseError is returned.
// The caller must close the body of a returned response.
func (c *internalClient) do(ctx context.Context, method string, u *url.URL, body json.Marshaler, expected ...int) (*http.Response, error) {
	query := u.Query()
	query.Set(queryAPIVersion, c.apiVersion)
	u.RawQuery = query.Encode()

	var reqBody io.Reader
	if body != nil {
		var err error
		reqBody, err = encoding.Reader(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, values := range c.header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", encoding.FormatJSON)
	}
	req.Header.Set("Accept", encoding.FormatJSON)
	requestID := uuid.NewString()
	req.Header.Set(headerClientRequestID, requestID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "request failed", "method", method, "url", u.Redacted(), "clientRequestId", requestID, "err", err)
		return nil, fmt.Errorf("execute request: %w", err)
	}
	c.logger.DebugContext(ctx, "request",
		"method", method,
		"url", u.Redacted(),
		"status", resp.StatusCode,
		"clientRequestId", requestID,
		"duration", time.Since(start),
	)

	if !slices.Contains(expected, resp.StatusCode) {
		defer resp.Body.Close()
		err := c.handleErrorResponse(resp, requestID)
		c.logger.WarnContext(ctx, "unexpected response status", "method", method, "url", u.Redacted(), "status", resp.StatusCode, "err", err)
		return nil, err
	}
	return resp, nil
}

// handleErrorResponse attempts to decode the error body of the plane
// and returns it wrapped in a *ResponseError.
func (c *internalClient) handleErrorResponse(resp *http.Response, clientRequestID string) error {
	respErr := &ResponseError{
		StatusCode: resp.StatusCode,
		RequestID:  cmp.Or(resp.Header.Get(headerRequestID), clientRequestID),
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		respErr.Err = fmt.Errorf("failed to read response body: %w", err)
		return respErr
	}
	if len(bytes.TrimSpace(body)) == 0 {
		respErr.Err = errors.New(http.StatusText(resp.StatusCode))
		return respErr
	}

	var decoded error
	switch c.plane {
	case outcome.Management:
		decoded, err = encoding.Decode[management.CloudError](bytes.NewReader(body))
	case outcome.Dataplane:
		decoded, err = encoding.Decode[dataplane.ErrorResponse](bytes.NewReader(body))
	}
	if err != nil {
		respErr.Err = fmt.Errorf("response: %s", body)
		return respErr
	}
	respErr.Err = decoded
	return respErr
}

func decodeResponse[T any, PT interface {
	*T
	json.Unmarshaler
}](resp *http.Response) (T, error) {
	defer resp.Body.Close()

	v, err := encoding.Decode[T, PT](resp.Body)
	if err != nil {
		return v, fmt.Errorf("parse response: %w", err)
	}
	return v, nil
}
