// Package search converts between document search requests and their query string form.
//
// The service accepts a search request either as JSON body (POST .../docs/search.post.search)
// or as query parameters (GET .../docs). ParseQuery reads the latter, BuildQuery writes it.
//
// # Example
//
//	req, err := search.ParseQuery(r.URL.Query(), 1000, 50, true)
//	if err != nil {
//		// answer with 400
//	}
//	result, err := backend.SearchDocuments(ctx, index, req)
package search

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"

	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
)

// Query parameter names of the GET search API.
const (
	ParamSearch          = "search"
	ParamFilter          = "$filter"
	ParamOrderBy         = "$orderby"
	ParamSelect          = "$select"
	ParamSkip            = "$skip"
	ParamTop             = "$top"
	ParamCount           = "$count"
	ParamSearchFields    = "searchFields"
	ParamSearchMode      = "searchMode"
	ParamQueryType       = "queryType"
	ParamHighlight       = "highlight"
	ParamFacet           = "facet"
	ParamMinimumCoverage = "minimumCoverage"
	ParamAPIVersion      = "api-version"
)

// ParseQuery reads a search request from the query parameters of a GET search.
//
// $top defaults to defaultTop and is capped at maxTop.
// With strict, unknown parameters are rejected, otherwise they are ignored.
// Every parameter except facet may occur at most once.
func ParseQuery(params url.Values, maxTop, defaultTop int, strict bool) (dataplane.SearchRequest, error) {
	var req dataplane.SearchRequest

	// sorted for deterministic error messages
	for _, k := range slices.Sorted(maps.Keys(params)) {
		v := params[k]
		if k != ParamFacet && len(v) != 1 {
			return dataplane.SearchRequest{}, fmt.Errorf("multiple %s parameters", k)
		}

		var err error
		switch k {
		case ParamSearch:
			req = req.WithSearch(v[0])
		case ParamFilter:
			req = req.WithFilter(v[0])
		case ParamOrderBy:
			req = req.WithOrderBy(v[0])
		case ParamSelect:
			req = req.WithSelect(v[0])
		case ParamSearchFields:
			req = req.WithSearchFields(v[0])
		case ParamHighlight:
			req = req.WithHighlight(v[0])
		case ParamFacet:
			req = req.WithFacets(v)
		case ParamSkip:
			var skip int32
			skip, err = parseInt32(k, v[0])
			req = req.WithSkip(skip)
		case ParamTop:
			var top int32
			top, err = parseInt32(k, v[0])
			req = req.WithTop(top)
		case ParamCount:
			var count bool
			count, err = strconv.ParseBool(v[0])
			if err != nil {
				err = fmt.Errorf("invalid %s parameter: %w", k, err)
			}
			req = req.WithCount(count)
		case ParamMinimumCoverage:
			var coverage float64
			coverage, err = strconv.ParseFloat(v[0], 64)
			if err != nil {
				err = fmt.Errorf("invalid %s parameter: %w", k, err)
			}
			req = req.WithMinimumCoverage(coverage)
		case ParamSearchMode:
			var mode dataplane.SearchMode
			mode, err = dataplane.ParseSearchMode(v[0])
			if err != nil {
				err = fmt.Errorf("invalid %s parameter: %w", k, err)
			}
			req = req.WithSearchMode(mode)
		case ParamQueryType:
			var queryType dataplane.QueryType
			queryType, err = dataplane.ParseQueryType(v[0])
			if err != nil {
				err = fmt.Errorf("invalid %s parameter: %w", k, err)
			}
			req = req.WithQueryType(queryType)
		case ParamAPIVersion:
		default:
			if strict {
				return dataplane.SearchRequest{}, fmt.Errorf("unsupported search parameter: %s", k)
			}
		}
		if err != nil {
			return dataplane.SearchRequest{}, err
		}
	}

	return Limit(req, maxTop, defaultTop)
}

func parseInt32(k, v string) (int32, error) {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", k, err)
	}
	return int32(n), nil
}

// Limit applies the default and maximum page size to req.
// Negative $skip or $top values are rejected.
func Limit(req dataplane.SearchRequest, maxTop, defaultTop int) (dataplane.SearchRequest, error) {
	if skip, ok := req.Skip(); ok && skip < 0 {
		return dataplane.SearchRequest{}, fmt.Errorf("invalid %s parameter: must not be negative", ParamSkip)
	}

	top, ok := req.Top()
	switch {
	case !ok:
		top = int32(min(defaultTop, maxTop))
	case top < 0:
		return dataplane.SearchRequest{}, fmt.Errorf("invalid %s parameter: must not be negative", ParamTop)
	default:
		top = min(top, int32(maxTop))
	}
	return req.WithTop(top), nil
}

// BuildQuery returns the query string of a GET search equivalent to req.
//
// The function is deterministic, parameters are sorted by name and facets keep their order.
func BuildQuery(req dataplane.SearchRequest) string {
	values := url.Values{}

	setString := func(k string) func(v string, ok bool) {
		return func(v string, ok bool) {
			if ok {
				values.Set(k, v)
			}
		}
	}
	setString(ParamSearch)(req.Search())
	setString(ParamFilter)(req.Filter())
	setString(ParamOrderBy)(req.OrderBy())
	setString(ParamSelect)(req.Select())
	setString(ParamSearchFields)(req.SearchFields())
	setString(ParamHighlight)(req.Highlight())

	if facets, ok := req.Facets(); ok {
		values[ParamFacet] = facets
	}
	if skip, ok := req.Skip(); ok {
		values.Set(ParamSkip, strconv.FormatInt(int64(skip), 10))
	}
	if top, ok := req.Top(); ok {
		values.Set(ParamTop, strconv.FormatInt(int64(top), 10))
	}
	if count, ok := req.Count(); ok {
		values.Set(ParamCount, strconv.FormatBool(count))
	}
	if coverage, ok := req.MinimumCoverage(); ok {
		values.Set(ParamMinimumCoverage, strconv.FormatFloat(coverage, 'f', -1, 64))
	}
	if mode, ok := req.SearchMode(); ok {
		values.Set(ParamSearchMode, string(mode))
	}
	if queryType, ok := req.QueryType(); ok {
		values.Set(ParamQueryType, string(queryType))
	}

	return values.Encode()
}
