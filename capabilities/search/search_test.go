package search_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/azsearch-toolbox-go/capabilities/search"
	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/wire"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected dataplane.SearchRequest
	}{
		{
			name:     "empty uses default top",
			query:    "",
			expected: dataplane.SearchRequest{}.WithTop(50),
		},
		{
			name:  "all parameters",
			query: "search=pool~&$filter=rating+ge+4&$orderby=rating+desc&$select=hotelId,rating&$skip=10&$top=5&$count=true&searchFields=description&searchMode=all&queryType=full&highlight=description&facet=tags,count:5&facet=rating&minimumCoverage=80&api-version=2023-11-01",
			expected: dataplane.SearchRequest{}.
				WithSearch("pool~").
				WithFilter("rating ge 4").
				WithOrderBy("rating desc").
				WithSelect("hotelId,rating").
				WithSkip(10).
				WithTop(5).
				WithCount(true).
				WithSearchFields("description").
				WithSearchMode(dataplane.SearchModeAll).
				WithQueryType(dataplane.QueryTypeFull).
				WithHighlight("description").
				WithFacets([]string{"tags,count:5", "rating"}).
				WithMinimumCoverage(80),
		},
		{
			name:     "top is capped",
			query:    "$top=5000",
			expected: dataplane.SearchRequest{}.WithTop(1000),
		},
		{
			name:     "unknown parameter ignored",
			query:    "search=*&scoringProfile=boost",
			expected: dataplane.SearchRequest{}.WithSearch("*").WithTop(50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("invalid test query: %v", err)
			}

			got, err := search.ParseQuery(params, 1000, 50, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseQueryErrors(t *testing.T) {
	testCases := []struct {
		name          string
		strict        bool
		queryParams   url.Values
		errorContains string
	}{
		{
			name:          "strict_mode_with_unsupported_param",
			strict:        true,
			queryParams:   url.Values{"scoringProfile": []string{"boost"}},
			errorContains: "unsupported search parameter: scoringProfile",
		},
		{
			name:          "multiple_top",
			queryParams:   url.Values{"$top": []string{"1", "2"}},
			errorContains: "multiple $top parameters",
		},
		{
			name:          "invalid_skip",
			queryParams:   url.Values{"$skip": []string{"ten"}},
			errorContains: "invalid $skip parameter",
		},
		{
			name:          "top_out_of_range",
			queryParams:   url.Values{"$top": []string{"3000000000"}},
			errorContains: "invalid $top parameter",
		},
		{
			name:          "negative_top",
			queryParams:   url.Values{"$top": []string{"-1"}},
			errorContains: "invalid $top parameter",
		},
		{
			name:          "invalid_count",
			queryParams:   url.Values{"$count": []string{"maybe"}},
			errorContains: "invalid $count parameter",
		},
		{
			name:          "invalid_coverage",
			queryParams:   url.Values{"minimumCoverage": []string{"most"}},
			errorContains: "invalid minimumCoverage parameter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.ParseQuery(tc.queryParams, 1000, 50, tc.strict)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain '%s' but got: %s", tc.errorContains, err.Error())
			}
		})
	}
}

func TestParseQueryUnknownSearchMode(t *testing.T) {
	_, err := search.ParseQuery(url.Values{"searchMode": []string{"some"}}, 1000, 50, true)

	var decodeErr *wire.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Type != "SearchMode" || decodeErr.Token != "some" {
		t.Errorf("unexpected DecodeError %+v", decodeErr)
	}
}

func TestBuildQuery(t *testing.T) {
	req := dataplane.SearchRequest{}.
		WithSearch("pool").
		WithFilter("rating ge 4").
		WithTop(5).
		WithCount(true).
		WithMinimumCoverage(99.5).
		WithSearchMode(dataplane.SearchModeAny).
		WithFacets([]string{"tags", "rating"})

	expected := "%24count=true&%24filter=rating+ge+4&%24top=5&facet=tags&facet=rating&minimumCoverage=99.5&search=pool&searchMode=any"
	if got := search.BuildQuery(req); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}

	if got := search.BuildQuery(dataplane.SearchRequest{}); got != "" {
		t.Errorf("expected empty query, got %s", got)
	}
}

func TestBuildQueryRoundtrip(t *testing.T) {
	req := dataplane.SearchRequest{}.
		WithSearch("hotel & spa").
		WithOrderBy("rating desc,name").
		WithSelect("hotelId").
		WithSkip(20).
		WithTop(10).
		WithQueryType(dataplane.QueryTypeSimple).
		WithHighlight("description")

	params, err := url.ParseQuery(search.BuildQuery(req))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := search.ParseQuery(params, 1000, 50, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(req, got); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}
