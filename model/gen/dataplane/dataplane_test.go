package dataplane_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/wire"
)

type hotel struct {
	HotelID string   `json:"hotelId"`
	Name    string   `json:"name,omitempty"`
	Rating  float64  `json:"rating,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

func TestSearchFieldAnalyzerEmitsNull(t *testing.T) {
	f := dataplane.NewSearchField("hotelId", dataplane.SearchFieldDataTypeEdmString).WithKey(true)

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"name":"hotelId","type":"Edm.String","key":true,"analyzer":null}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}

	b, err = json.Marshal(f.WithAnalyzer("en.lucene"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected = `{"name":"hotelId","type":"Edm.String","key":true,"analyzer":"en.lucene"}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestSearchFieldRequired(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		field string
	}{
		{name: "missing type", in: `{"name":"hotelId"}`, field: "type"},
		{name: "null name", in: `{"name":null,"type":"Edm.String"}`, field: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f dataplane.SearchField
			err := json.Unmarshal([]byte(tt.in), &f)
			var malformed *wire.MalformedPayloadError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedPayloadError, got %v", err)
			}
			if malformed.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, malformed.Field)
			}
		})
	}
}

func TestSearchIndexRoundtrip(t *testing.T) {
	in := `{"name":"hotels","fields":[{"name":"hotelId","type":"Edm.String","key":true,"analyzer":null},{"name":"tags","type":"Collection(Edm.String)","searchable":true,"analyzer":"en.lucene"},{"name":"address","type":"Edm.ComplexType","analyzer":null,"fields":[{"name":"city","type":"Edm.String","analyzer":null}]}],"@odata.etag":"\"0x1\""}`

	var idx dataplane.SearchIndex
	if err := json.Unmarshal([]byte(in), &idx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Name() != "hotels" {
		t.Errorf("expected name hotels, got %q", idx.Name())
	}
	if etag, _ := idx.ETag(); etag != `"0x1"` {
		t.Errorf("unexpected etag %q", etag)
	}
	fields, _ := idx.Fields()
	if len(fields) != 3 || fields[1].Type() != dataplane.SearchFieldDataTypeCollectionEdmString {
		t.Fatalf("unexpected fields %v", fields)
	}

	out, err := json.Marshal(idx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(in, string(out)); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchFieldUnknownType(t *testing.T) {
	var idx dataplane.SearchIndex
	err := json.Unmarshal([]byte(`{"name":"hotels","fields":[{"name":"a","type":"Edm.Text"}]}`), &idx)

	var decodeErr *wire.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Type != "SearchFieldDataType" || decodeErr.Token != "Edm.Text" {
		t.Errorf("unexpected DecodeError %+v", decodeErr)
	}
}

func TestNewIndexAction(t *testing.T) {
	a, err := dataplane.NewIndexAction(dataplane.IndexActionTypeMergeOrUpload, hotel{HotelID: "1", Name: "Fancy Stay", Tags: []string{"pool"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := json.Marshal(dataplane.IndexBatch{}.WithActions([]dataplane.IndexAction{a}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"value":[{"@search.action":"mergeOrUpload","hotelId":"1","name":"Fancy Stay","tags":["pool"]}]}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}

	var got hotel
	if err := a.DecodeDocument(&got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(hotel{HotelID: "1", Name: "Fancy Stay", Tags: []string{"pool"}}, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestNewIndexActionDropsActionKey(t *testing.T) {
	a, err := dataplane.NewIndexAction(dataplane.IndexActionTypeDelete, map[string]any{
		"hotelId":        "2",
		"@search.action": "upload",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"@search.action":"delete","hotelId":"2"}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestNewIndexActionRejectsNonObjects(t *testing.T) {
	for _, doc := range []any{"hotel", []int{1}, nil, 42} {
		if _, err := dataplane.NewIndexAction(dataplane.IndexActionTypeUpload, doc); err == nil {
			t.Errorf("expected error for %v", doc)
		}
	}
}

func TestDocument(t *testing.T) {
	var doc dataplane.Document
	in := `{"hotelId":"1","name":"Fancy Stay","tags":["pool","view"]}`
	if err := json.Unmarshal([]byte(in), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var h hotel
	if err := doc.DecodeDocument(&h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(hotel{HotelID: "1", Name: "Fancy Stay", Tags: []string{"pool", "view"}}, h); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	built, err := dataplane.NewDocument(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !built.Equal(doc) {
		t.Errorf("expected %s to equal %s", built, doc)
	}

	var malformed *wire.MalformedPayloadError
	if err := json.Unmarshal([]byte(`["1"]`), &doc); !errors.As(err, &malformed) {
		t.Errorf("expected MalformedPayloadError for a non-object document, got %v", err)
	}
}

func TestSearchDocumentsResult(t *testing.T) {
	in := `{"@odata.count":2,"@search.coverage":99.50,"value":[{"@search.score":1.0000000000000000001,"hotelId":"1","rating":4.5},{"@search.score":0.25,"hotelId":"2"}],"@odata.nextLink":"https://svc.search.windows.net/indexes/hotels/docs/search.post.search"}`

	var res dataplane.SearchDocumentsResult
	if err := json.Unmarshal([]byte(in), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count, _ := res.Count(); count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
	coverage, _ := res.Coverage()
	if coverage.String() != "99.50" {
		t.Errorf("expected coverage 99.50, got %s", coverage.String())
	}
	if _, ok := res.NextLink(); !ok {
		t.Error("expected next link")
	}

	results, _ := res.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	score, _ := results[0].Score()
	if score.String() != "1.0000000000000000001" {
		t.Errorf("expected exact score, got %s", score.String())
	}

	var got hotel
	if err := results[0].DecodeDocument(&got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(hotel{HotelID: "1", Rating: 4.5}, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != in {
		t.Errorf("expected %s, got %s", in, out)
	}
}

func TestIndexingResultNullableMessage(t *testing.T) {
	b, err := json.Marshal(dataplane.IndexingResult{}.WithKey("1").WithSucceeded(true).WithStatusCode(201))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"key":"1","errorMessage":null,"status":true,"statusCode":201}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestErrorResponse(t *testing.T) {
	var er dataplane.ErrorResponse
	if err := json.Unmarshal([]byte(`{"error":{"code":"IndexNotFound","message":"No index with the name 'x' was found"}}`), &er); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var err error = er
	var target dataplane.ErrorResponse
	if !errors.As(err, &target) {
		t.Fatal("expected ErrorResponse to be found as error")
	}
	detail, _ := target.Detail()
	if code, _ := detail.Code(); code != "IndexNotFound" {
		t.Errorf("expected code IndexNotFound, got %q", code)
	}
}

func TestDecodeModel(t *testing.T) {
	m, err := dataplane.DecodeModel("SearchIndex", []byte(`{"name":"hotels"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx, ok := m.(dataplane.SearchIndex)
	if !ok || idx.Name() != "hotels" {
		t.Errorf("unexpected model %v", m)
	}

	if _, err := dataplane.DecodeModel("SearchIndex", []byte(`{}`)); err == nil {
		t.Error("expected error for missing name")
	}
}
