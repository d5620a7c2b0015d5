package management_test

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/azsearch-toolbox-go/model"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
	"github.com/damedic/azsearch-toolbox-go/model/wire"
	"github.com/damedic/azsearch-toolbox-go/testdata"
)

func TestCapabilityFromWire(t *testing.T) {
	var c management.Capability
	if err := json.Unmarshal([]byte(`{"name":"GP_Gen5","status":"Available"}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if name, ok := c.Name(); !ok || name != "GP_Gen5" {
		t.Errorf("expected name GP_Gen5, got %q (present: %v)", name, ok)
	}
	if status, ok := c.Status(); !ok || status != management.CapabilityStatusAvailable {
		t.Errorf("expected status Available, got %q (present: %v)", status, ok)
	}
	if _, ok := c.SupportedFamilies(); ok {
		t.Error("expected supportedFamilies to be absent")
	}
	if _, ok := c.Reason(); ok {
		t.Error("expected reason to be absent")
	}
}

func TestCapabilityOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name     string
		in       management.Capability
		expected string
	}{
		{
			name:     "empty",
			in:       management.Capability{},
			expected: `{}`,
		},
		{
			name:     "name only",
			in:       management.Capability{}.WithName("GP_Gen5"),
			expected: `{"name":"GP_Gen5"}`,
		},
		{
			name:     "status only",
			in:       management.Capability{}.WithStatus(management.CapabilityStatusDisabled),
			expected: `{"status":"Disabled"}`,
		},
		{
			name:     "empty families",
			in:       management.Capability{}.WithSupportedFamilies([]management.Capability{}),
			expected: `{"supportedFamilies":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, b)
			}
		})
	}
}

func TestCapabilityRoundtrip(t *testing.T) {
	in := management.Capability{}.
		WithName("Standard").
		WithStatus(management.CapabilityStatusDefault).
		WithReason("quota").
		WithSupportedFamilies([]management.Capability{
			management.Capability{}.WithName("GP_Gen5").WithStatus(management.CapabilityStatusAvailable),
			management.Capability{}.WithName("BC_Gen5").WithSupportedFamilies([]management.Capability{
				management.Capability{}.WithName("SQL").WithStatus(management.CapabilityStatusVisible),
			}),
		})

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out management.Capability
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestCapabilityStatusRoundtrip(t *testing.T) {
	for _, m := range management.CapabilityStatusValues() {
		t.Run(m.String(), func(t *testing.T) {
			b, err := json.Marshal(m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var got management.CapabilityStatus
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != m {
				t.Errorf("expected %q, got %q", m, got)
			}
		})
	}
}

func TestCapabilityStatusNull(t *testing.T) {
	got := management.CapabilityStatusAvailable
	if err := json.Unmarshal([]byte(`null`), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected absent sentinel, got %q", got)
	}

	var c management.Capability
	if err := json.Unmarshal([]byte(`{"status":null}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Status(); ok {
		t.Error("expected null status to be absent")
	}
}

func TestParseCapabilityStatus(t *testing.T) {
	got, err := management.ParseCapabilityStatus("Visible")
	if err != nil || got != management.CapabilityStatusVisible {
		t.Errorf("expected Visible, got %q, %v", got, err)
	}

	_, err = management.ParseCapabilityStatus("visible")
	var decodeErr *wire.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Type != "CapabilityStatus" || decodeErr.Token != "visible" {
		t.Errorf("unexpected DecodeError %+v", decodeErr)
	}
}

func TestCapabilityUnknownStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
	}{
		{
			name: "top level",
			in:   `{"name":"GP_Gen5","status":"Bogus"}`,
			path: "Capability.status",
		},
		{
			name: "nested family",
			in:   `{"name":"Standard","supportedFamilies":[{"name":"GP_Gen5"},{"status":"Bogus"}]}`,
			path: "Capability.supportedFamilies: element 1: Capability.status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c management.Capability
			err := json.Unmarshal([]byte(tt.in), &c)

			var decodeErr *wire.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
			if decodeErr.Token != "Bogus" {
				t.Errorf("expected token Bogus, got %q", decodeErr.Token)
			}
			if !strings.HasPrefix(err.Error(), tt.path) {
				t.Errorf("expected error to start with %q, got %q", tt.path, err.Error())
			}
		})
	}
}

func TestCapabilityMalformed(t *testing.T) {
	for _, in := range []string{`[]`, `"GP_Gen5"`, `{"name":5}`, `{"supportedFamilies":{}}`, `{"supportedFamilies":[null]}`} {
		t.Run(in, func(t *testing.T) {
			var c management.Capability
			err := json.Unmarshal([]byte(in), &c)
			var malformed *wire.MalformedPayloadError
			if !errors.As(err, &malformed) {
				t.Errorf("expected MalformedPayloadError, got %v", err)
			}
		})
	}
}

func TestBuildersReturnCopies(t *testing.T) {
	families := []management.Capability{management.Capability{}.WithName("a")}
	base := management.Capability{}.WithName("base")
	derived := base.WithName("derived").WithSupportedFamilies(families)

	if name, _ := base.Name(); name != "base" {
		t.Errorf("expected base to keep its name, got %q", name)
	}
	if _, ok := base.SupportedFamilies(); ok {
		t.Error("expected base to have no families")
	}

	families[0] = management.Capability{}.WithName("changed")
	got, _ := derived.SupportedFamilies()
	if name, _ := got[0].Name(); name != "a" {
		t.Errorf("expected builder to copy the families, got %q", name)
	}

	got[0] = management.Capability{}.WithName("changed")
	again, _ := derived.SupportedFamilies()
	if name, _ := again[0].Name(); name != "a" {
		t.Errorf("expected accessor to copy the families, got %q", name)
	}
}

func TestSearchServiceRequiredLocation(t *testing.T) {
	var s management.SearchService
	err := json.Unmarshal([]byte(`{"name":"svc","sku":{"name":"basic"}}`), &s)

	var malformed *wire.MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
	if malformed.Field != "location" {
		t.Errorf("expected field location, got %q", malformed.Field)
	}

	svc := management.NewSearchService("westeurope").
		WithSku(management.Sku{}.WithName(management.SkuNameStandard2)).
		WithTags(map[string]string{"env": "test"})
	b, err := json.Marshal(svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"location":"westeurope","tags":{"env":"test"},"sku":{"name":"standard2"}}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, b)
	}
}

func TestSearchServiceReadOnlyFields(t *testing.T) {
	var s management.SearchService
	in := `{"id":"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Search/searchServices/svc","type":"Microsoft.Search/searchServices","location":"westeurope","properties":{"status":"running","statusDetails":"ok"}}`
	if err := json.Unmarshal([]byte(in), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id, ok := s.Id(); !ok || !strings.HasSuffix(id, "/svc") {
		t.Errorf("unexpected id %q", id)
	}
	props, ok := s.Properties()
	if !ok {
		t.Fatal("expected properties")
	}
	if details, _ := props.StatusDetails(); details != "ok" {
		t.Errorf("expected status details ok, got %q", details)
	}
	if status, _ := props.Status(); status != management.SearchServiceStatusRunning {
		t.Errorf("expected status running, got %q", status)
	}
}

func TestCloudErrorIsError(t *testing.T) {
	var ce management.CloudError
	in := `{"error":{"code":"ResourceNotFound","message":"not found","details":[{"code":"Inner"}]}}`
	if err := json.Unmarshal([]byte(in), &ce); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var err error = ce
	var target management.CloudError
	if !errors.As(err, &target) {
		t.Fatal("expected CloudError to be found as error")
	}
	body, _ := target.Body()
	if code, _ := body.Code(); code != "ResourceNotFound" {
		t.Errorf("expected code ResourceNotFound, got %q", code)
	}
	if !strings.Contains(err.Error(), `"code": "ResourceNotFound"`) {
		t.Errorf("expected error message to contain the code, got %s", err.Error())
	}

	var _ model.ErrorModel = ce
}

func TestDecodeModel(t *testing.T) {
	m, err := management.DecodeModel("Capability", []byte(`{"name":"GP_Gen5"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ModelName() != "Capability" {
		t.Errorf("expected Capability, got %s", m.ModelName())
	}

	if _, err := management.DecodeModel("Bogus", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown model")
	}

	names := management.ModelNames()
	if !slices.IsSorted(names) || !slices.Contains(names, "SearchService") {
		t.Errorf("unexpected model names %v", names)
	}
	// models with required fields need them, every other model accepts an empty object
	minimal := map[string]string{
		"SearchService":              `{"location":"westeurope"}`,
		"CheckNameAvailabilityInput": `{"name":"n","type":"searchServices"}`,
	}
	for _, name := range names {
		payload, ok := minimal[name]
		if !ok {
			payload = `{}`
		}
		m, err := management.DecodeModel(name, []byte(payload))
		if err != nil {
			t.Errorf("decode %s: %v", name, err)
			continue
		}
		if m.ModelName() != name {
			t.Errorf("expected model %s, got %s", name, m.ModelName())
		}
	}

	for file, b := range testdata.GetExamples("management") {
		if _, err := management.DecodeModel(testdata.ModelName(file), b); err != nil {
			t.Errorf("decode %s: %v", file, err)
		}
	}
}

func TestDecodeModelTruncated(t *testing.T) {
	for _, in := range []string{`{"name":`, `{"name"`, `{"name":"a",`, `{`, `{"supportedFamilies":[{"name":"x"}`} {
		_, err := management.DecodeModel("Capability", []byte(in))
		var malformed *wire.MalformedPayloadError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedPayloadError, got %v", in, err)
		}
	}
}
