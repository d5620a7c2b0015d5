package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damedic/azsearch-toolbox-go/model/gen/dataplane"
	"github.com/damedic/azsearch-toolbox-go/model/gen/management"
	"github.com/damedic/azsearch-toolbox-go/model/wire"
	"github.com/damedic/azsearch-toolbox-go/rest"
)

type testBackend struct {
	indexes map[string]dataplane.SearchIndex
	deleted []string
}

func (b *testBackend) Capabilities(ctx context.Context, location string) (management.Capability, error) {
	switch location {
	case "westeurope":
		return management.Capability{}.WithName(location).WithSupportedFamilies([]management.Capability{
			management.Capability{}.WithName("basic").WithStatus(management.CapabilityStatusAvailable),
			management.Capability{}.WithName("standard3").WithStatus(management.CapabilityStatusDisabled).WithReason("QuotaExceeded"),
		}), nil
	case "northeurope":
		return management.Capability{}.WithName(location).WithSupportedFamilies([]management.Capability{
			management.Capability{}.WithName("free").WithStatus(management.CapabilityStatusDefault).WithSupportedFamilies([]management.Capability{
				management.Capability{}.WithName("semantic").WithStatus(management.CapabilityStatusVisible),
			}),
		}), nil
	default:
		return management.Capability{}, management.CloudError{}.WithBody(
			management.CloudErrorBody{}.WithCode("ResourceNotFound").WithMessage("unknown location " + location))
	}
}

func (b *testBackend) Index(ctx context.Context, name string) (dataplane.SearchIndex, error) {
	index, ok := b.indexes[name]
	if !ok {
		return dataplane.SearchIndex{}, dataplane.ErrorResponse{}.WithDetail(dataplane.ErrorDetail{}.WithCode("IndexNotFound"))
	}
	return index, nil
}

func (b *testBackend) Indexes(ctx context.Context) (dataplane.ListIndexesResult, error) {
	return dataplane.ListIndexesResult{}.WithIndexes([]dataplane.SearchIndex{b.indexes["hotels"]}), nil
}

func (b *testBackend) IndexStatistics(ctx context.Context, name string) (dataplane.GetIndexStatisticsResult, error) {
	return dataplane.GetIndexStatisticsResult{}.WithDocumentCount(42).WithStorageSize(1024), nil
}

func (b *testBackend) DeleteIndex(ctx context.Context, name string) error {
	b.deleted = append(b.deleted, name)
	return nil
}

func newBackend() *testBackend {
	return &testBackend{indexes: map[string]dataplane.SearchIndex{
		"hotels": dataplane.NewSearchIndex("hotels").WithFields([]dataplane.SearchField{
			dataplane.NewSearchField("hotelId", dataplane.SearchFieldDataTypeEdmString).WithKey(true),
			dataplane.NewSearchField("description", dataplane.SearchFieldDataTypeEdmString).WithSearchable(true).WithAnalyzer("en.lucene"),
		}),
	}}
}

// startServer serves backend and requires every request to carry apiKey, if set.
func startServer(t *testing.T, backend any, apiKey string) string {
	server := &rest.Server{Backend: backend}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey != "" && r.Header.Get("api-key") != apiKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		server.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// tableRows splits table output into whitespace separated cells, skipping the header.
func tableRows(out string) [][]string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines[1:] {
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func TestCapabilitiesTable(t *testing.T) {
	url := startServer(t, newBackend(), "")

	out, err := run(t, "", "capabilities",
		"--management-endpoint", url, "--subscription", "sub",
		"-l", "westeurope", "-l", "northeurope")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "CAPABILITY"))
	assert.Equal(t, [][]string{
		{"westeurope/basic", "Available"},
		{"westeurope/standard3", "Disabled", "QuotaExceeded"},
		{"northeurope/free", "Default"},
		{"northeurope/free/semantic", "Visible"},
	}, tableRows(out))
}

func TestCapabilitiesJSON(t *testing.T) {
	url := startServer(t, newBackend(), "")

	out, err := run(t, "", "capabilities", "-o", "json",
		"--management-endpoint", url, "--subscription", "sub", "-l", "westeurope")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "westeurope",
		"supportedFamilies": [
			{"name": "basic", "status": "Available"},
			{"name": "standard3", "status": "Disabled", "reason": "QuotaExceeded"}
		]
	}`, out)

	out, err = run(t, "", "capabilities", "-o", "json",
		"--management-endpoint", url, "--subscription", "sub", "-l", "westeurope", "-l", "northeurope")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["), "expected a JSON array, got %s", out)
}

func TestCapabilitiesErrors(t *testing.T) {
	url := startServer(t, newBackend(), "")

	_, err := run(t, "", "capabilities", "--management-endpoint", url, "--subscription", "sub", "-l", "westeurope", "-l", "atlantis")
	var respErr *rest.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "ResourceNotFound", respErr.Code())
	assert.Equal(t, http.StatusNotFound, respErr.StatusCode)

	_, err = run(t, "", "capabilities", "--management-endpoint", url, "-l", "westeurope")
	assert.ErrorContains(t, err, "no subscription configured")

	_, err = run(t, "", "capabilities", "--subscription", "sub")
	assert.ErrorContains(t, err, "location")
}

func TestIndexes(t *testing.T) {
	backend := newBackend()
	url := startServer(t, backend, "secret")
	t.Setenv("SEARCHCTL_ENDPOINT", url)
	t.Setenv("SEARCHCTL_API_KEY", "secret")

	out, err := run(t, "", "indexes", "list")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"hotels", "2", "hotelId"}}, tableRows(out))

	out, err = run(t, "", "indexes", "get", "hotels")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"hotelId", "Edm.String", "true"},
		{"description", "Edm.String", "true", "en.lucene"},
	}, tableRows(out))

	out, err = run(t, "", "indexes", "stats", "hotels")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"hotels", "42", "1024"}}, tableRows(out))

	out, err = run(t, "", "indexes", "stats", "hotels", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "documentCount: 42\n")

	out, err = run(t, "", "indexes", "delete", "hotels")
	require.NoError(t, err)
	assert.Equal(t, "index hotels deleted\n", out)
	assert.Equal(t, []string{"hotels"}, backend.deleted)

	_, err = run(t, "", "indexes", "get", "motels")
	var errResp dataplane.ErrorResponse
	require.ErrorAs(t, err, &errResp)

	_, err = run(t, "", "indexes", "list", "--api-key", "wrong")
	var respErr *rest.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusForbidden, respErr.StatusCode)
}

func TestConfigFile(t *testing.T) {
	url := startServer(t, newBackend(), "")
	config := filepath.Join(t.TempDir(), "searchctl.yaml")
	require.NoError(t, os.WriteFile(config, []byte("endpoint: "+url+"\noutput: json\n"), 0o600))

	out, err := run(t, "", "indexes", "stats", "hotels", "--config", config)
	require.NoError(t, err)
	assert.JSONEq(t, `{"documentCount": 42, "storageSize": 1024}`, out)

	out, err = run(t, "", "indexes", "stats", "hotels", "--config", config, "-o", "table")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "INDEX"), "flag should override config file, got %s", out)

	_, err = run(t, "", "indexes", "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestRootFlagValidation(t *testing.T) {
	_, err := run(t, "", "indexes", "list", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output format")

	_, err = run(t, "", "indexes", "list", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = run(t, "", "indexes", "list", "--endpoint", "")
	assert.ErrorContains(t, err, "no service endpoint configured")
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "capability.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"supportedFamilies":[{"name":"GP_Gen5","status":"Available"}],"name":"Standard"}`), 0o600))

	out, err := run(t, "", "decode", "--model", "Capability", valid)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Standard","supportedFamilies":[{"name":"GP_Gen5","status":"Available"}]}`, out)

	t.Run("stdin", func(t *testing.T) {
		out, err := run(t, `{"name":"Standard","status":"Visible"}`, "decode", "-m", "Capability", "-")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Standard","status":"Visible"}`, out)
	})

	t.Run("unknown_enum_token", func(t *testing.T) {
		_, err := run(t, `{"supportedFamilies":[{"status":"Retired"}]}`, "decode", "-m", "Capability", "-")
		var decodeErr *wire.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "Retired", decodeErr.Token)
		assert.ErrorContains(t, err, "invalid enumeration value: Capability.supportedFamilies: element 0")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := run(t, `[1, 2]`, "decode", "-m", "Capability", "-")
		var malformed *wire.MalformedPayloadError
		require.ErrorAs(t, err, &malformed)
		assert.ErrorContains(t, err, "malformed payload")
	})

	t.Run("dataplane_yaml_keeps_decimals", func(t *testing.T) {
		out, err := run(t, `{"@search.score":1.0000000000000000001,"hotelId":"1"}`,
			"decode", "-m", "SearchResult", "-p", "dataplane", "-o", "yaml", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "1.0000000000000000001")
		assert.Contains(t, out, "hotelId:")
		assert.NotContains(t, out, "{")
	})

	t.Run("unknown_model", func(t *testing.T) {
		_, err := run(t, `{}`, "decode", "-m", "Patient", "-")
		assert.ErrorContains(t, err, `unknown model "Patient"`)
	})

	t.Run("unknown_plane", func(t *testing.T) {
		_, err := run(t, `{}`, "decode", "-m", "Capability", "-p", "control", "-")
		assert.ErrorContains(t, err, `unknown plane "control"`)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := run(t, "", "decode", "-m", "Capability", filepath.Join(dir, "nope.json"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
