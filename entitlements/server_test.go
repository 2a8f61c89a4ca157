package entitlements_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getftr/entitlement-index/entitlements"
	"github.com/getftr/entitlement-index/rights"
	rpc "github.com/getftr/entitlement-index/rpc/entitlements"
	"github.com/ttab/elephantine/test"
	"github.com/twitchtv/twirp"
)

func TestAPIHandler(t *testing.T) {
	source := rights.NewMemorySource(loadRights(t))
	svc, _ := newTestService(t, source, entitlements.ServiceOptions{})

	logger := slog.New(test.NewLogHandler(t, slog.LevelInfo))
	server := httptest.NewServer(entitlements.NewAPIHandler(logger, svc))

	t.Cleanup(server.Close)

	body := `{
  "identifiers": [{"type": "IPV4", "value": "200.46.32.1"}],
  "dois": ["10.10/1111", "10.10/2222", "10.10/3333"]
}`

	res, err := server.Client().Post(
		server.URL+rpc.EntitlementsPathPrefix+"GetEntitlements",
		"application/json", strings.NewReader(body))
	test.Must(t, err, "call the API")

	defer res.Body.Close()

	test.Equal(t, http.StatusOK, res.StatusCode, "get an OK response")

	var got map[string]any

	dec := json.NewDecoder(res.Body)
	dec.UseNumber()

	test.Must(t, dec.Decode(&got), "decode response")

	test.EqualDiff(t, map[string]any{
		"items": []any{
			map[string]any{
				"doi":         "10.10/2222",
				"entitled":    true,
				"document":    "https://example.com/10.10/2222",
				"access_type": "PAID",
				"identifiers": []any{json.Number("0")},
				"vor": []any{
					map[string]any{
						"url":  "https://example.com/2222.pdf",
						"type": "application/pdf",
					},
				},
			},
			map[string]any{
				"doi":         "10.10/3333",
				"entitled":    false,
				"identifiers": []any{},
				"vor":         []any{},
			},
		},
		"unprocessed": []any{"10.10/1111"},
	}, got, "get the expected wire response")

	client := rpc.NewEntitlementsJSONClient(server.URL, server.Client())

	_, err = client.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Dois: make([]string, entitlements.DefaultMaxDOIs+1),
	})
	test.IsTwirpError(t, err, twirp.InvalidArgument)

	alive, err := server.Client().Get(server.URL + "/health/alive")
	test.Must(t, err, "call the liveness endpoint")

	defer alive.Body.Close()

	test.Equal(t, http.StatusOK, alive.StatusCode, "the API is alive")
}

func TestAPIHandlerProtobuf(t *testing.T) {
	source := rights.NewMemorySource(loadRights(t))
	svc, _ := newTestService(t, source, entitlements.ServiceOptions{})

	logger := slog.New(test.NewLogHandler(t, slog.LevelInfo))
	server := httptest.NewServer(entitlements.NewAPIHandler(logger, svc))

	t.Cleanup(server.Close)

	res, err := server.Client().Post(
		server.URL+rpc.EntitlementsPathPrefix+"GetEntitlements",
		"application/protobuf", strings.NewReader(""))
	test.Must(t, err, "call the API with an empty protobuf request")

	_ = res.Body.Close()

	test.Equal(t, http.StatusOK, res.StatusCode,
		"accept an empty protobuf request")
	test.Equal(t, "application/protobuf", res.Header.Get("Content-Type"),
		"respond with protobuf")

	client := rpc.NewEntitlementsProtobufClient(server.URL, server.Client())

	got, err := client.GetEntitlements(test.Context(t), &rpc.EntitlementRequest{
		Identifiers: ids(rpc.IdentifierType_IPV4, "200.46.32.1"),
		Dois:        []string{"10.10/1111", "10.10/2222"},
	})
	test.Must(t, err, "get entitlements over protobuf")

	test.EqualMessage(t, &rpc.EntitlementResponse{
		Items:       []*rpc.Entitlement{paid2222},
		Unprocessed: []string{"10.10/1111"},
	}, got, "get the expected protobuf response")
}
