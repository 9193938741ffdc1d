package lambda

import (
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"business-catalog-api/internal/docs"
	"business-catalog-api/internal/services"
)

func newHandler(t *testing.T) HandlerFunc {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc, err := services.NewCatalogService(&services.CatalogConfig{Docs: docs.DefaultOptions()}, nil, logger)
	require.NoError(t, err)
	return NewCatalogHandler(svc)
}

func get(t *testing.T, h HandlerFunc, path string, query map[string]string) *Response {
	resp, err := h(&Request{Method: http.MethodGet, Path: path, QueryParams: query})
	require.NoError(t, err)
	return resp
}

func TestCatalogHandler_Document(t *testing.T) {
	h := newHandler(t)

	resp := get(t, h, "/api/v1/catalog/openapi.json", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3.0.3", gjson.GetBytes(resp.Body, "openapi").String())
	assert.Len(t, resp.Headers["X-Catalog-Checksum"], 64)

	resp = get(t, h, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Headers["Content-Type"])
}

func TestCatalogHandler_Domain(t *testing.T) {
	h := newHandler(t)

	resp := get(t, h, "/api/v1/catalog/domains/work", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gjson.GetBytes(resp.Body, `paths./work/zone`).Exists())
	assert.False(t, gjson.GetBytes(resp.Body, `paths./hr/user`).Exists())

	resp = get(t, h, "/api/v1/catalog/domains/finance", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, h, "/api/v1/catalog/domains/", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, gjson.GetBytes(resp.Body, "paths").Exists())
}

func TestCatalogHandler_Lookups(t *testing.T) {
	h := newHandler(t)

	resp := get(t, h, "/api/v1/catalog/verbs", map[string]string{"path": "/hr/user/login"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `["post"]`, gjson.GetBytes(resp.Body, "verbs").Raw)

	resp = get(t, h, "/api/v1/catalog/verbs", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = get(t, h, "/api/v1/catalog/routes", map[string]string{"domain": "delivery"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, gjson.ParseBytes(resp.Body).Array())

	resp = get(t, h, "/api/v1/catalog/lint", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, h, "/api/v1/catalog/nothing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogHandler_MethodNotAllowed(t *testing.T) {
	h := newHandler(t)
	resp, err := h(&Request{Method: http.MethodPost, Path: "/api/v1/catalog/openapi.json"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestAPIGatewayConversion(t *testing.T) {
	req := FromAPIGateway(events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/api/v1/catalog/verbs",
		QueryStringParameters: map[string]string{"path": "/store/group"},
	})
	assert.Equal(t, "/store/group", req.QueryParams["path"])

	out := JSON(http.StatusOK, map[string]string{"a": "b"}).APIGateway()
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.JSONEq(t, `{"a":"b"}`, out.Body)
}
