package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/api/docs/openapi.json", "")

	require.NoError(t, ServeOpenAPI3Spec(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "#/definitions/")

	var doc struct {
		OpenAPI string `json:"openapi"`
		Paths   map[string]map[string]struct {
			Parameters  []map[string]interface{} `json:"parameters"`
			RequestBody *struct {
				Required bool `json:"required"`
				Content  map[string]struct {
					Schema map[string]interface{} `json:"schema"`
				} `json:"content"`
			} `json:"requestBody"`
			Responses map[string]struct {
				Content map[string]interface{} `json:"content"`
			} `json:"responses"`
		} `json:"paths"`
		Components struct {
			Schemas         map[string]interface{}            `json:"schemas"`
			SecuritySchemes map[string]map[string]interface{} `json:"securitySchemes"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	createCategory := doc.Paths["/categories"]["post"]
	require.NotNil(t, createCategory.RequestBody)
	assert.True(t, createCategory.RequestBody.Required)
	assert.Equal(t, "#/components/schemas/handler.CategoryRequest", createCategory.RequestBody.Content["application/json"].Schema["$ref"])
	for _, p := range createCategory.Parameters {
		assert.NotEqual(t, "body", p["in"])
	}
	assert.Contains(t, createCategory.Responses["201"].Content, "application/json")
	assert.Contains(t, doc.Components.Schemas, "handler.CategoryRequest")

	// no content for an empty response
	assert.Empty(t, doc.Paths["/categories/{id}"]["delete"].Responses["204"].Content)

	var page map[string]interface{}
	for _, p := range doc.Paths["/transactions"]["get"].Parameters {
		if p["name"] == "page" {
			page = p
		}
	}
	require.NotNil(t, page)
	assert.Equal(t, "query", page["in"])
	assert.Equal(t, map[string]interface{}{"type": "integer"}, page["schema"])

	idParam := doc.Paths["/categories/{id}"]["get"].Parameters[0]
	assert.Equal(t, true, idParam["required"])

	assert.Equal(t, "http", doc.Components.SecuritySchemes["BearerAuth"]["type"])
	assert.Equal(t, "bearer", doc.Components.SecuritySchemes["BearerAuth"]["scheme"])
}
