package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/dompet/dompet-backend/docs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/swaggo/swag"
)

const (
	definitionsPrefix = "#/definitions/"
	schemasPrefix     = "#/components/schemas/"
	jsonMediaType     = "application/json"
)

// OpenAPI3Spec represents an OpenAPI 3.0 document
type OpenAPI3Spec struct {
	OpenAPI    string                            `json:"openapi"`
	Info       map[string]interface{}            `json:"info"`
	Servers    []Server                          `json:"servers"`
	Paths      map[string]map[string]interface{} `json:"paths"`
	Components map[string]interface{}            `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// swagger2Doc holds the parts of the swag output that are carried over
type swagger2Doc struct {
	Info                map[string]interface{}                  `json:"info"`
	BasePath            string                                  `json:"basePath"`
	Paths               map[string]map[string]swagger2Operation `json:"paths"`
	Definitions         map[string]interface{}                  `json:"definitions"`
	SecurityDefinitions map[string]swagger2SecurityScheme       `json:"securityDefinitions"`
}

type swagger2Operation struct {
	Summary     string                      `json:"summary,omitempty"`
	Description string                      `json:"description,omitempty"`
	Tags        []string                    `json:"tags,omitempty"`
	Security    []map[string][]string       `json:"security,omitempty"`
	Parameters  []swagger2Parameter         `json:"parameters,omitempty"`
	Responses   map[string]swagger2Response `json:"responses"`
}

type swagger2Parameter struct {
	Name        string      `json:"name"`
	In          string      `json:"in"`
	Description string      `json:"description,omitempty"`
	Required    bool        `json:"required,omitempty"`
	Type        string      `json:"type,omitempty"`
	Format      string      `json:"format,omitempty"`
	Enum        interface{} `json:"enum,omitempty"`
	Schema      interface{} `json:"schema,omitempty"`
}

type swagger2Response struct {
	Description string      `json:"description"`
	Schema      interface{} `json:"schema,omitempty"`
}

type swagger2SecurityScheme struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description"`
}

// rewriteRefs points every $ref at components/schemas
func rewriteRefs(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = schemasPrefix + strings.TrimPrefix(ref, definitionsPrefix)
				continue
			}
			result[key] = rewriteRefs(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = rewriteRefs(item)
		}
		return result
	default:
		return data
	}
}

func jsonContent(schema interface{}) map[string]interface{} {
	return map[string]interface{}{
		jsonMediaType: map[string]interface{}{"schema": rewriteRefs(schema)},
	}
}

// convertOperation moves the JSON body parameter into requestBody and wraps
// response schemas in an application/json content entry
func convertOperation(op swagger2Operation) map[string]interface{} {
	out := map[string]interface{}{}
	if op.Summary != "" {
		out["summary"] = op.Summary
	}
	if op.Description != "" {
		out["description"] = op.Description
	}
	if len(op.Tags) > 0 {
		out["tags"] = op.Tags
	}
	if len(op.Security) > 0 {
		out["security"] = op.Security
	}

	var params []map[string]interface{}
	for _, p := range op.Parameters {
		if p.In == "body" {
			out["requestBody"] = map[string]interface{}{
				"description": p.Description,
				"required":    p.Required,
				"content":     jsonContent(p.Schema),
			}
			continue
		}
		schema := map[string]interface{}{"type": p.Type}
		if p.Format != "" {
			schema["format"] = p.Format
		}
		if p.Enum != nil {
			schema["enum"] = p.Enum
		}
		param := map[string]interface{}{
			"name":   p.Name,
			"in":     p.In,
			"schema": schema,
		}
		if p.Description != "" {
			param["description"] = p.Description
		}
		// path parameters are always required in OpenAPI 3
		if p.Required || p.In == "path" {
			param["required"] = true
		}
		params = append(params, param)
	}
	if len(params) > 0 {
		out["parameters"] = params
	}

	responses := make(map[string]interface{}, len(op.Responses))
	for code, r := range op.Responses {
		resp := map[string]interface{}{"description": r.Description}
		if r.Schema != nil {
			resp["content"] = jsonContent(r.Schema)
		}
		responses[code] = resp
	}
	out["responses"] = responses
	return out
}

// convertSecurityScheme renders the Authorization header key as an HTTP bearer scheme
func convertSecurityScheme(s swagger2SecurityScheme) map[string]interface{} {
	if s.Type == "apiKey" && s.In == "header" && strings.EqualFold(s.Name, echo.HeaderAuthorization) {
		return map[string]interface{}{
			"type":         "http",
			"scheme":       "bearer",
			"bearerFormat": "JWT",
			"description":  s.Description,
		}
	}
	return map[string]interface{}{
		"type":        s.Type,
		"name":        s.Name,
		"in":          s.In,
		"description": s.Description,
	}
}

// toOpenAPI3 converts the swag document
func toOpenAPI3(doc swagger2Doc) OpenAPI3Spec {
	paths := make(map[string]map[string]interface{}, len(doc.Paths))
	for path, ops := range doc.Paths {
		converted := make(map[string]interface{}, len(ops))
		for method, op := range ops {
			converted[method] = convertOperation(op)
		}
		paths[path] = converted
	}

	components := map[string]interface{}{}
	if len(doc.Definitions) > 0 {
		components["schemas"] = rewriteRefs(doc.Definitions)
	}
	if len(doc.SecurityDefinitions) > 0 {
		schemes := make(map[string]interface{}, len(doc.SecurityDefinitions))
		for name, s := range doc.SecurityDefinitions {
			schemes[name] = convertSecurityScheme(s)
		}
		components["securitySchemes"] = schemes
	}

	return OpenAPI3Spec{
		OpenAPI: "3.0.3",
		Info:    doc.Info,
		Servers: []Server{
			{URL: doc.BasePath, Description: "This server"},
			{URL: "http://localhost:8080" + doc.BasePath, Description: "Local Development"},
		},
		Paths:      paths,
		Components: components,
	}
}

// ServeOpenAPI3Spec serves the API description as OpenAPI 3.0
func ServeOpenAPI3Spec(c echo.Context) error {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read swagger doc")
		return NewInternalError(c, "Failed to read API documentation")
	}

	var doc swagger2Doc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Error().Err(err).Msg("Failed to parse swagger doc")
		return NewInternalError(c, "Failed to read API documentation")
	}

	return c.JSON(http.StatusOK, toOpenAPI3(doc))
}
