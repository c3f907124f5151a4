// Package docs holds the generated Swagger specification for the wiredns
// debug API. It is normally produced by `swag init` from the annotations in
// internal/api/handlers; this hand-maintained copy mirrors that output.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "wiredns maintainers",
            "url": "https://github.com/jroosing/wiredns"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": { "get": { "summary": "Health check", "tags": ["system"] } },
        "/stats": { "get": { "summary": "Server statistics", "tags": ["system"] } },
        "/config": { "get": { "summary": "Read effective configuration", "tags": ["system"] } },
        "/decode": { "post": { "summary": "Decode a wire-format DNS message", "tags": ["wire"] } },
        "/encode": { "post": { "summary": "Render a structured DNS message to wire format", "tags": ["wire"] } },
        "/compare": { "post": { "summary": "Compare two domain names", "tags": ["wire"] } },
        "/captures": { "get": { "summary": "List recent captures", "tags": ["captures"] } }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger metadata, populated at init time and
// consumed by gin-swagger's handler.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "wiredns debug API",
	Description:      "REST API for decoding, encoding, and comparing DNS wire messages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
