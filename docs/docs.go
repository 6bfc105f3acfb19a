// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/auth/me": {
            "get": {"tags": ["auth"], "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CurrentUser"}}}}
        },
        "/forms": {
            "get": {"tags": ["forms"], "summary": "List my forms",
                "parameters": [{"type": "integer", "default": 10, "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Form"}}}}},
            "post": {"tags": ["forms"], "summary": "Create a form",
                "parameters": [{"name": "form", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FormInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/forms/{id}": {
            "get": {"tags": ["forms"], "summary": "Get a form",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["forms"], "summary": "Update a form",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "form", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FormInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"tags": ["forms"], "summary": "Delete a form",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/forms/{id}/publish": {
            "post": {"tags": ["forms"], "summary": "Publish a form",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}}}}
        },
        "/dashboard/summary": {
            "get": {"tags": ["dashboard"], "summary": "Dashboard counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DashboardSummary"}}}}
        },
        "/responses": {
            "get": {"tags": ["responses"], "summary": "List patient responses",
                "parameters": [{"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "formId", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaginatedResponse"}}}}
        },
        "/responses/{id}": {
            "delete": {"tags": ["responses"], "summary": "Delete a response",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/templates": {
            "get": {"tags": ["templates"], "summary": "Browse form templates",
                "parameters": [{"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "default": "All", "name": "category", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/templates/{id}/use": {
            "post": {"tags": ["templates"], "summary": "Create a draft form from a template",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Form"}}}}
        },
        "/settings": {
            "get": {"tags": ["settings"], "summary": "Clinic settings", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["settings"], "summary": "Save clinic settings", "responses": {"200": {"description": "OK"}}}
        },
        "/status": {
            "get": {"tags": ["status"], "summary": "Storage mode",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DatabaseStatus"}}}}
        },
        "/status/dismiss-banner": {
            "post": {"tags": ["status"], "summary": "Hide the local storage banner", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "models.CurrentUser": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}}},
        "models.ErrorResponse": {"type": "object", "properties": {"status": {"type": "integer"}, "message": {"type": "string"}}},
        "models.FormField": {"type": "object", "properties": {
            "id": {"type": "string"},
            "type": {"type": "string", "enum": ["text", "textarea", "select", "radio", "checkbox", "date", "email", "phone", "number"]},
            "label": {"type": "string"}, "placeholder": {"type": "string"}, "required": {"type": "boolean"},
            "options": {"type": "array", "items": {"type": "string"}}}},
        "models.FormInput": {"type": "object", "properties": {
            "title": {"type": "string"}, "description": {"type": "string"},
            "fields": {"type": "array", "items": {"$ref": "#/definitions/models.FormField"}},
            "status": {"type": "string", "enum": ["draft", "published"]}}},
        "models.Form": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "fields": {"type": "array", "items": {"$ref": "#/definitions/models.FormField"}},
            "status": {"type": "string", "enum": ["draft", "published"]},
            "responseCount": {"type": "integer"}, "ownerId": {"type": "string"},
            "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "models.DashboardSummary": {"type": "object", "properties": {
            "totalForms": {"type": "integer"}, "publishedForms": {"type": "integer"},
            "draftForms": {"type": "integer"}, "totalResponses": {"type": "integer"},
            "recentForms": {"type": "array", "items": {"$ref": "#/definitions/models.Form"}}}},
        "models.PaginatedResponse": {"type": "object", "properties": {
            "data": {}, "total": {"type": "integer"}, "page": {"type": "integer"}, "limit": {"type": "integer"},
            "totalPages": {"type": "integer"}, "hasNext": {"type": "boolean"}, "hasPrevious": {"type": "boolean"}}},
        "models.DatabaseStatus": {"type": "object", "properties": {
            "databaseAvailable": {"type": "boolean"}, "mode": {"type": "string"},
            "bannerDismissed": {"type": "boolean"}, "showBanner": {"type": "boolean"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Medical Intake Forms API",
	Description:      "Form builder backend with local storage fallback when the database is unavailable.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
