// Package docs provides the swagger spec served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PingResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/catalog/JSON": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/api.CategoryResponse"}}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/catalog/users/JSON": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/api.UserResponse"}}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/catalog/items/JSON": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List items",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/api.ItemResponse"}}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/catalog/{category_id}/JSON": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List items in a category",
                "parameters": [
                    {"type": "integer", "name": "category_id", "in": "path", "required": true, "description": "Category ID"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/api.ItemResponse"}}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Soccer"}
            }
        },
        "api.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Alice"},
                "email": {"type": "string", "example": "alice@example.com"},
                "created_at": {"type": "string", "example": "2025-05-01T15:04:05Z"}
            }
        },
        "api.ItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 11},
                "name": {"type": "string", "example": "Snowboard"},
                "description": {"type": "string", "example": "Best for any terrain"},
                "category_id": {"type": "integer", "example": 3},
                "owner_id": {"type": "integer", "example": 7},
                "created_at": {"type": "string", "example": "2025-05-01T15:04:05Z"}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "pong"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Item Catalog API",
	Description:      "Public read API of the item catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
