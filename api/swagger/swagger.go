package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Psycheverse Creator Admin API",
        "description": "Administrative API for the creator directory",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Creators", "description": "Creator catalog management"},
        {"name": "Settings", "description": "Site settings key/value store"},
        {"name": "Analytics", "description": "Catalog aggregates"},
        {"name": "Exports", "description": "Catalog exports"}
    ],
    "paths": {
        "/creators": {
            "get": {
                "tags": ["Creators"],
                "summary": "List creators, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Creators"],
                "summary": "Register a new creator",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCreatorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/creators/{id}": {
            "get": {
                "tags": ["Creators"],
                "summary": "Get creator by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "patch": {
                "tags": ["Creators"],
                "summary": "Partially update a creator",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCreatorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "No fields provided or validation error"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Creators"],
                "summary": "Delete a creator",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/creators/{id}/avatar": {
            "post": {
                "tags": ["Creators"],
                "summary": "Upload a creator avatar",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "avatar", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "List settings as a flat object",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Upsert settings",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/analytics/stats": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Creator catalog aggregates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/creators": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the catalog as a JSON attachment",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Exports"],
                "summary": "Generate a CSV or PDF export file",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/creators/download": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a generated export via signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "definitions": {
        "Creator": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "display_name": {"type": "string"},
                "description": {"type": "string"},
                "avatar_url": {"type": "string"},
                "status": {"type": "string"},
                "viewers": {"type": "integer"},
                "is_featured": {"type": "boolean"},
                "featured_priority": {"type": "integer"},
                "is_paid_member": {"type": "boolean"},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreateCreatorRequest": {
            "type": "object",
            "required": ["display_name"],
            "properties": {
                "display_name": {"type": "string"},
                "description": {"type": "string"},
                "avatar_url": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "viewers": {"type": "integer"},
                "is_featured": {"type": "boolean"},
                "featured_priority": {"type": "integer"},
                "is_paid_member": {"type": "boolean"},
                "platforms": {"type": "array", "items": {"type": "string"}}
            }
        },
        "UpdateCreatorRequest": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "description": {"type": "string"},
                "avatar_url": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "viewers": {"type": "integer"},
                "is_featured": {"type": "boolean"},
                "featured_priority": {"type": "integer"},
                "is_paid_member": {"type": "boolean"},
                "platforms": {"type": "array", "items": {"type": "string"}}
            }
        },
        "UpdateSettingsRequest": {
            "type": "object",
            "required": ["settings"],
            "properties": {
                "settings": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "CreatorStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "active": {"type": "integer"},
                "featured": {"type": "integer"},
                "totalViewers": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
