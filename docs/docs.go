// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
    "paths": {
        "/jwt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Issue a session token",
                "parameters": [
                    {"name": "identity", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SessionContract"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Clear the session cookie",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}}
                }
            }
        },
        "/job": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Create a job",
                "parameters": [
                    {"name": "job", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.JobContract"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.InsertResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/job/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Get a job",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Patch a job",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "patch", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UpdateResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/jobs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List jobs",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "filter", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/jobs/{email}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List jobs posted by a host",
                "parameters": [
                    {"type": "string", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/jobs/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Delete a job",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DeleteResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/jobs-export": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["jobs"],
                "summary": "Export jobs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/counts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Count jobs",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}
                }
            }
        },
        "/applied": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Apply to a job",
                "parameters": [
                    {"name": "application", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.ApplicationContract"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.InsertResult"}},
                    "400": {"description": "You have already applied on this job", "schema": {"type": "string"}}
                }
            }
        },
        "/applied-jobs": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List every application (admin only)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/applied-jobs/{email}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List an applicant's applications",
                "parameters": [
                    {"type": "string", "name": "email", "in": "path", "required": true},
                    {"type": "string", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/user": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Upsert a user on login",
                "parameters": [
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UserContract"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UpdateResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"CookieAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users (admin only)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/users/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "string", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/users/update/{email}": {
            "patch": {
                "security": [{"CookieAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Patch a user",
                "parameters": [
                    {"type": "string", "name": "email", "in": "path", "required": true},
                    {"name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UserPatchContract"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UpdateResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.InsertResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "insertedId": {"type": "string"}
            }
        },
        "domain.UpdateResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "matchedCount": {"type": "integer"},
                "modifiedCount": {"type": "integer"},
                "upsertedCount": {"type": "integer"},
                "upsertedId": {"type": "string"}
            }
        },
        "domain.DeleteResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "deletedCount": {"type": "integer"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "v1.SessionContract": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"}
            }
        },
        "v1.JobContract": {
            "type": "object",
            "required": ["jobTitle"],
            "properties": {
                "jobTitle": {"type": "string"},
                "category": {"type": "string"},
                "jobOwner": {"type": "object", "properties": {"email": {"type": "string"}}}
            }
        },
        "v1.ApplicationContract": {
            "type": "object",
            "required": ["email", "jobId"],
            "properties": {
                "email": {"type": "string"},
                "jobId": {"type": "string"},
                "category": {"type": "string"}
            }
        },
        "v1.UserContract": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["", "admin", "host"]},
                "status": {"type": "string"}
            }
        },
        "v1.UserPatchContract": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["", "admin", "host"]}
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Job Quest API",
	Description:      "Job board backend: jobs, applications and users behind cookie based sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
