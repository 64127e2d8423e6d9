// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate from the handler annotations with `swag init`.
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
        "/healthz": {
            "get": {"tags": ["ops"], "summary": "Health check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/v1/user/signup": {
            "post": {"tags": ["user"], "summary": "User Registration", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/auth.SignupRequest"}}],
                "responses": {"200": {"description": "User created successfully", "schema": {"$ref": "#/definitions/apperror.MessageResponse"}},
                    "400": {"description": "Incorrect inputs", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "403": {"description": "User already exists", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}}}
        },
        "/api/v1/user/signin": {
            "post": {"tags": ["user"], "summary": "User Login", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/auth.SigninRequest"}}],
                "responses": {"200": {"description": "User logged in successfully", "schema": {"$ref": "#/definitions/auth.SigninResponse"}},
                    "400": {"description": "Incorrect inputs", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "403": {"description": "Sorry credentials are incorrect", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}}}
        },
        "/api/v1/user": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["user"], "summary": "Get current user's profile", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Invalid or expired token"}, "404": {"description": "User not found"}}}
        },
        "/api/v1/task/new-task": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["task"], "summary": "Create a task", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Incorrect inputs"}}}
        },
        "/api/v1/task": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["task"], "summary": "List tasks", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "priority", "in": "query"},
                    {"type": "string", "name": "dueDate", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "default": 0, "name": "skip", "in": "query"},
                    {"type": "integer", "default": 10, "name": "take", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "No tasks found for the given query parameters"}}}
        },
        "/api/v1/task/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["task"], "summary": "Get a task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found or access denied"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["task"], "summary": "Update a task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Task updated successfully"}, "404": {"description": "Task not found or access denied"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["task"], "summary": "Delete a task",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Task deleted successfully"}, "404": {"description": "Task not found or access denied"}}}
        },
        "/api/v1/goal/new-goal": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["goal"], "summary": "Create a goal",
                "responses": {"201": {"description": "Goal created successfully"}, "400": {"description": "Incorrect inputs"}}}
        },
        "/api/v1/goal": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["goal"], "summary": "List goals",
                "responses": {"200": {"description": "OK"}, "404": {"description": "No goals found for the user"}}}
        },
        "/api/v1/goal/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["goal"], "summary": "Get a goal",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Goal not found or access denied"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["goal"], "summary": "Update a goal",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Goal updated successfully"}, "404": {"description": "Goal not found or access denied"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["goal"], "summary": "Delete a goal",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Goal deleted successfully"}, "404": {"description": "Goal not found or access denied"}}}
        },
        "/api/v1/goal/{id}/progress": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["goal"], "summary": "Update goal progress",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Goal progress updated successfully"}, "400": {"description": "Incorrect inputs"}}}
        },
        "/api/v1/notes/new-note": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["notes"], "summary": "Create a note",
                "responses": {"201": {"description": "Notes created successfully"}, "400": {"description": "Incorrect inputs"}}}
        },
        "/api/v1/notes": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["notes"], "summary": "List notes",
                "responses": {"200": {"description": "OK"}, "404": {"description": "No notes found"}}}
        },
        "/api/v1/notes/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["notes"], "summary": "Get a note",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Notes not found or access denied"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["notes"], "summary": "Update a note",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Notes updated successfully"}, "404": {"description": "Notes not found or access denied"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["notes"], "summary": "Delete a note",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Notes deleted successfully"}, "404": {"description": "Notes not found or access denied"}}}
        },
        "/api/v1/session/new-session": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "Start a session",
                "responses": {"201": {"description": "Session created successfully"}, "404": {"description": "Task not found or user not authorized"}}}
        },
        "/api/v1/session": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "List sessions",
                "responses": {"200": {"description": "OK"}, "404": {"description": "No sessions found"}}}
        },
        "/api/v1/session/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "Get a session",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Session not found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "End a session",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Session updated successfully"}, "400": {"description": "Incorrect inputs"}, "404": {"description": "Session not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "Delete a session",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Session deleted successfully"}, "404": {"description": "Session not found"}}}
        }
    },
    "definitions": {
        "apperror.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "A description of the error"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/apperror.FieldError"}}
            }
        },
        "apperror.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "apperror.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "auth.SignupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string", "format": "email", "minLength": 5},
                "name": {"type": "string", "minLength": 3},
                "password": {"type": "string", "maxLength": 72, "minLength": 6}
            }
        },
        "auth.SigninRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "auth.SigninResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Taskflow API",
	Description:      "Personal productivity backend: tasks, goals, notes and timing sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
