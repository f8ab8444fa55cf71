package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CourseCart API",
        "description": "Course enrollment backend: class listings, carts, roles, payments",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Bearer token issuance"},
        {"name": "Classes", "description": "Class offerings and review workflow"},
        {"name": "Selections", "description": "Student cart"},
        {"name": "Users", "description": "Users and roles"},
        {"name": "Payments", "description": "Payment intents and records"}
    ],
    "paths": {
        "/": {
            "get": {
                "summary": "Liveness line",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/jwt": {
            "post": {
                "tags": ["Auth"],
                "summary": "Issue a bearer token for the supplied email",
                "responses": {"200": {"description": "Signed token"}}
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List all classes (admin)",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Classes"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create a class offering (instructor)",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created class, status pending"}}
            }
        },
        "/classes/instructor/{email}": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes owned by an instructor",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Classes"}}
            }
        },
        "/classes/approved": {
            "get": {
                "tags": ["Classes"],
                "summary": "List approved classes, most enrolled first",
                "responses": {"200": {"description": "Classes"}}
            }
        },
        "/classes/popular": {
            "get": {
                "tags": ["Classes"],
                "summary": "List the most popular approved classes",
                "responses": {"200": {"description": "At most the configured popular limit"}}
            }
        },
        "/classes/{id}/approve": {
            "patch": {
                "tags": ["Classes"],
                "summary": "Approve a pending class",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Updated class"}}
            }
        },
        "/classes/{id}/deny": {
            "patch": {
                "tags": ["Classes"],
                "summary": "Deny a pending class",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Updated class"}}
            }
        },
        "/classes/{id}/feedback": {
            "put": {
                "tags": ["Classes"],
                "summary": "Attach admin feedback to a class",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Updated class"}}
            }
        },
        "/classes/{id}/seats": {
            "put": {
                "tags": ["Classes"],
                "summary": "Update seat and enrollment counters",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Updated class"}}
            }
        },
        "/selections": {
            "post": {
                "tags": ["Selections"],
                "summary": "Add a class to a student's cart",
                "responses": {"201": {"description": "Created selection"}}
            },
            "get": {
                "tags": ["Selections"],
                "summary": "List every selection across all users",
                "responses": {"200": {"description": "Selections"}}
            }
        },
        "/selections/{id}": {
            "get": {
                "tags": ["Selections"],
                "summary": "Fetch one selection by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Selection"}}
            },
            "delete": {
                "tags": ["Selections"],
                "summary": "Remove a selection from the cart",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/students/{email}/selections": {
            "get": {
                "tags": ["Selections"],
                "summary": "List one student's cart",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Selections"}}
            }
        },
        "/users": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a user on first sign-in (idempotent on email)",
                "responses": {
                    "200": {"description": "Member already exists"},
                    "201": {"description": "Created user"}
                }
            },
            "get": {
                "tags": ["Users"],
                "summary": "List all users (admin)",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Users"}}
            }
        },
        "/instructors": {
            "get": {
                "tags": ["Users"],
                "summary": "List users holding the instructor role",
                "responses": {"200": {"description": "Users"}}
            }
        },
        "/users/admin/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Report whether the addressed user is an admin",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "{\"admin\": bool}"}}
            }
        },
        "/users/instructor/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Report whether the addressed user is an instructor",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "{\"instructor\": bool}"}}
            }
        },
        "/users/{id}/admin": {
            "patch": {
                "tags": ["Users"],
                "summary": "Promote a user to admin",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Updated user"}}
            }
        },
        "/users/{id}/instructor": {
            "patch": {
                "tags": ["Users"],
                "summary": "Promote a user to instructor",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Updated user"}}
            }
        },
        "/users/{id}": {
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a user",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/create-payment-intent": {
            "post": {
                "tags": ["Payments"],
                "summary": "Open a card payment intent; amount is price in integer cents, currency USD",
                "responses": {"200": {"description": "{\"clientSecret\": string}"}}
            }
        },
        "/payments": {
            "post": {
                "tags": ["Payments"],
                "summary": "Record a completed payment and clear the paid selection",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Payment record"}}
            },
            "get": {
                "tags": ["Payments"],
                "summary": "List payments for an email, most recent first",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "email", "in": "query", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Payments"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "boolean"},
                "message": {"type": "string"}
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
