// Package docs provides the Swagger specification served by the API.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "Login successful"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/users": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "User registered successfully"},
                    "400": {"description": "Invalid request data or duplicate user"}
                }
            }
        },
        "/users/{identifier}/student": {
            "post": {
                "tags": ["users"],
                "summary": "Register a student profile",
                "responses": {
                    "201": {"description": "Student profile created"},
                    "404": {"description": "User or career not found"}
                }
            }
        },
        "/users/{identifier}/role": {
            "post": {
                "tags": ["users"],
                "summary": "Toggle the administrative role",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Role toggled"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/careers": {
            "get": {
                "tags": ["careers"],
                "summary": "Get all careers",
                "responses": {
                    "200": {"description": "Careers retrieved successfully"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["courses"],
                "summary": "Get all courses",
                "responses": {
                    "200": {"description": "Courses retrieved successfully"}
                }
            },
            "post": {
                "tags": ["courses"],
                "summary": "Create a course",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Course created successfully"}
                }
            }
        },
        "/courses/{id}": {
            "put": {
                "tags": ["courses"],
                "summary": "Update a course",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Course updated successfully"},
                    "404": {"description": "Course not found"}
                }
            },
            "delete": {
                "tags": ["courses"],
                "summary": "Delete a course",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Course deleted successfully"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/courses/{id}/sessions": {
            "get": {
                "tags": ["courses"],
                "summary": "Get course sessions",
                "responses": {
                    "200": {"description": "Sessions retrieved successfully"},
                    "404": {"description": "Course or user not found"}
                }
            }
        },
        "/sessions": {
            "post": {
                "tags": ["sessions"],
                "summary": "Create a session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Session created successfully"}
                }
            }
        },
        "/sessions/{id}": {
            "delete": {
                "tags": ["sessions"],
                "summary": "Delete a session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Session deleted successfully"},
                    "404": {"description": "Session not found"}
                }
            }
        },
        "/sessions/{id}/courses/{courseId}/enrollment": {
            "post": {
                "tags": ["enrollments"],
                "summary": "Toggle an enrollment",
                "responses": {
                    "200": {"description": "Enrollment toggled"},
                    "400": {"description": "Inactive course or session, or no capacity"}
                }
            }
        },
        "/reports/{identifier}": {
            "get": {
                "tags": ["reports"],
                "summary": "Get the enrollment report",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Report retrieved successfully"}
                }
            }
        },
        "/reports/{identifier}/export": {
            "get": {
                "tags": ["reports"],
                "summary": "Export the enrollment report",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "xlsx workbook"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "ok"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bienestar Universitario API",
	Description:      "Course registration backend for the university wellness program",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
