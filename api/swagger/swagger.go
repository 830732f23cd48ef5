package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Classtime Scheduler API",
        "description": "SAT-based weekly class schedule generator",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    }
                }
            }
        },
        "/api/v1/schedules/generate": {
            "post": {
                "summary": "Generate ranked candidate schedules for a course list",
                "responses": {
                    "200": {
                        "description": "Ranked schedules"
                    }
                }
            }
        },
        "/api/v1/schedules": {
            "post": {
                "summary": "Save a generated schedule for a student/term",
                "responses": {
                    "201": {
                        "description": "Saved schedule"
                    }
                }
            },
            "get": {
                "summary": "List saved schedules for a student/term",
                "responses": {
                    "200": {
                        "description": "Saved schedules"
                    }
                }
            }
        },
        "/api/v1/schedules/{id}": {
            "delete": {
                "summary": "Delete a saved schedule",
                "responses": {
                    "204": {
                        "description": "Deleted"
                    }
                }
            }
        },
        "/api/v1/schedules/{id}/pdf": {
            "get": {
                "summary": "Render a saved schedule as a printable timetable PDF",
                "responses": {
                    "200": {
                        "description": "PDF document"
                    }
                }
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
