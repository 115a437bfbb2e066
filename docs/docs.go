// Package docs holds the OpenAPI document served by gin-swagger. Keep it in
// step with the godoc annotations on the v1 handlers.
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
        "/candidates": {
            "get": {
                "description": "Get every registered candidate. Returns an empty list when none exist.",
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Candidate"}}}}
                            ]
                        }
                    },
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "description": "Register a candidate. The tax id (CPF) must be unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Register a candidate",
                "parameters": [
                    {
                        "description": "Candidate JSON",
                        "name": "candidate",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/v1.CreateCandidateRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Candidate"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["candidates"],
                "summary": "Export candidates",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/matches": {
            "get": {
                "description": "Contests with at least one position whose profession the candidate has. Unknown or empty CPF yields an empty list.",
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Contests compatible with a candidate",
                "parameters": [
                    {"type": "string", "description": "Candidate tax id", "name": "cpf", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Contest"}}}}
                            ]
                        }
                    },
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Remove a candidate",
                "parameters": [
                    {"type": "integer", "description": "Candidate ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contests": {
            "get": {
                "description": "Get every registered contest with its positions. Returns an empty list when none exist.",
                "produces": ["application/json"],
                "tags": ["contests"],
                "summary": "List contests",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Contest"}}}}
                            ]
                        }
                    },
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "description": "Register a contest and its positions. The contest code must be unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contests"],
                "summary": "Register a contest",
                "parameters": [
                    {
                        "description": "Contest JSON",
                        "name": "contest",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/v1.CreateContestRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Contest"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contests/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["contests"],
                "summary": "Export contests",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contests/matches": {
            "get": {
                "description": "Candidates having at least one profession required by the contest. Unknown or empty code yields an empty list.",
                "produces": ["application/json"],
                "tags": ["contests"],
                "summary": "Candidates compatible with a contest",
                "parameters": [
                    {"type": "string", "description": "Contest code", "name": "code", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.Candidate"}}}}
                            ]
                        }
                    },
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/contests/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["contests"],
                "summary": "Remove a contest",
                "parameters": [
                    {"type": "integer", "description": "Contest ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Candidate": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "professions": {"type": "array", "items": {"type": "string"}},
                "tax_id": {"type": "string"}
            }
        },
        "domain.Contest": {
            "type": "object",
            "properties": {
                "agency": {"type": "string"},
                "code": {"type": "string"},
                "created_at": {"type": "string"},
                "edital": {"type": "string"},
                "id": {"type": "integer"},
                "positions": {"type": "array", "items": {"$ref": "#/definitions/domain.Position"}}
            }
        },
        "domain.Position": {
            "type": "object",
            "properties": {
                "profession": {"type": "string"},
                "vacancies": {"type": "integer"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "v1.CreateCandidateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "professions": {"type": "array", "items": {"type": "string"}},
                "tax_id": {"type": "string"}
            }
        },
        "v1.CreateContestRequest": {
            "type": "object",
            "properties": {
                "agency": {"type": "string"},
                "code": {"type": "string"},
                "edital": {"type": "string"},
                "positions": {"type": "array", "items": {"$ref": "#/definitions/v1.PositionRequest"}}
            }
        },
        "v1.PositionRequest": {
            "type": "object",
            "properties": {
                "profession": {"type": "string"},
                "vacancies": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Concurso Backend API",
	Description:      "Candidate and contest directories with profession matching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
