// Package docs registers the OpenAPI description of the HTTP API
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/rooms": {
            "post": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Create a room",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/rooms/{code}/join": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Join a room in lobby",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true},
                    {"description": "Nickname", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.JoinRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.JoinResponse"}}
                }
            }
        },
        "/rooms/{code}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Caller's view of the room",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.RoomView"}}
                }
            }
        },
        "/rooms/{code}/faction": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Claim a faction",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true},
                    {"description": "Faction", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ActionResult"}}
                }
            }
        },
        "/rooms/{code}/start": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Start the game",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ActionResult"}}
                }
            }
        },
        "/rooms/{code}/leaderboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Room standings",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "Finished games of the caller's room",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/selection": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Submit three characters for the round",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true},
                    {"description": "Characters", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SelectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ActionResult"}}
                }
            }
        },
        "/rooms/{code}/resolve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Draw the attribute and score the round",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ActionResult"}}
                }
            }
        },
        "/rooms/{code}/advance": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Continue to the next round or finish",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ActionResult"}}
                }
            }
        },
        "/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Character roster by faction",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/model.Character"}}}}
                }
            }
        },
        "/games/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "Recently finished games",
                "parameters": [
                    {"type": "integer", "default": 20, "description": "Max games", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["archive"],
                "summary": "One archived game",
                "parameters": [
                    {"type": "string", "description": "Game id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.JoinRequest": {
            "type": "object",
            "properties": {"nickname": {"type": "string"}}
        },
        "handler.FactionRequest": {
            "type": "object",
            "properties": {"faction": {"type": "string", "enum": ["wei", "shu", "wu", "qun"]}}
        },
        "handler.SelectionRequest": {
            "type": "object",
            "properties": {"cards": {"type": "array", "items": {"type": "string"}}}
        },
        "model.Character": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "faction": {"type": "string"},
                "stats": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "model.JoinResponse": {
            "type": "object",
            "properties": {
                "participantId": {"type": "string"},
                "token": {"type": "string"},
                "room": {"$ref": "#/definitions/model.RoomView"}
            }
        },
        "model.ParticipantView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nickname": {"type": "string"},
                "faction": {"type": "string"},
                "isAi": {"type": "boolean"},
                "personality": {"type": "string"},
                "score": {"type": "integer"},
                "submitted": {"type": "boolean"},
                "cardsLeft": {"type": "integer"}
            }
        },
        "model.ParticipantResult": {
            "type": "object",
            "properties": {
                "participantId": {"type": "string"},
                "faction": {"type": "string"},
                "isAi": {"type": "boolean"},
                "cards": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "integer"},
                "rank": {"type": "integer"},
                "points": {"type": "integer"},
                "modifier": {"type": "string"},
                "line": {"type": "string"}
            }
        },
        "model.RoomView": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "status": {"type": "string", "enum": ["lobby", "playing", "resolution_pending", "resolution_result", "finished"]},
                "round": {"type": "integer"},
                "maxRounds": {"type": "integer"},
                "you": {"type": "string"},
                "yourFaction": {"type": "string"},
                "yourDeck": {"type": "array", "items": {"type": "string"}},
                "yourSelection": {"type": "array", "items": {"type": "string"}},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/model.ParticipantView"}},
                "takenFactions": {"type": "array", "items": {"type": "string"}},
                "lastAttribute": {"type": "string"},
                "lastResults": {"type": "array", "items": {"$ref": "#/definitions/model.ParticipantResult"}}
            }
        },
        "service.ActionResult": {
            "type": "object",
            "properties": {
                "room": {"$ref": "#/definitions/model.RoomView"},
                "applied": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Sanguo Card Battle API",
	Description:      "Sealed-bid Three Kingdoms card battles against AI factions",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
