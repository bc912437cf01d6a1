// Package docs registra el documento OpenAPI que sirve /swagger/*.
// Las anotaciones de los handlers permiten regenerarlo con `swag init -g cmd/api/main.go`.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}
        },
        "/pets": {
            "get": {
                "tags": ["catalog"],
                "summary": "Listar mascotas",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "species", "in": "query", "enum": ["dog", "cat", "other"]},
                    {"type": "string", "name": "gender", "in": "query", "enum": ["male", "female"]},
                    {"type": "string", "name": "size", "in": "query", "enum": ["small", "medium", "large"]},
                    {"type": "string", "name": "age", "in": "query", "enum": ["young", "adult", "senior"]}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "invalid filter"}}
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["catalog"],
                "summary": "Obtener mascota",
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "not found"}}
            }
        },
        "/testimonials": {
            "get": {"tags": ["catalog"], "summary": "Listar testimonios", "responses": {"200": {"description": "OK"}}}
        },
        "/{variant}/session": {
            "get": {"tags": ["session"], "summary": "Sesión actual", "parameters": [{"$ref": "#/parameters/variant"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["session"], "summary": "Logout (idempotente)", "parameters": [{"$ref": "#/parameters/variant"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/{variant}/session/login": {
            "post": {
                "tags": ["session"],
                "summary": "Login con credenciales de demo",
                "parameters": [{"$ref": "#/parameters/variant"}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}}
            }
        },
        "/{variant}/session/guest": {
            "post": {"tags": ["session"], "summary": "Acceso anónimo", "parameters": [{"$ref": "#/parameters/variant"}], "responses": {"201": {"description": "Created"}}}
        },
        "/{variant}/pages/{pageID}": {
            "get": {
                "tags": ["pages"],
                "summary": "Navegar a una página del portal",
                "parameters": [
                    {"$ref": "#/parameters/variant"},
                    {"type": "string", "name": "pageID", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "portal not found"}}
            }
        },
        "/{variant}/forms/{formID}": {
            "post": {"tags": ["forms"], "summary": "Abrir (o retomar) un formulario", "parameters": [{"$ref": "#/parameters/variant"}, {"$ref": "#/parameters/formID"}], "responses": {"200": {"description": "OK"}, "404": {"description": "entity not found"}}},
            "get": {"tags": ["forms"], "summary": "Ver draft", "parameters": [{"$ref": "#/parameters/variant"}, {"$ref": "#/parameters/formID"}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["forms"], "summary": "Editar campos del draft", "parameters": [{"$ref": "#/parameters/variant"}, {"$ref": "#/parameters/formID"}], "responses": {"200": {"description": "OK"}, "400": {"description": "unknown field / invalid option"}, "409": {"description": "form already submitted"}}}
        },
        "/{variant}/forms/{formID}/submit": {
            "post": {"tags": ["forms"], "summary": "Enviar formulario", "parameters": [{"$ref": "#/parameters/variant"}, {"$ref": "#/parameters/formID"}], "responses": {"200": {"description": "OK"}, "409": {"description": "form already submitted / not at final step"}, "422": {"description": "missing required fields"}}}
        },
        "/api/chat/messages": {
            "post": {"tags": ["api"], "summary": "Mensaje al chatbot", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}
        },
        "/api/bookings": {
            "get": {"tags": ["api"], "summary": "Mis sesiones", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["api"], "summary": "Reservar sesión", "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/api/admin/stats": {
            "get": {"tags": ["admin"], "summary": "Métricas del dashboard", "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "forbidden"}}}
        }
    },
    "parameters": {
        "variant": {"type": "string", "name": "variant", "in": "path", "required": true, "enum": ["pet-adoption", "mental-health"]},
        "formID": {"type": "string", "name": "formID", "in": "path", "required": true, "enum": ["adoption", "booking", "mood-entry", "signup"]}
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Care Portals API",
	Description:      "Portales de demo: adopción de mascotas y bienestar estudiantil.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
