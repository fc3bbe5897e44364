// Package docs registra la especificación OpenAPI del API de clientes en swag.
// swagger.json es la misma especificación que sirve la UI en /docs (DOCS_ENABLED=true).
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
        "/v1/client": {
            "get": {
                "description": "Lista los clientes registrados; la respuesta se envía en streaming",
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Listar clientes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ClientModel"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Registrar cliente",
                "parameters": [
                    {"description": "Datos del cliente", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ClientModel"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ClientModel"}, "headers": {"Location": {"type": "string", "description": "URI del cliente creado"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/v1/client/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Consultar un cliente por ID",
                "parameters": [
                    {"type": "string", "description": "ID del cliente", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ClientModel"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Actualizar cliente",
                "parameters": [
                    {"type": "string", "description": "ID del cliente", "name": "id", "in": "path", "required": true},
                    {"description": "Datos del cliente", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ClientModel"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ClientModel"}, "headers": {"Location": {"type": "string", "description": "URI del cliente"}}},
                    "400": {"description": "Bad Request"}
                }
            },
            "delete": {
                "tags": ["client"],
                "summary": "Eliminar cliente",
                "parameters": [
                    {"type": "string", "description": "ID del cliente", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/v1/client/{identityDocumentNumber}/{identityDocumentType}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Consultar cliente por documento de identidad",
                "parameters": [
                    {"type": "string", "description": "Número de documento", "name": "identityDocumentNumber", "in": "path", "required": true},
                    {"type": "string", "description": "Tipo de documento (DNI, CE, RUC, PASSPORT)", "name": "identityDocumentType", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ClientModel"}},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "dto.ClientModel": {
            "type": "object",
            "required": ["firstName", "lastName", "identityDocumentType", "identityDocumentNumber"],
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string", "maxLength": 100},
                "lastName": {"type": "string", "maxLength": 100},
                "identityDocumentType": {"type": "string", "enum": ["DNI", "CE", "RUC", "PASSPORT"]},
                "identityDocumentNumber": {"type": "string", "maxLength": 20},
                "email": {"type": "string"},
                "phone": {"type": "string", "maxLength": 20},
                "address": {"type": "string", "maxLength": 200},
                "clientType": {"type": "string", "enum": ["PERSONAL", "BUSINESS"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        },
        "dto.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "rule": {"type": "string"},
                "param": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo metadatos de la especificación registrada en swag.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Client API",
	Description:      "CRUD de clientes identificados por documento de identidad.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
