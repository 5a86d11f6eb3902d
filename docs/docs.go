// Package docs registra o documento Swagger da API do catálogo.
// Regenerar com: swag init -g cmd/main.go -o docs
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
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Lista usuários",
                "parameters": [
                    {"type": "integer", "description": "Página (padrão 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Itens por página (padrão 10, máximo 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Cria usuário",
                "parameters": [
                    {"description": "Dados do usuário", "name": "user", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/users/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Busca usuários",
                "parameters": [
                    {"type": "string", "description": "Termo de busca", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Busca usuário por ID",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Atualiza usuário",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "user", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Remove usuário",
                "parameters": [
                    {"type": "string", "description": "ID do usuário", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Lista produtos",
                "parameters": [
                    {"type": "integer", "description": "Página (padrão 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Itens por página (padrão 10, máximo 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Categoria (sem diferenciar caixa)", "name": "category", "in": "query"},
                    {"type": "number", "description": "Preço mínimo (inclusivo)", "name": "minPrice", "in": "query"},
                    {"type": "number", "description": "Preço máximo (inclusivo)", "name": "maxPrice", "in": "query"},
                    {"type": "boolean", "description": "Disponibilidade em estoque", "name": "inStock", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Cria produto",
                "parameters": [
                    {"description": "Dados do produto", "name": "product", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/products/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Lista categorias",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Busca produto por ID",
                "parameters": [
                    {"type": "string", "description": "ID do produto", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Atualiza produto",
                "parameters": [
                    {"type": "string", "description": "ID do produto", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "product", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Remove produto",
                "parameters": [
                    {"type": "string", "description": "ID do produto", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string", "example": "Usuário criado com sucesso"},
                "data": {},
                "pagination": {"$ref": "#/definitions/domain.Pagination"},
                "count": {"type": "integer"},
                "filters": {}
            }
        },
        "domain.Pagination": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer", "example": 1},
                "totalPages": {"type": "integer", "example": 3},
                "totalItems": {"type": "integer", "example": 25},
                "itemsPerPage": {"type": "integer", "example": 10}
            }
        },
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "code": {"type": "integer", "example": 400},
                "category": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}}
            }
        },
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "email"},
                "message": {"type": "string", "example": "Informe um endereço de email válido"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "example": "John Doe"},
                "email": {"type": "string", "example": "john@example.com"},
                "age": {"type": "integer", "example": 30},
                "role": {"type": "string", "enum": ["user", "admin", "moderator"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "example": "Laptop Pro"},
                "description": {"type": "string"},
                "price": {"type": "number", "example": 1299.99},
                "category": {"type": "string", "example": "Electronics"},
                "stock": {"type": "integer", "example": 50},
                "inStock": {"type": "boolean", "example": true},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo contém as informações exportadas do documento Swagger.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "GoCatalog API",
	Description:      "API REST de usuários e produtos com armazenamento em memória.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
