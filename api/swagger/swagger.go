package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Painel de Revendas API",
        "description": "API administrativa do painel de revendas",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Autenticação", "description": "Sessões de administradores"},
        {"name": "Revendas", "description": "Cadastro de revendas"},
        {"name": "Administradores", "description": "Contas administrativas"},
        {"name": "Logs", "description": "Trilha de auditoria"},
        {"name": "Dashboard", "description": "Resumo agregado do painel"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Verificação de saúde",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Autenticação"],
                "summary": "Autenticar administrador",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/validate": {
            "get": {
                "tags": ["Autenticação"],
                "summary": "Validar sessão",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdminIdentity"}},
                    "401": {"description": "Token ausente ou inválido", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Autenticação"],
                "summary": "Encerrar sessão",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/revendas": {
            "get": {
                "tags": ["Revendas"],
                "summary": "Listar revendas",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "estado", "in": "query", "type": "string"},
                    {"name": "ativo", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}
                }
            },
            "post": {
                "tags": ["Revendas"],
                "summary": "Cadastrar revenda",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRevendaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Revenda"}},
                    "409": {"description": "CNPJ já cadastrado", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/revendas/{id}": {
            "get": {
                "tags": ["Revendas"],
                "summary": "Detalhar revenda",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Revenda"}},
                    "404": {"description": "Não encontrada", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Revendas"],
                "summary": "Atualizar revenda",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRevendaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Revenda"}}
                }
            },
            "delete": {
                "tags": ["Revendas"],
                "summary": "Remover revenda",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/admins": {
            "get": {
                "tags": ["Administradores"],
                "summary": "Listar administradores",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "nivel_acesso", "in": "query", "type": "string"},
                    {"name": "ativo", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}
                }
            },
            "post": {
                "tags": ["Administradores"],
                "summary": "Cadastrar administrador",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAdminRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Admin"}},
                    "403": {"description": "Acesso negado", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/admins/{id}": {
            "get": {
                "tags": ["Administradores"],
                "summary": "Detalhar administrador",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Admin"}}
                }
            },
            "put": {
                "tags": ["Administradores"],
                "summary": "Atualizar administrador",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAdminRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Admin"}}
                }
            },
            "delete": {
                "tags": ["Administradores"],
                "summary": "Remover administrador",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/logs": {
            "get": {
                "tags": ["Logs"],
                "summary": "Listar logs de auditoria",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "admin_id", "in": "query", "type": "string"},
                    {"name": "acao", "in": "query", "type": "string"},
                    {"name": "recurso", "in": "query", "type": "string"},
                    {"name": "de", "in": "query", "type": "string"},
                    {"name": "ate", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}}
                }
            }
        },
        "/logs/export": {
            "get": {
                "tags": ["Logs"],
                "summary": "Exportar logs (CSV ou PDF)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Arquivo gerado"}
                }
            }
        },
        "/logs/{id}": {
            "get": {
                "tags": ["Logs"],
                "summary": "Detalhar registro de auditoria",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LogRegistro"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Resumo do painel",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardResumo"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "senha": {"type": "string"}
            },
            "required": ["email", "senha"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "admin": {"$ref": "#/definitions/Admin"},
                "token": {"type": "string"}
            }
        },
        "AdminIdentity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "nivel_acesso": {"type": "string"}
            }
        },
        "Admin": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "nivel_acesso": {"type": "string", "enum": ["super", "admin"]},
                "ativo": {"type": "boolean"},
                "ultimo_login": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateAdminRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "senha": {"type": "string"},
                "nivel_acesso": {"type": "string", "enum": ["super", "admin"]}
            },
            "required": ["nome", "email", "senha", "nivel_acesso"]
        },
        "UpdateAdminRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "nivel_acesso": {"type": "string", "enum": ["super", "admin"]},
                "ativo": {"type": "boolean"}
            },
            "required": ["nome", "nivel_acesso"]
        },
        "Revenda": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "razao_social": {"type": "string"},
                "cnpj": {"type": "string"},
                "email": {"type": "string"},
                "telefone": {"type": "string"},
                "cidade": {"type": "string"},
                "estado": {"type": "string"},
                "ativo": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateRevendaRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "razao_social": {"type": "string"},
                "cnpj": {"type": "string"},
                "email": {"type": "string"},
                "telefone": {"type": "string"},
                "cidade": {"type": "string"},
                "estado": {"type": "string"}
            },
            "required": ["nome", "cnpj", "email", "estado"]
        },
        "UpdateRevendaRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "razao_social": {"type": "string"},
                "cnpj": {"type": "string"},
                "email": {"type": "string"},
                "telefone": {"type": "string"},
                "cidade": {"type": "string"},
                "estado": {"type": "string"},
                "ativo": {"type": "boolean"}
            },
            "required": ["nome", "cnpj", "email", "estado"]
        },
        "LogRegistro": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "admin_id": {"type": "string"},
                "acao": {"type": "string"},
                "recurso": {"type": "string"},
                "recurso_id": {"type": "string"},
                "detalhes": {"type": "object"},
                "ip": {"type": "string"},
                "user_agent": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "DashboardResumo": {
            "type": "object",
            "properties": {
                "total_revendas": {"type": "integer"},
                "revendas_ativas": {"type": "integer"},
                "total_admins": {"type": "integer"},
                "logs_hoje": {"type": "integer"},
                "revendas_por_estado": {"type": "array", "items": {"type": "object"}},
                "revendas_por_mes": {"type": "array", "items": {"type": "object"}},
                "ultimos_logs": {"type": "array", "items": {"$ref": "#/definitions/LogRegistro"}},
                "gerado_em": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "ListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "code": {"type": "string"}
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
