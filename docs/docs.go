// Package docs provides the generated OpenAPI document served at /api-docs.
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
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Database liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List all users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateUserInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Verify credentials and return the user",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/users/role/{role}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users with a given role",
                "parameters": [
                    {"type": "string", "description": "Role: admin, shop or user", "name": "role", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by ID",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateUserInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Soft-delete a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/shops": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "List all shops",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Create a shop",
                "parameters": [
                    {"description": "Shop", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateShopInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/shops/{shopId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Get a shop by ID",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Update a shop",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateShopInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Soft-delete a shop",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/shops/{shopId}/managers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "List a shop's managers",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Assign a user as shop manager",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true},
                    {"description": "User to assign", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddShopManagerInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/shops/{shopId}/managers/{userId}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Remove a manager from a shop",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true},
                    {"type": "integer", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/expenses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List all expenses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Create an expense",
                "parameters": [
                    {"description": "Expense", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateExpenseInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/expenses/shop/{shopId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "List a shop's expenses",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/expenses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Get an expense by ID",
                "parameters": [
                    {"type": "integer", "description": "Expense ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Update an expense",
                "parameters": [
                    {"type": "integer", "description": "Expense ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateExpenseInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["expenses"],
                "summary": "Soft-delete an expense",
                "parameters": [
                    {"type": "integer", "description": "Expense ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/income-transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["income-transactions"],
                "summary": "List all income transactions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["income-transactions"],
                "summary": "Record a customer payment",
                "parameters": [
                    {"description": "Payment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateIncomeTransactionInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/income-transactions/shop/{shopId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["income-transactions"],
                "summary": "List a shop's income transactions",
                "parameters": [
                    {"type": "integer", "description": "Shop ID", "name": "shopId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/income-transactions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["income-transactions"],
                "summary": "Get an income transaction by ID",
                "parameters": [
                    {"type": "integer", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["income-transactions"],
                "summary": "Update an income transaction",
                "parameters": [
                    {"type": "integer", "description": "Transaction ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateIncomeTransactionInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["income-transactions"],
                "summary": "Soft-delete an income transaction",
                "parameters": [
                    {"type": "integer", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/api/analytics/revenue": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Daily revenue series over a date range",
                "parameters": [
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start_date", "in": "query", "required": true},
                    {"type": "string", "description": "End date (YYYY-MM-DD)", "name": "end_date", "in": "query", "required": true},
                    {"type": "integer", "description": "Restrict to one shop", "name": "shop_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "count": {"type": "integer"},
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "message": {"type": "string"}
                        }
                    }
                }
            }
        },
        "controllers.CreateUserInput": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "shop", "user"]},
                "phone": {"type": "string"}
            }
        },
        "controllers.UpdateUserInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["admin", "shop", "user"]},
                "phone": {"type": "string"}
            }
        },
        "controllers.LoginInput": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.CreateShopInput": {
            "type": "object",
            "required": ["shop_name"],
            "properties": {
                "shop_name": {"type": "string"},
                "description": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "controllers.UpdateShopInput": {
            "type": "object",
            "properties": {
                "shop_name": {"type": "string"},
                "description": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "controllers.AddShopManagerInput": {
            "type": "object",
            "required": ["user_id"],
            "properties": {
                "user_id": {"type": "integer"}
            }
        },
        "controllers.CreateExpenseInput": {
            "type": "object",
            "required": ["amount", "expense_date", "shop_id"],
            "properties": {
                "shop_id": {"type": "integer"},
                "amount": {"type": "number"},
                "expense_date": {"type": "string", "format": "date-time"}
            }
        },
        "controllers.UpdateExpenseInput": {
            "type": "object",
            "properties": {
                "shop_id": {"type": "integer"},
                "amount": {"type": "number"},
                "expense_date": {"type": "string", "format": "date-time"}
            }
        },
        "controllers.CreateIncomeTransactionInput": {
            "type": "object",
            "required": ["amount", "customer_name", "shop_id", "transaction_date"],
            "properties": {
                "shop_id": {"type": "integer"},
                "customer_name": {"type": "string"},
                "amount": {"type": "number"},
                "transaction_date": {"type": "string", "format": "date-time"}
            }
        },
        "controllers.UpdateIncomeTransactionInput": {
            "type": "object",
            "properties": {
                "shop_id": {"type": "integer"},
                "customer_name": {"type": "string"},
                "amount": {"type": "number"},
                "transaction_date": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GroceryPro API",
	Description:      "Multi-tenant grocery-shop management backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
