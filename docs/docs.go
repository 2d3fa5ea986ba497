// Package docs registers the OpenAPI description of the café API with swag.
// Regenerate with: swag init -g cmd/cafe-service/main.go
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
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in as customer or staff",
                "parameters": [{"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a customer",
                "parameters": [{"description": "new customer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.SignupRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user, or null",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/main.userResponse"}}}
            }
        },
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "List all menu items",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.ListResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Create a menu item (staff)",
                "parameters": [{"description": "item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/menu.CreateItemRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.itemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/menu/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Edit a menu item or toggle availability (staff)",
                "parameters": [
                    {"type": "string", "description": "item id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/menu.UpdateItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.itemResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "delete": {
                "tags": ["menu"],
                "summary": "Delete a menu item (staff)",
                "parameters": [{"type": "string", "description": "item id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders visible to the caller",
                "parameters": [{"type": "string", "description": "mine", "name": "scope", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.ordersResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order (customer)",
                "parameters": [{"description": "lines", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.orderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get one order",
                "parameters": [{"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.orderResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Change order status (staff)",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true},
                    {"description": "target status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.AdvanceStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.orderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/orders/{id}/qr": {
            "get": {
                "produces": ["image/png", "application/json"],
                "tags": ["orders"],
                "summary": "QR code of the order id",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "png or dataurl", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/staff/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["staff"],
                "summary": "All orders for the staff dashboard",
                "parameters": [{"type": "boolean", "description": "hide HandedOver and Cancelled", "name": "active", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.ordersResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/staff/scan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["staff"],
                "summary": "Resolve a scanned QR payload to an order",
                "parameters": [{"description": "scanned text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/main.scanRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.orderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["ops"],
                "summary": "Database liveness",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        }
    },
    "definitions": {
        "httpx.HTTPError": {"type": "object", "properties": {"error": {"type": "string", "example": "not found"}}},
        "user.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string", "enum": ["customer", "staff"]},
                "phone": {"type": "string"},
                "name": {"type": "string"},
                "photoUrl": {"type": "string"}
            }
        },
        "user.LoginRequest": {
            "type": "object",
            "properties": {
                "phone": {"type": "string", "example": "9999999999"},
                "password": {"type": "string", "example": "secret"},
                "isStaff": {"type": "boolean"}
            }
        },
        "user.SignupRequest": {
            "type": "object",
            "properties": {
                "phone": {"type": "string", "example": "9999999999"},
                "name": {"type": "string", "example": "Asha"},
                "password": {"type": "string", "example": "secret"},
                "photoUrl": {"type": "string"}
            }
        },
        "main.userResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/user.User"}}},
        "menu.MenuItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "50"},
                "imageUrl": {"type": "string"},
                "isAvailable": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "menu.ListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}}},
        "menu.CreateItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Coffee"},
                "price": {"type": "string", "example": "50"},
                "description": {"type": "string", "example": "Hot brewed coffee"},
                "imageUrl": {"type": "string"}
            }
        },
        "menu.UpdateItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "string"},
                "imageUrl": {"type": "string"},
                "isAvailable": {"type": "boolean"}
            }
        },
        "main.itemResponse": {"type": "object", "properties": {"item": {"$ref": "#/definitions/menu.MenuItem"}}},
        "order.CreateOrderItem": {
            "type": "object",
            "properties": {
                "menuItemId": {"type": "string"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "order.CreateOrderRequest": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/order.CreateOrderItem"}}}},
        "order.AdvanceStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["Placed", "PaymentReceived", "Preparing", "Ready", "HandedOver", "Cancelled"]},
                "force": {"type": "boolean"}
            }
        },
        "order.Item": {
            "type": "object",
            "properties": {
                "menuItemId": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "priceAtOrder": {"type": "string"}
            }
        },
        "order.CustomerSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "photoUrl": {"type": "string"}
            }
        },
        "order.View": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customerId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}},
                "totalAmount": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "customer": {"$ref": "#/definitions/order.CustomerSummary"}
            }
        },
        "main.orderResponse": {"type": "object", "properties": {"order": {"$ref": "#/definitions/order.View"}}},
        "main.ordersResponse": {"type": "object", "properties": {"orders": {"type": "array", "items": {"$ref": "#/definitions/order.View"}}}},
        "main.scanRequest": {"type": "object", "properties": {"payload": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Café Orders API",
	Description:      "Menu, ordering and fulfillment workflow for a small café.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
