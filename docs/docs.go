// Package docs registers the OpenAPI description served under /swagger.
//
// Regenerate with: swag init -g cmd/fedexd/main.go -o docs
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
        "/v1/rates": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Quote every service available for a route",
                "parameters": [
                    {"description": "Route, packages and options", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.rateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.rateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/shipments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Buy a label",
                "parameters": [
                    {"description": "Route, packages and options", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createShipmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.createShipmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.createShipmentResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/shipments/{tracking_number}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Void a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking number", "name": "tracking_number", "in": "path", "required": true},
                    {"type": "string", "description": "EXPRESS (default) or GROUND", "name": "shipment_type", "in": "query"},
                    {"type": "string", "description": "DELETE_ALL_PACKAGES (default)", "name": "deletion_type", "in": "query"},
                    {"type": "string", "description": "RFC 3339 ship timestamp", "name": "ship_timestamp", "in": "query"},
                    {"type": "boolean", "description": "Use the carrier test endpoint", "name": "test", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.deleteShipmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/tracking/{tracking_number}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tracking"],
                "summary": "Look up the scan history of a shipment",
                "parameters": [
                    {"type": "string", "description": "Tracking number", "name": "tracking_number", "in": "path", "required": true},
                    {"type": "string", "description": "TRACKING_NUMBER_OR_DOORTAG (default)", "name": "package_identifier_type", "in": "query"},
                    {"type": "boolean", "description": "Use the carrier test endpoint", "name": "test", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.trackingResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/tracking/{tracking_number}/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tracking"],
                "summary": "Queue a tracking refresh",
                "parameters": [
                    {"type": "string", "description": "Tracking number", "name": "tracking_number", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.acceptedResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.acceptedResponse": {"type": "object", "properties": {"message": {"type": "string"}, "tracking_number": {"type": "string"}}},
        "handler.locationRequest": {
            "type": "object",
            "required": ["address1", "city", "country_code", "postal_code"],
            "properties": {
                "name": {"type": "string"}, "company": {"type": "string"}, "phone": {"type": "string"},
                "address1": {"type": "string"}, "address2": {"type": "string"}, "city": {"type": "string"},
                "state": {"type": "string"}, "postal_code": {"type": "string"}, "country_code": {"type": "string"},
                "commercial": {"type": "boolean"}
            }
        },
        "handler.packageRequest": {
            "type": "object",
            "required": ["weight"],
            "properties": {
                "weight": {"type": "number"},
                "dimensions": {"type": "object", "properties": {"length": {"type": "number"}, "width": {"type": "number"}, "height": {"type": "number"}}}
            }
        },
        "handler.optionsRequest": {
            "type": "object",
            "properties": {
                "service_type": {"type": "string"}, "dropoff_type": {"type": "string"}, "packaging_type": {"type": "string"},
                "ship_date": {"type": "string"}, "shipper": {"$ref": "#/definitions/handler.locationRequest"},
                "customs": {"type": "object", "properties": {"currency": {"type": "string"}, "amount": {"type": "number"}}},
                "without_signature": {"type": "boolean"}, "dangerous_goods": {"type": "boolean"},
                "saturday_delivery": {"type": "boolean"}, "return_shipment": {"type": "boolean"},
                "return_transit_and_commit": {"type": "boolean"},
                "notifications": {"type": "array", "items": {"type": "object", "properties": {
                    "address": {"type": "string"}, "on_delivery": {"type": "boolean"}, "on_exception": {"type": "boolean"},
                    "on_shipment": {"type": "boolean"}, "on_tender": {"type": "boolean"}, "format": {"type": "string"},
                    "language": {"type": "string"}, "locale_code": {"type": "string"}
                }}},
                "notification_aggregation_type": {"type": "string"},
                "test": {"type": "boolean"}, "log_xml": {"type": "boolean"}
            }
        },
        "handler.rateRequest": {
            "type": "object",
            "required": ["destination", "origin", "packages"],
            "properties": {
                "carrier": {"type": "string"},
                "origin": {"$ref": "#/definitions/handler.locationRequest"},
                "destination": {"$ref": "#/definitions/handler.locationRequest"},
                "packages": {"type": "array", "items": {"$ref": "#/definitions/handler.packageRequest"}},
                "options": {"$ref": "#/definitions/handler.optionsRequest"}
            }
        },
        "handler.createShipmentRequest": {
            "type": "object",
            "required": ["destination", "origin", "packages"],
            "properties": {
                "carrier": {"type": "string"}, "client_id": {"type": "string"},
                "origin": {"$ref": "#/definitions/handler.locationRequest"},
                "destination": {"$ref": "#/definitions/handler.locationRequest"},
                "packages": {"type": "array", "items": {"$ref": "#/definitions/handler.packageRequest"}},
                "options": {"$ref": "#/definitions/handler.optionsRequest"}
            }
        },
        "handler.rateResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}, "message": {"type": "string"},
                "rates": {"type": "array", "items": {"type": "object", "properties": {
                    "carrier": {"type": "string"}, "service_code": {"type": "string"}, "service_name": {"type": "string"},
                    "total_price": {"type": "number"}, "currency": {"type": "string"}, "delivery_date": {"type": "string"}
                }}}
            }
        },
        "handler.createShipmentResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}, "message": {"type": "string"},
                "tracking_number": {"type": "string"}, "label_encoded": {"type": "string"},
                "_links": {"type": "object", "properties": {"self": {"type": "string"}, "tracking": {"type": "string"}}}
            }
        },
        "handler.deleteShipmentResponse": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}},
        "handler.trackingResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}, "message": {"type": "string"}, "tracking_number": {"type": "string"},
                "destination": {"type": "object"},
                "events": {"type": "array", "items": {"type": "object", "properties": {
                    "name": {"type": "string"}, "time": {"type": "string"}, "location": {"type": "object"}
                }}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FedEx Carrier API",
	Description:      "Rates, labels, cancellations and tracking through FedEx Web Services.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
