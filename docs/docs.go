// Package docs registers the OpenAPI document served under /swagger.
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
    "securityDefinitions": {
        "Role": {
            "type": "apiKey",
            "name": "X-User-Role",
            "in": "header"
        }
    },
    "paths": {
        "/pricing/quote": {"get": {"tags": ["pricing"], "summary": "Quote a public price by margin tier or markup"}},
        "/orders": {"post": {"tags": ["orders"], "summary": "Create an order"}},
        "/orders/{id}": {"get": {"tags": ["orders"], "summary": "Get an order with its phase"}},
        "/orders/{id}/permissions": {"get": {"tags": ["orders"], "summary": "Permissions of the caller's role on the current phase"}},
        "/orders/{id}/diagnosis": {"post": {"tags": ["orders"], "summary": "Record diagnosis items"}},
        "/orders/{id}/advance": {"post": {"tags": ["orders"], "summary": "Advance to the next phase"}},
        "/orders/{id}/admin-validation/approve": {"post": {"tags": ["orders"], "summary": "Approve the administrative validation"}},
        "/orders/{id}/admin-validation/reject": {"post": {"tags": ["orders"], "summary": "Reject the administrative validation"}},
        "/orders/{id}/authorization": {
            "get": {"tags": ["authorization"], "summary": "Unified list of authorizable items"},
            "post": {"tags": ["authorization"], "summary": "Submit customer decisions"}
        },
        "/orders/{id}/authorization/audits": {"get": {"tags": ["authorization"], "summary": "Authorization audit trail"}},
        "/orders/{id}/lost-sales": {"get": {"tags": ["authorization"], "summary": "Lost sales of the order"}},
        "/orders/{id}/invoices": {"post": {"tags": ["invoices"], "summary": "Ingest parsed supplier invoices"}},
        "/orders/{id}/line-items": {"get": {"tags": ["invoices"], "summary": "List invoice line items"}},
        "/orders/{id}/line-items/validate": {"post": {"tags": ["invoices"], "summary": "Match line items against the catalog"}},
        "/orders/{id}/line-items/process": {"post": {"tags": ["invoices"], "summary": "Generate SKUs for classified line items"}},
        "/orders/{id}/line-items/{item_id}/classification": {"put": {"tags": ["invoices"], "summary": "Classify a new product manually"}},
        "/orders/{id}/classification-queue": {"get": {"tags": ["invoices"], "summary": "Manual classification queue"}},
        "/orders/{id}/supplier-summary": {"get": {"tags": ["purchase-orders"], "summary": "Processed items grouped by supplier"}},
        "/orders/{id}/pre-oc/approve": {"post": {"tags": ["purchase-orders"], "summary": "Approve the pre purchase-order validation"}},
        "/orders/{id}/pre-oc/reject": {"post": {"tags": ["purchase-orders"], "summary": "Reject the pre purchase-order validation"}},
        "/orders/{id}/purchase-order": {"post": {"tags": ["purchase-orders"], "summary": "Issue the purchase-order number"}},
        "/orders/{id}/delivery": {"post": {"tags": ["delivery"], "summary": "Deliver the vehicle and charge the authorized total"}},
        "/orders/{id}/payments": {"get": {"tags": ["delivery"], "summary": "Payments of the order"}},
        "/ping": {"get": {"tags": ["health"], "summary": "Liveness"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Taller XPTO Order Lifecycle API",
	Description:      "Order lifecycle, customer authorization and invoice classification for the repair shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
