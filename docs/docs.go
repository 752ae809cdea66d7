// Package docs registers the Swagger 2.0 description of the warehouse HTTP API
// with swag. echo-swagger serves it under /swagger/.
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
    "paths": {
        "/layouts": {
            "post": {
                "summary": "Create a layout",
                "tags": ["layouts"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLayoutRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}},
                    "422": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/layouts/{id}": {
            "get": {
                "summary": "Layout tree: zones, areas, shelves and bins",
                "tags": ["layouts"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Layout"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/layouts/{id}/zones": {
            "post": {
                "summary": "Add a pick zone",
                "tags": ["layouts"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateZoneRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}}}
            }
        },
        "/layouts/{id}/areas": {
            "post": {
                "summary": "Add an area",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/PlacementRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}}}
            }
        },
        "/layouts/{id}/bins": {
            "get": {
                "summary": "Bins of a layout with status and utilisation",
                "tags": ["layouts"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "query", "name": "limit", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Bins"}}}
            }
        },
        "/layouts/{id}/heatmap": {
            "get": {
                "summary": "Movement heatmap over the trailing days",
                "tags": ["analytics"],
                "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/days"}, {"$ref": "#/parameters/asOf"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Heatmap"}}}
            }
        },
        "/layouts/{id}/heatmap.xlsx": {
            "get": {
                "summary": "Heatmap as an Excel workbook",
                "tags": ["analytics"],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/days"}, {"$ref": "#/parameters/asOf"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/layouts/{id}/metrics": {
            "get": {
                "summary": "Daily picking, inventory and efficiency metrics",
                "tags": ["analytics"],
                "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/asOf"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Metrics"}}}
            }
        },
        "/layouts/{id}/movements/analytics": {
            "get": {
                "summary": "Movement counts, distances and busiest bins",
                "tags": ["analytics"],
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"in": "query", "name": "from", "type": "string", "format": "date-time"},
                    {"in": "query", "name": "to", "type": "string", "format": "date-time"},
                    {"in": "query", "name": "limit", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/MovementAnalytics"}}}
            }
        },
        "/areas/{id}/shelves": {
            "post": {
                "summary": "Add a shelf, optionally partitioned into a bin grid",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateShelfRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatedShelf"}}}
            }
        },
        "/shelves/{id}/bins": {
            "post": {
                "summary": "Add a bin",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBinRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}}}
            }
        },
        "/shelves/{id}/dimensions": {
            "put": {
                "summary": "Resize a shelf and regenerate its bins",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ResizeShelfRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BinIDs"}},
                    "409": {"description": "A bin holds inventory", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/bins/{id}": {
            "patch": {
                "summary": "Move, resize or re-parent a bin",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RelocateBinRequest"}}],
                "responses": {
                    "204": {"description": "Relocated"},
                    "409": {"description": "Bin holds inventory", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/bins/{id}/block": {
            "put": {
                "summary": "Block or unblock a bin",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SetBinBlockedRequest"}}],
                "responses": {"204": {"description": "Updated"}}
            }
        },
        "/bins/{id}/stock": {
            "get": {
                "summary": "Bin contents, status and pick frequency",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}, {"$ref": "#/parameters/asOf"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/BinStock"}}}
            }
        },
        "/locations/{id}": {
            "delete": {
                "summary": "Delete a node and its subtree",
                "tags": ["hierarchy"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "409": {"description": "A bin in the subtree holds inventory", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/movements": {
            "post": {
                "summary": "Record a stock movement between bins",
                "tags": ["movements"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RecordMovementRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Created"}}}
            }
        },
        "/orders/{id}/route": {
            "get": {
                "summary": "Pick route of an order, computed on first request",
                "tags": ["routes"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Route"}}}
            },
            "post": {
                "summary": "Recompute the pick route with a strategy",
                "tags": ["routes"],
                "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/OptimizeRouteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Route"}},
                    "422": {"description": "Empty, inconsistent or oversized pick list", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"},
        "days": {"in": "query", "name": "days", "type": "integer"},
        "asOf": {"in": "query", "name": "asOf", "type": "string", "format": "date"}
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}},
        "Created": {"type": "object", "properties": {"id": {"type": "string", "format": "uuid"}}},
        "CreatedShelf": {"type": "object", "properties": {"id": {"type": "string", "format": "uuid"}, "binIds": {"type": "array", "items": {"type": "string", "format": "uuid"}}}},
        "BinIDs": {"type": "object", "properties": {"binIds": {"type": "array", "items": {"type": "string", "format": "uuid"}}}},
        "Point": {"type": "object", "properties": {"x": {"type": "number"}, "y": {"type": "number"}, "z": {"type": "number"}}},
        "Size": {"type": "object", "properties": {"width": {"type": "number"}, "depth": {"type": "number"}, "height": {"type": "number"}}},
        "Grid": {"type": "object", "properties": {"rows": {"type": "integer"}, "cols": {"type": "integer"}, "levels": {"type": "integer"}}},
        "Capacity": {"type": "object", "properties": {"maxWeight": {"type": "string"}, "maxItems": {"type": "integer"}}},
        "CreateLayoutRequest": {"type": "object", "properties": {"name": {"type": "string"}, "dimensions": {"$ref": "#/definitions/Size"}}},
        "CreateZoneRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "sequence": {"type": "integer"}, "origin": {"$ref": "#/definitions/Point"},
            "width": {"type": "number"}, "depth": {"type": "number"}, "reference": {"$ref": "#/definitions/Point"}
        }},
        "PlacementRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "code": {"type": "string"},
            "position": {"$ref": "#/definitions/Point"}, "dimensions": {"$ref": "#/definitions/Size"}
        }},
        "CreateShelfRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "code": {"type": "string"},
            "position": {"$ref": "#/definitions/Point"}, "dimensions": {"$ref": "#/definitions/Size"},
            "grid": {"$ref": "#/definitions/Grid"}, "binCapacity": {"$ref": "#/definitions/Capacity"}
        }},
        "CreateBinRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "code": {"type": "string"},
            "position": {"$ref": "#/definitions/Point"}, "dimensions": {"$ref": "#/definitions/Size"},
            "capacity": {"$ref": "#/definitions/Capacity"}
        }},
        "ResizeShelfRequest": {"type": "object", "properties": {
            "dimensions": {"$ref": "#/definitions/Size"}, "grid": {"$ref": "#/definitions/Grid"}, "binCapacity": {"$ref": "#/definitions/Capacity"}
        }},
        "RelocateBinRequest": {"type": "object", "properties": {
            "shelfId": {"type": "string", "format": "uuid"}, "position": {"$ref": "#/definitions/Point"}, "dimensions": {"$ref": "#/definitions/Size"}
        }},
        "SetBinBlockedRequest": {"type": "object", "properties": {"blocked": {"type": "boolean"}, "reason": {"type": "string"}}},
        "RecordMovementRequest": {"type": "object", "properties": {
            "productId": {"type": "string", "format": "uuid"}, "quantity": {"type": "string"},
            "sourceBinId": {"type": "string", "format": "uuid"}, "destinationBinId": {"type": "string", "format": "uuid"},
            "type": {"type": "string", "enum": ["putaway", "pick", "transfer", "replenishment", "consolidation", "relocation"]},
            "occurredAt": {"type": "string", "format": "date-time"}, "orderRef": {"type": "string", "format": "uuid"}
        }},
        "OptimizeRouteRequest": {"type": "object", "properties": {"strategy": {"type": "string", "enum": ["fifo", "lifo", "zone", "optimal", "fefo"]}}},
        "Route": {"type": "object", "properties": {
            "id": {"type": "string", "format": "uuid"}, "orderId": {"type": "string", "format": "uuid"},
            "layoutId": {"type": "string", "format": "uuid"}, "strategy": {"type": "string"},
            "sequence": {"type": "array", "items": {"type": "string", "format": "uuid"}},
            "totalDistance": {"type": "number"}, "estimatedTimeSeconds": {"type": "number"},
            "computedAt": {"type": "string", "format": "date-time"}
        }},
        "Layout": {"type": "object"},
        "Bins": {"type": "object"},
        "BinStock": {"type": "object"},
        "Heatmap": {"type": "object"},
        "Metrics": {"type": "object"},
        "MovementAnalytics": {"type": "object"}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Warehouse layout and pick-route API",
	Description:      "Spatial hierarchy, bin state, pick-route optimisation and movement analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
