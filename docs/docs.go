// Package docs registers the OpenAPI document served under /swagger/*.
// Regenerate with `swag init -g cmd/ecoscope-api/main.go` after changing
// controller annotations.
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
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in with email and password"}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}]}},
        "/auth/register-admin": {"post": {"tags": ["auth"], "summary": "Create the first admin"}},
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["users"], "summary": "Create a user", "security": [{"BearerAuth": []}]}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["users"], "summary": "Update a user", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["users"], "summary": "Delete a user", "security": [{"BearerAuth": []}]}
        },
        "/market/list": {"get": {"tags": ["market"], "summary": "List market prices"}},
        "/market/trends": {"get": {"tags": ["market"], "summary": "Price trend per commodity"}},
        "/market/realtime": {"get": {"tags": ["market"], "summary": "Live commodity feed"}},
        "/market/add": {"post": {"tags": ["market"], "summary": "Add a market price", "security": [{"BearerAuth": []}]}},
        "/market/update/{id}": {"put": {"tags": ["market"], "summary": "Update a market price", "security": [{"BearerAuth": []}]}},
        "/market/delete/{id}": {"delete": {"tags": ["market"], "summary": "Delete a market price", "security": [{"BearerAuth": []}]}},
        "/market/sync": {"post": {"tags": ["market"], "summary": "Pull prices from Disdagkopukm", "security": [{"BearerAuth": []}]}},
        "/forecast/commodity/{name}": {"get": {"tags": ["forecast"], "summary": "Forecast a commodity's price"}},
        "/forecast/batch": {"post": {"tags": ["forecast"], "summary": "Forecast several commodities"}},
        "/forecast/available-commodities": {"get": {"tags": ["forecast"], "summary": "Commodities with stored prices"}},
        "/weather/current": {"get": {"tags": ["weather"], "summary": "Current BMKG forecast"}},
        "/weather/daily": {"get": {"tags": ["weather"], "summary": "Daily forecast summary"}},
        "/weather/districts": {"get": {"tags": ["weather"], "summary": "Forecast for every Wonosobo district"}},
        "/wilayah": {"get": {"tags": ["wilayah"], "summary": "Wonosobo region list"}},
        "/wilayah/count": {"get": {"tags": ["wilayah"], "summary": "Number of kecamatan"}},
        "/wilayah/kecamatan/{nama}": {"get": {"tags": ["wilayah"], "summary": "Find a kecamatan by name"}},
        "/crops/recommend": {"get": {"tags": ["crops"], "summary": "Crop recommendation for a district"}},
        "/crops/recommend/coordinates": {"get": {"tags": ["crops"], "summary": "Crop recommendation for coordinates"}},
        "/crops/database": {"get": {"tags": ["crops"], "summary": "Crop knowledge base"}},
        "/crops/locations": {"get": {"tags": ["crops"], "summary": "Supported locations"}},
        "/slope/analyze": {"get": {"tags": ["slope"], "summary": "Slope and landslide risk around a point"}},
        "/slope/profile": {"get": {"tags": ["slope"], "summary": "Elevation profile between two points"}},
        "/health": {"get": {"tags": ["health"], "summary": "Service health"}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EcoScope Wonosobo API",
	Description:      "Weather, market prices, crop recommendations and slope analysis for Kabupaten Wonosobo.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
