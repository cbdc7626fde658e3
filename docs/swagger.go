// Package docs Property Administration API.
//
// Backend for the property management admin console. Keeps an in-memory
// snapshot of the property portfolio (properties, tenants, maintenance
// requests, payments, messages, appointments), projects map markers for
// the portfolio map, proxies authentication to the auth service and
// answers the scripted assistant chat.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
