package handlers

// @title Business Catalog API
// @version 1.0
// @description Serves, lints and versions the OpenAPI catalog of the store, HR, delivery and work order API

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name catalog
// @tag.description Rendered catalog, lookups and lint

// @tag.name snapshots
// @tag.description Published catalog versions and contract diffs

// @tag.name auth
// @tag.description Caller identity
