// Package api provides the HTTP API layer for the newsfeed application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// Two operations are exposed:
//
// - GET /newsfeeds?user_id=... lists a user's feed, most recent first,
//   served from the feed cache with a store rebuild on miss.
// - POST /newsfeeds/fanout triggers the fan-out pipeline for a post
//   that the surrounding application has already durably stored.
//
// The OpenAPI 3.0 spec is generated automatically: JSON at
// /openapi.json, interactive docs at /docs.
//
// # Middleware
//
// The API includes middleware for request logging with unique request
// IDs, per-IP rate limiting, and CORS handling.
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. Domain
// errors are mapped to HTTP status codes in handlers/errors.go:
// validation errors to 400, missing resources to 404, transient
// dependency failures to 503.
package api
