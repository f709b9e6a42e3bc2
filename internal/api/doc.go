// Package api provides HTTP handlers for the task and auth endpoints.
//
// Handlers decode and validate payloads, translate the request context into
// an ownership scope, delegate to the services, and shape responses. All
// task payloads travel inside a {"data": ...} envelope; validation failures
// return 422 with per-field messages.
package api
