// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Implements API key validation to protect endpoints.
//   - RayID: Assigns a unique Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally by the serve command.
package middleware
