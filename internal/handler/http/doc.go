// Package http implements the REST transport of the server.
//
// It exposes route wiring, request handlers, and middleware. Tracing, access
// logging, compression, bearer authentication, account status, the second
// factor guard and role gates are applied here before requests are
// delegated to the service layer.
package http
