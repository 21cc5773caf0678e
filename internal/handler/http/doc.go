// Package http implements the HTTP transport of the users service.
//
// It exposes registration, login (JSON and OAuth2 password form), and the
// profile endpoints. Bearer authentication is enforced by a middleware that
// resolves the token subject through the authentication service before the
// profile handlers run. Trace ids and access logging come from the shared
// [middleware] package.
package http
