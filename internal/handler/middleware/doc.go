// Package middleware holds the HTTP middleware shared by the gateway and the
// users service: trace id propagation, access logging, and the JSON answer
// for unsupported methods.
package middleware
