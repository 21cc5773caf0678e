// Package gateway implements the public HTTP surface of post-hub.
//
// Account routes are replayed verbatim against the users service. Post
// routes are authenticated at the edge: the bearer token is verified with
// the shared signing key, the caller id is resolved through the users
// service, and the request is translated into a call of the posts service.
package gateway
