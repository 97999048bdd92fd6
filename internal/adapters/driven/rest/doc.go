// Package rest provides the HTTP transport to a Synergos TTP.
//
// Every call is a JSON request against http(s)://host:port followed by an
// endpoint path. Responses with status 200 or 201 are decoded into the
// TTP's response envelope; any other status becomes a *domain.ServiceError.
package rest
