// Package api is the REST client for the blog platform backend.
//
// Every exposed operation takes plain parameters and returns a Result: the
// success branch carries the decoded payload, the failure branch a message
// extracted from the response body (falling back to a per-operation string).
// Client methods never return Go errors; transport failures, non-2xx statuses
// and malformed bodies all collapse into the error branch, because the
// screens depend on the non-throwing contract.
//
// The client attaches a bearer token from the injected TokenStore to every
// request. A 401 response clears the stored token and fires the client-wide
// unauthorized hook, independent of which call triggered it.
package api
