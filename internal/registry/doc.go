// Package registry implements the in-memory activity signup registry and the
// logic to process signup and unregister requests.
//
// **store**
// The Registry is an explicitly owned store created at startup and injected
// into the HTTP handlers - it is not a package-level singleton. Activities
// are seeded once from DefaultActivities(); entries are never created or
// deleted at runtime, only the participant lists mutate.
//
// **error handling**
// Registry operations return *RegistryError values with a typed code.
// The codes are mapped to HTTP status codes and returned to the client in a
// standard {"detail": "..."} error body.
// Use RespondWithErrorResponse() to create and send the error response.
//
// **concurrency**
// net/http serves requests concurrently, so the store guards reads with a
// read lock and the two read-check-mutate operations (signup, unregister)
// with the write lock. List returns a deep copy so callers never alias the
// guarded state.
package registry
