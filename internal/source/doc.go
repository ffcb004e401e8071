// Package source fetches the raw user record set from the remote user API.
//
// There is exactly one failure kind: a load failure. Transport errors,
// non-2xx responses and undecodable payloads are all reported as a
// *LoadError, which matches ErrLoadFailed under errors.Is and carries the
// fixed user-visible message "Failed to load users". The underlying cause is
// kept for logging.
package source
