// Package session implements taskhub's authentication/session core.
//
// It orchestrates registration, login, refresh, logout, and profile access,
// composing the credential hasher, the token issuer, the refresh-token store,
// and the user store behind narrow interfaces.
//
// Access tokens are short-lived signed JWTs and are never persisted.
// Refresh tokens are signed JWTs whose values are additionally persisted as
// hashes (HMAC-SHA256 when TASKHUB_TOKEN_HMAC_KEY is set; otherwise SHA-256
// for dev); the store is the authority of record for revocation and rotation.
//
// Transport (HTTP) integration is intentionally out of scope here.
package session
