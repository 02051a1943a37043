// Package token issues and verifies taskhub's signed tokens and provides the
// hashing primitives for refresh tokens at rest.
//
// Two token families exist, each signed with its own HS256 secret so that
// compromise of one does not compromise the other:
//   - access tokens: short-lived, self-contained, never persisted server-side
//   - refresh tokens: long-lived, exchanged for a new pair; the session store
//     keeps only a hash of the value
//
// Verification has exactly two failure kinds: ErrTokenExpired past expiry and
// ErrTokenInvalid for anything structurally or cryptographically wrong.
package token
