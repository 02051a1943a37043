// Package password provides credential hashing and password policy for taskhub.
//
// It implements Argon2id hashing using a PHC-like encoded string format and includes:
// - Configurable Argon2id parameters (via environment variables)
// - A strength policy that reports every unmet rule, not just the first
// - Strict digest decoding with anti-DoS bounds during Verify
//
// Security notes:
// - Digests are treated as untrusted input during Verify and are validated accordingly.
// - Verify never fails loudly: malformed or out-of-bounds digests simply do not match.
package password
