package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2Version = 19 // argon2.Version is 0x13 (19)

// Hasher performs one-way credential hashing with a fixed cost.
type Hasher struct {
	params Params
}

// NewHasher constructs a Hasher, rejecting out-of-bounds parameters.
func NewHasher(p Params) (*Hasher, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Hasher{params: p}, nil
}

// Hash hashes a password using Argon2id and returns an encoded digest string.
// Format:
// $argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>
//
// The salt is random per call, so hashing the same password twice yields
// two different digests that both verify.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(plaintext),
		salt,
		h.params.Iterations,
		h.params.MemoryKiB,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	b64 := base64.RawStdEncoding
	enc := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Version,
		h.params.MemoryKiB,
		h.params.Iterations,
		h.params.Parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	)

	return enc, nil
}

// Verify reports whether plaintext matches the given encoded digest.
// Malformed, unsupported, or out-of-bounds digests never match and never
// produce an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	params, salt, expected, ok := decode(digest)
	if !ok {
		return false
	}

	// Anti-DoS boundary: refuse to verify if the digest declares parameters far
	// beyond our configured maximums (prevents attacker-controlled digest
	// strings from causing pathological resource usage).
	if !withinVerifyBounds(params, h.params) {
		return false
	}

	key := argon2.IDKey(
		[]byte(plaintext),
		salt,
		params.Iterations,
		params.MemoryKiB,
		params.Parallelism,
		uint32(len(expected)), // #nosec G115 -- expected length is bounded by decode(); safe conversion.
	)

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func withinVerifyBounds(got Params, limits Params) bool {
	// Allow verifying digests generated with older/smaller settings,
	// but reject wildly larger settings.
	if got.MemoryKiB > limits.MemoryKiB*2 {
		return false
	}
	if got.Iterations > limits.Iterations*2 {
		return false
	}
	if got.Parallelism > limits.Parallelism*2 {
		return false
	}
	if got.SaltLength < 8 || got.SaltLength > 64 {
		return false
	}
	if got.KeyLength < 16 || got.KeyLength > 128 {
		return false
	}
	return true
}

// decode parses the encoded digest and returns params, salt and expected key.
func decode(encoded string) (Params, []byte, []byte, bool) {
	// Expected:
	// $argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, false
	}

	if parts[2] != "v=19" {
		return Params{}, nil, nil, false
	}

	var mem, it, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &it, &par); err != nil {
		return Params{}, nil, nil, false
	}
	if mem == 0 || it == 0 || par == 0 || par > 255 {
		return Params{}, nil, nil, false
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, false
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, false
	}

	params := Params{
		MemoryKiB:   mem,
		Iterations:  it,
		Parallelism: uint8(par),         // #nosec G115 -- bounded to [1..255] above.
		SaltLength:  uint32(len(salt)), // #nosec G115 -- bounded by withinVerifyBounds.
		KeyLength:   uint32(len(key)),  // #nosec G115 -- bounded by withinVerifyBounds.
	}

	return params, salt, key, true
}
