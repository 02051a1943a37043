package password

import (
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// ErrConfig is returned for invalid hashing configuration.
var ErrConfig = errors.New("invalid password config")

// Params controls Argon2id hashing cost.
// MemoryKiB is in KiB as required by argon2.IDKey.
type Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns a strong baseline for interactive logins.
// The cost is fixed per deployment; only salts vary per call.
func DefaultParams() Params {
	// CPU-aware parallelism, clamped to [1..4] to keep resource usage
	// predictable in containers.
	threads := runtime.NumCPU()
	if threads <= 0 {
		threads = 1
	}
	if threads > 4 {
		threads = 4
	}

	return Params{
		MemoryKiB:   64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: uint8(threads), // #nosec G115 -- clamped to [1..4] above; safe conversion.
		SaltLength:  16,
		KeyLength:   32,
	}
}

// ParamsFromEnv loads hashing parameters from environment variables.
//
// Env surface:
// - TASKHUB_ARGON2_MEMORY_KIB
// - TASKHUB_ARGON2_ITERATIONS
// - TASKHUB_ARGON2_PARALLELISM
// - TASKHUB_ARGON2_SALT_LEN
// - TASKHUB_ARGON2_KEY_LEN
func ParamsFromEnv() (Params, error) {
	p := DefaultParams()

	if v, ok := os.LookupEnv("TASKHUB_ARGON2_MEMORY_KIB"); ok {
		u, err := atou32(v, 8*1024, 1024*1024) // 8 MiB .. 1 GiB
		if err != nil {
			return Params{}, fmt.Errorf("TASKHUB_ARGON2_MEMORY_KIB: %w", ErrConfig)
		}
		p.MemoryKiB = u
	}

	if v, ok := os.LookupEnv("TASKHUB_ARGON2_ITERATIONS"); ok {
		u, err := atou32(v, 1, 20)
		if err != nil {
			return Params{}, fmt.Errorf("TASKHUB_ARGON2_ITERATIONS: %w", ErrConfig)
		}
		p.Iterations = u
	}

	if v, ok := os.LookupEnv("TASKHUB_ARGON2_PARALLELISM"); ok {
		u, err := atou32(v, 1, 64)
		if err != nil || u > math.MaxUint8 {
			return Params{}, fmt.Errorf("TASKHUB_ARGON2_PARALLELISM: %w", ErrConfig)
		}
		p.Parallelism = uint8(u)
	}

	if v, ok := os.LookupEnv("TASKHUB_ARGON2_SALT_LEN"); ok {
		u, err := atou32(v, 8, 64)
		if err != nil {
			return Params{}, fmt.Errorf("TASKHUB_ARGON2_SALT_LEN: %w", ErrConfig)
		}
		p.SaltLength = u
	}

	if v, ok := os.LookupEnv("TASKHUB_ARGON2_KEY_LEN"); ok {
		u, err := atou32(v, 16, 64)
		if err != nil {
			return Params{}, fmt.Errorf("TASKHUB_ARGON2_KEY_LEN: %w", ErrConfig)
		}
		p.KeyLength = u
	}

	return p, nil
}

func (p Params) validate() error {
	if p.MemoryKiB == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return ErrConfig
	}
	if p.SaltLength < 8 || p.SaltLength > 64 {
		return ErrConfig
	}
	if p.KeyLength < 16 || p.KeyLength > 128 {
		return ErrConfig
	}
	return nil
}

func atou32(s string, minVal, maxVal uint32) (uint32, error) {
	s = strings.TrimSpace(s)
	u64, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not an unsigned integer")
	}

	u := uint32(u64)
	if u < minVal || u > maxVal {
		return 0, fmt.Errorf("out of range [%d..%d]", minVal, maxVal)
	}
	return u, nil
}
