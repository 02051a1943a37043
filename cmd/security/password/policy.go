package password

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Policy controls password strength rules.
type Policy struct {
	MinLength int
}

// DefaultPolicy returns the baseline policy: at least 8 characters with
// upper, lower, digit, and symbol classes.
func DefaultPolicy() Policy {
	return Policy{MinLength: 8}
}

// Strength is the result of assessing a password against a Policy.
// Reasons holds one stable string per unmet rule; it is empty iff Valid.
type Strength struct {
	Valid   bool
	Reasons []string
}

// Stable reason strings for the character-class rules.
const (
	ReasonNoUpper  = "must contain at least one uppercase letter"
	ReasonNoLower  = "must contain at least one lowercase letter"
	ReasonNoDigit  = "must contain at least one digit"
	ReasonNoSymbol = "must contain at least one symbol"
)

// Assess checks a password against the policy. It is pure and reports every
// unmet rule, not just the first one.
func (p Policy) Assess(plaintext string) Strength {
	var reasons []string

	// Count characters (runes), not bytes, to be user-friendly.
	if utf8.RuneCountInString(plaintext) < p.MinLength {
		reasons = append(reasons, fmt.Sprintf("must be at least %d characters long", p.MinLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range plaintext {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		reasons = append(reasons, ReasonNoUpper)
	}
	if !hasLower {
		reasons = append(reasons, ReasonNoLower)
	}
	if !hasDigit {
		reasons = append(reasons, ReasonNoDigit)
	}
	if !hasSymbol {
		reasons = append(reasons, ReasonNoSymbol)
	}

	return Strength{Valid: len(reasons) == 0, Reasons: reasons}
}
