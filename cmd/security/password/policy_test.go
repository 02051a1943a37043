package password

import "testing"

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}

func TestAssess_Valid(t *testing.T) {
	p := DefaultPolicy()

	s := p.Assess("Tasks4all!")
	if !s.Valid {
		t.Fatalf("expected valid, got reasons %v", s.Reasons)
	}
	if len(s.Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", s.Reasons)
	}
}

func TestAssess_SingleMissingClass(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		password string
		reason   string
	}{
		{"tasks4all!", ReasonNoUpper},
		{"TASKS4ALL!", ReasonNoLower},
		{"Tasksfour!", ReasonNoDigit},
		{"Tasks4allz", ReasonNoSymbol},
	}

	for _, tc := range cases {
		s := p.Assess(tc.password)
		if s.Valid {
			t.Fatalf("password %q unexpectedly valid", tc.password)
		}
		if len(s.Reasons) != 1 || !containsReason(s.Reasons, tc.reason) {
			t.Fatalf("password %q: expected exactly [%s], got %v", tc.password, tc.reason, s.Reasons)
		}
	}
}

func TestAssess_ReportsEveryUnmetRule(t *testing.T) {
	p := DefaultPolicy()

	s := p.Assess("abc")
	if s.Valid {
		t.Fatalf("expected invalid")
	}
	// Too short + missing upper, digit, symbol.
	if len(s.Reasons) != 4 {
		t.Fatalf("expected 4 reasons, got %v", s.Reasons)
	}
	for _, want := range []string{ReasonNoUpper, ReasonNoDigit, ReasonNoSymbol} {
		if !containsReason(s.Reasons, want) {
			t.Fatalf("missing reason %q in %v", want, s.Reasons)
		}
	}
}

func TestAssess_MinLengthCountsRunes(t *testing.T) {
	p := DefaultPolicy()

	// 8 runes, more than 8 bytes.
	s := p.Assess("Пароль1!")
	if containsReason(s.Reasons, "must be at least 8 characters long") {
		t.Fatalf("length rule should count runes, got %v", s.Reasons)
	}
}
