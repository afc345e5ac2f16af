package validation

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"a@b", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"alice@", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("12345"); msg == "" {
		t.Error("expected rejection for 5-char password")
	}
	if msg := ValidatePassword("123456"); msg != "" {
		t.Errorf("expected 6-char password to pass, got %q", msg)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d == nil || d.Format(DateLayout) != "2025-03-14" {
		t.Errorf("unexpected parsed date: %v", d)
	}

	d, err = ParseDate("")
	if err != nil || d != nil {
		t.Errorf("empty date should be (nil, nil), got (%v, %v)", d, err)
	}

	for _, bad := range []string{"14-03-2025", "2025/03/14", "2025-13-01", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
