package utils

import "testing"

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	valid := []string{"0912345678", "0123456789", " 0912345678 "}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "091234567", "09123456789", "09123a5678", "+84912345678"}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = true, want false", p)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"guest@example.com", "Nguyen.Van.A@hotel.vn", "a+b@x.co"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	invalid := []string{"", "guest", "guest@", "@example.com", "guest@example"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}

func TestIsValidIdentityCard(t *testing.T) {
	t.Parallel()

	if !IsValidIdentityCard("123456789") {
		t.Error("nine digits should be accepted")
	}
	if !IsValidIdentityCard("079123456789") {
		t.Error("twelve digits should be accepted")
	}
	if IsValidIdentityCard("12345678") {
		t.Error("eight characters should be rejected")
	}
	if IsValidIdentityCard("        ") {
		t.Error("whitespace should be rejected")
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	if !IsEmpty("   ") || !IsEmpty("") {
		t.Error("blank strings should be empty")
	}
	if IsEmpty(" a ") {
		t.Error("non-blank string should not be empty")
	}
}
