package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		input  string
		wantID int64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"9007199254740993", 9007199254740993, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		id, ok := ParseID(c.input)
		if id != c.wantID || ok != c.wantOK {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", c.input, id, ok, c.wantID, c.wantOK)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	for _, bad := range []string{"2024-13-01", "2024-2-9", "29-02-2024", "yesterday", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"0812345678", "+6281234567890", "081-2345-6789", "9876543210"}
	invalid := []string{"12345", "phone", "08123456789012345", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidInvoiceNumber(t *testing.T) {
	valid := []string{"INV-2026-0001", "SI/2026/042", "A1B2C3"}
	invalid := []string{"inv-2026-0001", "-INV", "IN", ""}
	for _, n := range valid {
		if !IsValidInvoiceNumber(n) {
			t.Errorf("IsValidInvoiceNumber(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if IsValidInvoiceNumber(n) {
			t.Errorf("IsValidInvoiceNumber(%q) = true, want false", n)
		}
	}
}
