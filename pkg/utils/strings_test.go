package utils

import (
	"testing"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"cobrança", "cobranca"},
		{"negociação", "negociacao"},
		{"transferências", "transferencias"},
		{"café", "cafe"},
		{"José", "Jose"},
		{"São Paulo", "Sao Paulo"},
		{"naïve", "naive"},
		{"piñata", "pinata"},
	}

	for _, test := range tests {
		result := RemoveAccents(test.input)
		if result != test.expected {
			t.Errorf("RemoveAccents(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"CreateUserDto", "createUserDto"},
		{"UserDTO", "userDTO"},
		{"already", "already"},
		{"X", "x"},
		{"Éclair", "éclair"},
	}

	for _, test := range tests {
		result := LowerFirst(test.input)
		if result != test.expected {
			t.Errorf("LowerFirst(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"id", true},
		{"$ref", true},
		{"_private", true},
		{"user-id", false},
		{"1st", false},
		{"a b", false},
		{"delete", false},
		{"café", true},
	}

	for _, test := range tests {
		result := IsIdentifier(test.input)
		if result != test.expected {
			t.Errorf("IsIdentifier(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestQuotePropertyName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"id", "id"},
		{"delete", "delete"},
		{"user-id", "'user-id'"},
		{"2fa", "'2fa'"},
		{"", "''"},
		{"it's", `'it\'s'`},
	}

	for _, test := range tests {
		result := QuotePropertyName(test.input)
		if result != test.expected {
			t.Errorf("QuotePropertyName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"getUser", "getUser"},
		{"user-id", "user_id"},
		{"2fa", "_2fa"},
		{"delete", "delete"},
		{"cobrança", "cobranca"},
		{"pré-venda", "pre_venda"},
		{"", "_"},
	}

	for _, test := range tests {
		result := SanitizeIdentifier(test.input)
		if result != test.expected {
			t.Errorf("SanitizeIdentifier(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSafeBinding(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"id", "id"},
		{"delete", "delete_"},
		{"class", "class_"},
		{"user-id", "user_id"},
	}

	for _, test := range tests {
		result := SafeBinding(test.input)
		if result != test.expected {
			t.Errorf("SafeBinding(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
