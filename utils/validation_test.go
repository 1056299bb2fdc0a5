package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+14155552671", true},
		{"14155552671", true},
		{"+44 20 7946 0958", true},
		{"(415) 555-2671", true},
		{"+1-415-555-2671", true},
		{"0123456", false}, // leading zero
		{"", false},
		{"abc", false},
		{"+", false},
		{"+1234567890123456", false}, // too long
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidatePhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "plain@example.com", NormalizeEmail("plain@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
