package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "11987654321", "11987654321"},
		{"masked", "(11) 98765-4321", "11987654321"},
		{"dots and dashes", "11.9876.5-4321", "11987654321"},
		{"letters mixed in", "11a98765b4321", "11987654321"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"fixed line 10 digits", "1133334444", true},
		{"mobile 11 digits", "11987654321", true},
		{"masked mobile", "(11) 98765-4321", true},
		{"too short", "119876543", false},
		{"too long", "119876543210", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.input))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"one digit", "1", "1"},
		{"ddd only", "11", "11"},
		{"partial after ddd", "119876", "(11) 9876"},
		{"ten digits", "1133334444", "(11) 3333-4444"},
		{"eleven digits", "11987654321", "(11) 98765-4321"},
		{"overflow truncates at eleven", "119876543219999", "(11) 98765-4321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.input))
		})
	}
}

func TestMaskPhoneIdempotent(t *testing.T) {
	inputs := []string{"11987654321", "1133334444", "119876", "11"}

	for _, in := range inputs {
		once := MaskPhone(in)
		assert.Equal(t, once, MaskPhone(once), "mask must be stable for %q", in)
	}
}
