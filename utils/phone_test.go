package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "separators and trailing letter", in: "98-765 43210x", want: "9876543210"},
		{name: "country code with plus", in: "+91 86390 58016", want: "918639058016"},
		{name: "already clean", in: "9876543210", want: "9876543210"},
		{name: "empty", in: "", want: ""},
		{name: "letters only", in: "call me", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizePhone(tt.in))
		})
	}
}

func TestIsTenDigitPhone(t *testing.T) {
	assert.True(t, IsTenDigitPhone("98-765 43210x"))
	assert.True(t, IsTenDigitPhone("9876543210"))
	assert.False(t, IsTenDigitPhone("987654321"), "nine digits must fail")
	assert.False(t, IsTenDigitPhone("98765432101"), "eleven digits must fail")
	assert.False(t, IsTenDigitPhone(""))
}
