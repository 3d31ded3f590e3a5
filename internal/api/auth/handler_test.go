package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationToken(t *testing.T) {
	token, err := generateVerificationToken()
	require.NoError(t, err)
	// 16 random bytes, hex encoded
	assert.Len(t, token, 32)

	other, err := generateVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"abc123xy", true},
		{"short1", false},
		{"lettersonly", false},
		{"12345678", false},
		{"pass word 99", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, isPasswordStrong(tc.password), "password %q", tc.password)
	}
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, isEmailValid("jo@example.com"))
	assert.True(t, isEmailValid("jo.doe+tag@sub.example.co"))
	assert.False(t, isEmailValid("not-an-email"))
	assert.False(t, isEmailValid("jo@no-tld"))
}
