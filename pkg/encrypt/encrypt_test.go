package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := map[string]bool{
		"Exact8!a":     true,
		"Sh1!":         false,
		"seven77":      false,
		"password":     true,
		"alllowercase": true,
		"12345678":     true,
		"pässwört":     true,
		"Valid!Pass1":  true,
	}
	for pw, ok := range cases {
		err := ValidatePasswordStrength(pw)
		if ok {
			assert.NoError(t, err, pw)
		} else {
			assert.ErrorIs(t, err, ErrWeakPassword, pw)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Valid!Pass1")
	require.NoError(t, err)
	assert.NotEqual(t, "Valid!Pass1", hash)

	assert.NoError(t, CheckPassword(hash, "Valid!Pass1"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)

	_, err = HashPassword("weak")
	assert.ErrorIs(t, err, ErrWeakPassword)
}
