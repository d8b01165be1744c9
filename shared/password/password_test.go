package password_test

import (
	"resort/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("front-desk-2026")
	require.NoError(t, err)

	assert.NotEqual(t, "front-desk-2026", hashed)
	assert.NoError(t, password.Verify("front-desk-2026", hashed))
	assert.ErrorIs(t, password.Verify("front-desk-2025", hashed), password.ErrInvalidPassword)
}

func TestHash_SaltsEachCall(t *testing.T) {
	first, err := password.Hash("same-secret")
	require.NoError(t, err)

	second, err := password.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHash_Rejects(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	_, err = password.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
}

func TestVerify_Rejects(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("secret", ""), password.ErrInvalidPassword)
	assert.Error(t, password.Verify("secret", "not-a-bcrypt-hash"))
}
