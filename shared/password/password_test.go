package password_test

import (
	"strings"
	"testing"

	"resort/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	hashed, err := password.Hash("s3cret-villa")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-villa", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))

	again, err := password.Hash("s3cret-villa")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "salt must differ per hash")
}

func TestHashRejects(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmpty)

	_, err = password.Hash(strings.Repeat("a", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrTooLong)

	_, err = password.Hash(strings.Repeat("a", password.MaxLength))
	assert.NoError(t, err)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("s3cret-villa")
	require.NoError(t, err)

	tests := []struct {
		name   string
		plain  string
		hashed string
		want   error
	}{
		{name: "match", plain: "s3cret-villa", hashed: hashed},
		{name: "wrong password", plain: "s3cret-villA", hashed: hashed, want: password.ErrMismatch},
		{name: "empty password", plain: "", hashed: hashed, want: password.ErrMismatch},
		{name: "empty hash", plain: "s3cret-villa", hashed: "", want: password.ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hashed)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerifyCorruptHash(t *testing.T) {
	err := password.Verify("s3cret-villa", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
