package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resort/infras/jwt"
	"resort/internal/domains/auth/model/dto"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	var res dto.LoginResponse
	res.FromTokenPair(&jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	})

	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(900), res.ExpiresIn)
}

func TestRegisterRequest_ToCreateUser(t *testing.T) {
	req := dto.RegisterRequest{Email: "guest@resort.test", Password: "s3cretpass", FullName: "Guest"}

	create := req.ToCreateUser()

	assert.Equal(t, req.Email, create.Email)
	assert.Equal(t, req.Password, create.Password)
	assert.Empty(t, create.Role)
}
