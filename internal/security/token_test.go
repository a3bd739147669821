package security_test

import (
	"testing"

	"bikeshop-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := security.NewTokenManager("test-secret", 1)

	token, err := manager.GenerateToken("clerk", "Shop Clerk")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "clerk", claims.Login)
	assert.Equal(t, "Shop Clerk", claims.Name)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	manager := security.NewTokenManager("test-secret", 1)
	other := security.NewTokenManager("other-secret", 1)

	token, err := manager.GenerateToken("clerk", "")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := security.NewTokenManager("test-secret", 1)

	_, err := manager.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}
