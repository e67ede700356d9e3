package auth_test

import (
	"testing"

	"github.com/freightmart/freightmart/internal/adapter/auth"
	"github.com/freightmart/freightmart/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	first, err := ts.CreateToken(&domain.User{ID: 1})
	require.NoError(t, err)
	second, err := ts.CreateToken(&domain.User{ID: 2})
	require.NoError(t, err)

	// each token must carry only its own user's claims
	payload, err := ts.VerifyToken(first)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), payload.UserID)

	payload, err = ts.VerifyToken(second)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), payload.UserID)
}

func TestPasetoToken_InvalidToken(t *testing.T) {
	ts, err := auth.New()
	require.NoError(t, err)

	_, err = ts.VerifyToken("v4.local.garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
