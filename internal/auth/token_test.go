package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-api/internal/model"
)

func TestTokenManager_IssueVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", zerolog.Nop())

	token, err := tm.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenManager_Verify_NoToken(t *testing.T) {
	tm := NewTokenManager("test-secret", zerolog.Nop())

	claims, err := tm.Verify("")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", zerolog.Nop())
	// Issue a token that expired an hour ago.
	tm.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }

	token, err := tm.Issue("user@example.com")
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", zerolog.Nop())
	verifier := NewTokenManager("secret-two", zerolog.Nop())

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", zerolog.Nop())

	claims, err := tm.Verify("not-a-jwt")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestSetCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "signed-token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, int(TokenTTL/time.Second), cookie.MaxAge)
}

func TestClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearCookie(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
