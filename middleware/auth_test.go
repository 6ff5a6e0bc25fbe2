package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitchallengeAPI/internal/identity"
)

const testSigningKey = "test-secret-key-for-testing-only"

// jwtStubVerifier stands in for the Firebase verifier: it accepts any HS256
// token signed with the shared test key and rejects everything else.
type jwtStubVerifier struct{}

func (jwtStubVerifier) Verify(_ context.Context, token string) (*identity.Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(testSigningKey), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	id := &identity.Identity{}
	id.UID, _ = claims["sub"].(string)
	id.Email, _ = claims["email"].(string)
	return id, nil
}

func mockIDToken(t *testing.T, uid, email string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}

func authTestHandler(gotIdentity **identity.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIdentity(r.Context())
		if ok {
			*gotIdentity = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeader(t *testing.T) {
	var seen *identity.Identity
	handler := Auth(jwtStubVerifier{})(authTestHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, seen)
}

func TestAuthWrongScheme(t *testing.T) {
	var seen *identity.Identity
	handler := Auth(jwtStubVerifier{})(authTestHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("Authorization", "Token abc123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, seen)
}

func TestAuthInvalidToken(t *testing.T) {
	var seen *identity.Identity
	handler := Auth(jwtStubVerifier{})(authTestHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, seen)
}

func TestAuthInjectsIdentity(t *testing.T) {
	var seen *identity.Identity
	handler := Auth(jwtStubVerifier{})(authTestHandler(&seen))

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.Header.Set("Authorization", "Bearer "+mockIDToken(t, "firebase_uid_123", "user@example.com"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "firebase_uid_123", seen.UID)
	assert.Equal(t, "user@example.com", seen.Email)
}

func TestWithIdentityRoundTrip(t *testing.T) {
	id := &identity.Identity{UID: "abc", Email: "a@b.c"}
	ctx := WithIdentity(context.Background(), id)

	got, ok := GetIdentity(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = GetIdentity(context.Background())
	assert.False(t, ok)
}
