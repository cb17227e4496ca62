package crsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		var called bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/authentication/logout", r.URL.Path)
			require.Equal(t, "test-token", r.Header.Get("X-Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		require.NoError(t, testSession(srv).Logout(context.Background()))
		require.True(t, called)
	})

	t.Run("already invalid server-side", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Token is not valid"}`))
		}))
		defer srv.Close()

		err := testSession(srv).Logout(context.Background())

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		require.Equal(t, "Token is not valid", authErr.Details)
	})
}

func TestTokenClaims(t *testing.T) {
	t.Parallel()

	t.Run("decodes without verification", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "17",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(20 * time.Minute)),
			},
			Username: "bob",
			Domain:   "CORP",
		}).SignedString([]byte("some-server-secret"))
		require.NoError(t, err)

		s := &Session{header: AuthHeader{Key: HeaderAuthorization, Value: token}}

		claims, err := s.TokenClaims()
		require.NoError(t, err)
		require.Equal(t, "bob", claims.Username)
		require.Equal(t, "CORP", claims.Domain)
		require.Equal(t, "17", claims.Subject)
	})

	t.Run("opaque token", func(t *testing.T) {
		s := &Session{header: AuthHeader{Key: HeaderAuthorization, Value: "not-a-jwt"}}

		_, err := s.TokenClaims()
		require.Error(t, err)
	})
}

func TestSessionHeaderIsShareable(t *testing.T) {
	t.Parallel()

	s := &Session{header: AuthHeader{Key: HeaderAuthorization, Value: "tok"}}

	// Header returns a copy; mutating it must not affect the session.
	h := s.Header()
	h.Value = "tampered"
	require.Equal(t, "tok", s.Token())
}
