package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test_secret")

func signLegacyToken(t *testing.T, claims LegacyClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestLegacyVerifierAcceptsValidToken(t *testing.T) {
	v := &LegacyVerifier{Secret: testSecret}
	token := signLegacyToken(t, LegacyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email:       "maria@sanle.com",
		Name:        "Maria",
		Role:        "collaborator",
		Permissions: []string{"companies"},
	}, testSecret)

	identity, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "42", identity.ID)
	assert.Equal(t, "maria@sanle.com", identity.Email)
	assert.Equal(t, "collaborator", identity.Role)
	assert.Equal(t, []string{"companies"}, identity.Permissions)
}

func TestLegacyVerifierRejections(t *testing.T) {
	v := &LegacyVerifier{Secret: testSecret}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signLegacyToken(t, LegacyClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, []byte("other_secret"))},
		{"expired", signLegacyToken(t, LegacyClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, testSecret)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tc.token)
			assert.ErrorIs(t, err, ErrInvalidCredential)
		})
	}
}

func TestLegacyVerifierDefaultsRole(t *testing.T) {
	v := &LegacyVerifier{Secret: testSecret}
	token := signLegacyToken(t, LegacyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	identity, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "collaborator", identity.Role)
}

// stubVerifier lets chain tests script each link's answer.
type stubVerifier struct {
	identity *Identity
}

func (s *stubVerifier) Verify(context.Context, string) (*Identity, error) {
	if s.identity == nil {
		return nil, ErrInvalidCredential
	}
	return s.identity, nil
}

func TestVerifierChainFallsThrough(t *testing.T) {
	want := &Identity{ID: "uid-1", Role: "admin"}
	chain := VerifierChain{
		&stubVerifier{},
		&stubVerifier{identity: want},
	}

	identity, err := chain.Verify(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, want, identity)
}

func TestVerifierChainAllReject(t *testing.T) {
	chain := VerifierChain{&stubVerifier{}, &stubVerifier{}}
	_, err := chain.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestFirebaseVerifierWithoutClient(t *testing.T) {
	v := &FirebaseVerifier{}
	_, err := v.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
