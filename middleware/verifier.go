package middleware

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
)

// Identity is the normalized result of credential verification, whichever
// verifier produced it.
type Identity struct {
	ID          string
	Email       string
	Name        string
	Role        string
	Permissions []string
}

var ErrInvalidCredential = errors.New("invalid credential")

// CredentialVerifier turns a bearer token into an Identity or a failure.
// Verifiers are tried in order by a chain; the caller never learns which
// one rejected the token.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// FirebaseVerifier accepts cloud-issued ID tokens. Role and permissions
// come from custom claims when present, defaulting to a collaborator with
// no permissions.
type FirebaseVerifier struct {
	Auth *auth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if v.Auth == nil {
		return nil, ErrInvalidCredential
	}
	decoded, err := v.Auth.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidCredential
	}

	identity := &Identity{
		ID:   decoded.UID,
		Role: "collaborator",
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := decoded.Claims["role"].(string); ok && role != "" {
		identity.Role = role
	}
	if raw, ok := decoded.Claims["permissions"].([]interface{}); ok {
		for _, p := range raw {
			if s, ok := p.(string); ok {
				identity.Permissions = append(identity.Permissions, s)
			}
		}
	}
	return identity, nil
}

// LegacyClaims is the self-issued token payload from before the cloud
// identity provider existed. Still honored so old sessions keep working.
type LegacyClaims struct {
	jwt.RegisteredClaims
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// LegacyVerifier validates shared-secret HMAC tokens issued by /api/login.
type LegacyVerifier struct {
	Secret []byte
}

func (v *LegacyVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	claims := &LegacyClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return v.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredential
	}

	role := claims.Role
	if role == "" {
		role = "collaborator"
	}
	return &Identity{
		ID:          claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		Role:        role,
		Permissions: claims.Permissions,
	}, nil
}

// VerifierChain tries each verifier in order and returns the first
// success. All failures collapse into one generic error so the response
// does not leak which mechanism rejected the token.
type VerifierChain []CredentialVerifier

func (vc VerifierChain) Verify(ctx context.Context, token string) (*Identity, error) {
	for _, v := range vc {
		if identity, err := v.Verify(ctx, token); err == nil {
			return identity, nil
		}
	}
	return nil, ErrInvalidCredential
}
