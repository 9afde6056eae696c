package security

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity attributes needed by the callable endpoints.
type Claims struct {
	UID   string
	Email string
}

// TokenVerifier validates a platform ID token and extracts its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Claims, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier verifies ID tokens against Firebase Auth.
func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("id token verification failed: %w", err)
	}

	claims := &Claims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}

type emulatorVerifier struct{}

// NewEmulatorVerifier accepts unsigned ID tokens issued by the auth emulator.
// Emulator tokens use alg "none", so claims are parsed without signature
// verification. Never use outside a designated test environment.
func NewEmulatorVerifier() TokenVerifier {
	return &emulatorVerifier{}
}

func (v *emulatorVerifier) Verify(_ context.Context, idToken string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(idToken, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse emulator token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected emulator token claims type")
	}

	claims := &Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.UID = sub
	}
	if uid, ok := mapClaims["user_id"].(string); ok && claims.UID == "" {
		claims.UID = uid
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if claims.UID == "" {
		return nil, fmt.Errorf("emulator token has no subject")
	}
	return claims, nil
}
