package tokens

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/formbridge/formbridge/pkg/middleware"
)

// GenerateAdminToken creates a signed JWT granting access to the admin API.
// Tokens are signed with the service secret key (HS256).
func GenerateAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(secret))
}

// Verifier validates admin bearer tokens signed with the service secret.
// It implements middleware.Verifier.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return &parsedToken{claims: claims}, nil
}

type parsedToken struct {
	claims jwt.MapClaims
}

// Claims unmarshals the token claims into v via a JSON round trip.
func (t *parsedToken) Claims(v interface{}) error {
	raw, err := json.Marshal(t.claims)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
