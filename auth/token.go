package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrExpiredToken = errors.New("auth: token expired")
)

// TokenTTL matches the original deployment's 1h tokens.
const TokenTTL = time.Hour

// TokenService signs and verifies identity assertions. Issuance trusts the
// caller's claims; there is no credential check at this boundary.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// Issue signs the caller-supplied claims with HS256 and a fixed expiry.
// The subject email must be present; everything else is passed through.
func (s *TokenService) Issue(claims map[string]interface{}) (string, error) {
	if email, _ := claims["email"].(string); email == "" {
		return "", ErrInvalidToken
	}
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().Add(s.ttl).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded claims.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SubjectEmail extracts the subject email from verified claims.
func SubjectEmail(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
