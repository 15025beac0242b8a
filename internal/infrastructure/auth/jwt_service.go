package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dheerendra45/news-analyzer/domain"
)

// JWTServiceImpl implements domain.TokenService with HS256-signed stateless
// tokens. No server-side session table exists; every instance can verify a
// request independently.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTService creates a new JWT token service.
func NewJWTService(secretKey, issuer string, accessTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// Issue implements domain.TokenService.
func (j *JWTServiceImpl) Issue(user *domain.User) (string, time.Duration, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(j.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", 0, err
	}
	return signed, j.accessTTL, nil
}

// Verify implements domain.TokenService. The returned error distinguishes
// expiry from tampering for server-side logging only; callers must collapse
// every failure into a single unauthorized outcome.
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	role := domain.Role(roleStr)
	if !role.Valid() {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		UserID:    sub,
		Email:     email,
		Role:      role,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
