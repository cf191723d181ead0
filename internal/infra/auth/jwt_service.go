// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
)

const defaultTokenTTL = 12 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// In bypass mode a missing secret is replaced by a per-process random one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	secret := cfg.SecretKey.Access
	bypass := cfg.Auth != nil && cfg.Auth.Bypass
	if secret == "" {
		if !bypass {
			return nil, errors.New("jwt secret must be provided")
		}
		secret = uuid.NewString()
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed access token for the principal.
func (s *jwtService) Issue(principal *entity.Principal) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":  strconv.Itoa(principal.ExecID), // Subject (executor id)
		"role": principal.Role.String(),
		"iat":  issuedAt.Unix(),
		"exp":  expiresAt.Unix(),
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Parse validates a token string and returns its principal.
func (s *jwtService) Parse(tokenString string) (*entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}
	execID, err := strconv.Atoi(subject)
	if err != nil || execID <= 0 {
		return nil, fmt.Errorf("invalid executor id %q in token", subject)
	}

	roleClaim, _ := claims["role"].(string)
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role %q in token", roleClaim)
	}

	return &entity.Principal{ExecID: execID, Role: role}, nil
}
