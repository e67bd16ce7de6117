// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tutoria/config"
	"tutoria/internal/domain/entity"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/domain/service"
	"tutoria/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte           // Signing key, immutable after construction.
	ttl    time.Duration    // Lifetime of every issued token.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// A secret shorter than service.MinSecretLength is a fatal configuration error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg.JWT.Secret, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, now func() time.Time) (*jwtService, error) {
	if len(secret) < service.MinSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d bytes", service.MinSecretLength)
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    service.TokenTTL,
		now:    now,
	}, nil
}

// Issue creates a signed token whose subject is the user ID.
func (s *jwtService) Issue(userID int64, email string) (*entity.IssuedToken, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"email": email,
		"iat":   issuedAt.Unix(),  // Issued At
		"exp":   expiresAt.Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &entity.IssuedToken{
		Token:     signed,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify parses and validates a token. Any failure maps to ErrUnauthenticated,
// with the cause wrapped for logging.
func (s *jwtService) Verify(tokenString string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, unauthenticated(err, "parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, unauthenticated(nil, "unexpected claims type")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, unauthenticated(err, "read subject")
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, unauthenticated(err, "subject is not an integer")
	}

	email, _ := claims["email"].(string)

	return &entity.Identity{
		UserID: userID,
		Email:  email,
	}, nil
}

func unauthenticated(cause error, message string) error {
	if cause == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage(message)
	}

	return errors.Wrap(domainerrors.ErrUnauthenticated.WithDetails(cause.Error()), message)
}
