package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/un1ck-andy/courses-signup/internal/domain"
)

// TokenType separates the two token flavors so a refresh token
// cannot be presented where an access token is expected.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	StudentID int       `json:"student_id"`
	Email     string    `json:"email"`
	TokenType TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// Authority issues and verifies signed, time-bound tokens.
// Verification needs no storage round-trip; tokens are self-contained.
type Authority struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthority(secret string, accessTTL, refreshTTL time.Duration) (*Authority, error) {
	if secret == "" {
		return nil, errors.New("signing secret must not be empty")
	}

	return &Authority{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func (a *Authority) IssueAccessToken(studentID int, email string) (string, error) {
	return a.issue(studentID, email, TokenTypeAccess, a.accessTTL)
}

func (a *Authority) IssueRefreshToken(studentID int, email string) (string, error) {
	return a.issue(studentID, email, TokenTypeRefresh, a.refreshTTL)
}

// IssuePair issues an access and a refresh token for the same subject.
func (a *Authority) IssuePair(studentID int, email string) (*domain.TokenPair, error) {
	accessToken, err := a.IssueAccessToken(studentID, email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := a.IssueRefreshToken(studentID, email)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *Authority) issue(studentID int, email string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		studentID,
		email,
		tokenType,
		jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(a.secret)
}

// Verify checks the signature, expiry and token type, and returns the
// embedded claims. It fails with domain.ErrExpiredToken for an expired
// token and domain.ErrInvalidToken for everything else.
func (a *Authority) Verify(tokenString string, want TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return a.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.TokenType != want {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
