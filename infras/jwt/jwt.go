package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pms/config"
	"pms/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingHeader = errors.New("authorization header is required")
	ErrInvalidHeader = errors.New("authorization header must start with 'Bearer '")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"

	bearerPrefix = "Bearer "
)

type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Remaining is how long the token stays valid from now, never negative.
func (c *Claims) Remaining() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}

	return max(time.Until(c.ExpiresAt.Time), 0)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
}

// clockSkew tolerates small drift between the hosts issuing and checking tokens.
const clockSkew = 30 * time.Second

type signing struct {
	key []byte
	ttl time.Duration
}

type Service struct {
	issuer string
	keys   map[TokenType]signing
	parser *jwt.Parser
}

func New(cfg *config.Config) JWT {
	minutes := func(n int) time.Duration { return time.Duration(n) * time.Minute }

	return &Service{
		issuer: cfg.App.Name,
		keys: map[TokenType]signing{
			AccessToken:  {key: []byte(cfg.JWT.AccessSecret), ttl: minutes(cfg.JWT.AccessExpireMin)},
			RefreshToken: {key: []byte(cfg.JWT.RefreshSecret), ttl: minutes(cfg.JWT.RefreshExpireMin)},
		},
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.App.Name),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

func (s *Service) signingFor(tokenType TokenType) (signing, error) {
	sig, ok := s.keys[tokenType]
	if !ok {
		return signing{}, fmt.Errorf("unknown token type: %s", tokenType)
	}

	return sig, nil
}

// GenerateTokenPair issues an access and refresh token sharing one issue time.
func (s *Service) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	now := timezone.Now()
	pair := &TokenPair{TokenType: strings.TrimSpace(bearerPrefix)}

	for tokenType, target := range map[TokenType]*string{AccessToken: &pair.AccessToken, RefreshToken: &pair.RefreshToken} {
		signed, err := s.sign(Claims{UserID: userID, Email: email, Role: role, Type: tokenType}, now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s token: %w", tokenType, err)
		}

		*target = signed
	}

	pair.ExpiresIn = int64(s.keys[AccessToken].ttl / time.Second)

	return pair, nil
}

func (s *Service) sign(claims Claims, issuedAt time.Time) (string, error) {
	sig, err := s.signingFor(claims.Type)
	if err != nil {
		return "", err
	}

	claims.TokenID = uuid.NewString()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        claims.TokenID,
		Subject:   claims.UserID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(sig.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sig.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies signature, issuer and lifetime, then checks the token is of tokenType.
func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	sig, err := s.signingFor(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}

	_, err = s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return sig.key, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// RefreshTokens exchanges a valid refresh token for a new pair with the same identity.
func (s *Service) RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header. The scheme is case-insensitive.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, strings.TrimSpace(bearerPrefix)) {
		return "", ErrInvalidHeader
	}

	if token = strings.TrimSpace(token); token == "" {
		return "", ErrInvalidHeader
	}

	return token, nil
}
