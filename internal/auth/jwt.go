package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails parsing or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// tokenAudience scopes access tokens to the booking API.
const tokenAudience = "meetroom-api"

// clockSkew is tolerated on exp/iat between API replicas.
const clockSkew = 5 * time.Second

// Claims is the identity carried by an access token.
type Claims struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      string
	ExpiresAt time.Time
}

// accessClaims is the wire form: subject is the user id, the tenant and
// role ride as private claims.
type accessClaims struct {
	jwt.RegisteredClaims
	CompanyID string `json:"company_id"`
	Role      string `json:"role,omitempty"`
}

func (c *accessClaims) toClaims() (Claims, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("subject: %w", err)
	}
	companyID, err := uuid.Parse(c.CompanyID)
	if err != nil {
		return Claims{}, fmt.Errorf("company_id: %w", err)
	}
	return Claims{UserID: userID, CompanyID: companyID, Role: c.Role, ExpiresAt: c.ExpiresAt.Time}, nil
}

// JWTManager issues and validates HS256 access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTManager creates a manager signing with secret. config.Validate
// enforces the minimum secret length.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(tokenAudience),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// TTL returns the lifetime of issued access tokens.
func (m *JWTManager) TTL() time.Duration { return m.accessTTL }

// GenerateAccessToken signs a token for userID in companyID.
func (m *JWTManager) GenerateAccessToken(userID, companyID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			ID:        uuid.NewString(),
		},
		CompanyID: companyID.String(),
		Role:      role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses a token and returns its claims.
// All failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	var ac accessClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &ac, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, err := ac.toClaims()
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
