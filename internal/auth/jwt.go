package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// JWTManager handles access-token generation and validation, plus refresh
// token generation and hashing.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the session fact set: user
// kind, display name and, for admin sessions, the admin role.
type accessClaims struct {
	jwt.RegisteredClaims
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	AdminRole string `json:"admin_role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT carrying the identity.
func (m *JWTManager) GenerateAccessToken(identity Identity) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Kind: identity.Kind.String(),
		Name: identity.Name,
	}
	if identity.Admin != nil {
		claims.AdminRole = identity.Admin.Role.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and rebuilds
// the Identity it carries.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("parse subject: %w", err)
	}

	kind := domain.UserKind(claims.Kind)
	if !kind.IsValid() {
		return Identity{}, fmt.Errorf("invalid user kind %q", claims.Kind)
	}

	identity := Identity{
		UserID: userID,
		Kind:   kind,
		Name:   claims.Name,
	}
	if claims.AdminRole != "" {
		role := domain.AdminRole(claims.AdminRole)
		if !role.IsValid() {
			return Identity{}, fmt.Errorf("invalid admin role %q", claims.AdminRole)
		}
		identity.Admin = &AdminIdentity{AdminID: userID, Role: role}
	}

	return identity, nil
}

// GenerateRefreshToken creates a cryptographically random refresh token.
// Returns the raw token (sent to the client) and its SHA-256 hash (stored).
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashRefreshToken(raw), nil
}

// HashRefreshToken returns the hex SHA-256 hash of a raw refresh token.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
