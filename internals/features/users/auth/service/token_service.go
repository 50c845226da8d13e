// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"campusreach_backend/internals/configs"
	userModel "campusreach_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 2 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// buildAccessClaims packs everything the auth middleware later reads back
// out of Locals: role + zone/fellowship assignment.
func buildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	if u.FellowshipID != nil {
		claims["fellowship_id"] = u.FellowshipID.String()
	}
	if u.ZoneID != nil {
		claims["zone_id"] = u.ZoneID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

func IssueAccessToken(u *userModel.UserModel, now time.Time) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
}

func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
}

// ComputeRefreshHash: only the hash is persisted
func ComputeRefreshHash(token string) string {
	sum := sha256.Sum256([]byte(token + configs.JWTRefreshSecret))
	return hex.EncodeToString(sum[:])
}

// ParseRefreshToken validates the refresh JWT and returns its subject.
func ParseRefreshToken(token string) (uuid.UUID, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

// AccessTokenExpiry extracts exp from a raw (already verified) access token,
// used when blacklisting at logout.
func AccessTokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().Add(accessTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(accessTTL)
}

func RefreshTTL() time.Duration { return refreshTTL }
