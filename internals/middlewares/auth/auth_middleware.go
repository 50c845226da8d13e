// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campusreach_backend/internals/configs"
	authModel "campusreach_backend/internals/features/users/auth/model"
)

// AuthMiddleware validates the bearer token, checks the blacklist and puts
// the claims every controller needs into Locals: user_id, user_role,
// fellowship_id, zone_id.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// blacklist check, once per request
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token found in blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error on blacklist check:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("invalid Authorization header")
	}
	// cookie fallback for browser clients
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", errors.New("missing Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expiry := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiry.Add(leeway)) {
		return fmt.Errorf("token expired at %s", expiry)
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals("user_id", sub)
	} else if id, ok := claims["id"].(string); ok {
		c.Locals("user_id", id)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("user_role", role)
	}
	if fid, ok := claims["fellowship_id"].(string); ok && fid != "" {
		c.Locals("fellowship_id", fid)
	}
	if zid, ok := claims["zone_id"].(string); ok && zid != "" {
		c.Locals("zone_id", zid)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
}
