// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campusreach_backend/internals/configs"
	"campusreach_backend/internals/constants"
	authModel "campusreach_backend/internals/features/users/auth/model"
	authRepo "campusreach_backend/internals/features/users/auth/repository"
	userDTO "campusreach_backend/internals/features/users/user/dto"
	userModel "campusreach_backend/internals/features/users/user/model"
	helper "campusreach_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register. Self registration always lands on the member
// role; elevated roles are assigned by an admin afterwards.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body userDTO.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Normalize()
	body.Role = constants.RoleMember
	body.ZoneID = nil

	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if _, err := authRepo.FindUserByEmail(db, body.Email); err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := body.ToModel()
	user.Password = string(hashed)

	if err := authRepo.CreateUser(db, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful", userDTO.ToUserResponse(user))
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueTokenPair(db, c, user, "Login successful")
}

// ========================== GOOGLE LOGIN ==========================
// POST /api/auth/login-google verifies the Google ID token and signs the
// matching account in (account must already exist, matched by google_id or
// email).
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.IDToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		user, err = authRepo.FindUserByEmail(db, strings.ToLower(claimSet.Email))
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "No account found for this Google identity")
		}
		// link the google id on first google sign-in
		db.Model(user).Update("google_id", claimSet.Sub)
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	return issueTokenPair(db, c, user, "Login successful")
}

// ========================== REFRESH ==========================
// POST /api/auth/refresh-token rotates the refresh token.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		// body fallback for non-browser clients
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&input)
		refreshCookie = strings.TrimSpace(input.RefreshToken)
	}
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	userID, err := ParseRefreshToken(refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	hash := ComputeRefreshHash(refreshCookie)
	if _, err := authRepo.FindActiveRefreshTokenByHash(db, hash); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown refresh token")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: drop the old hash before issuing a new pair
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	return issueTokenPair(db, c, user, "Token refreshed")
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout blacklists the current access token and revokes
// the caller's refresh tokens.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing bearer token")
	}
	token := parts[1]

	if err := authRepo.BlacklistToken(db, token, AccessTokenExpiry(token)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to invalidate token")
	}

	if idStr, ok := c.Locals("user_id").(string); ok {
		if userID, err := uuid.Parse(idStr); err == nil {
			_ = authRepo.DeleteRefreshTokensForUser(db, userID)
		}
	}

	clearRefreshCookie(c)
	return helper.JsonOK(c, "Logged out", nil)
}

// ========================== internals ==========================

func issueTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel, message string) error {
	now := time.Now().UTC()

	access, err := IssueAccessToken(user, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	refresh, err := IssueRefreshToken(user.ID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     ComputeRefreshHash(refresh),
		ExpiresAt: now.Add(RefreshTTL()),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setRefreshCookie(c, refresh, now.Add(RefreshTTL()))

	return helper.JsonOK(c, message, fiber.Map{
		"access_token": access,
		"user":         userDTO.ToUserResponse(user),
	})
}

func setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/api/auth",
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
