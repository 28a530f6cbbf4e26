package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = helper.NewValidator()

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa akun")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return h.issueToken(c, &user)
}

// ===================== LOGIN GOOGLE =====================
// POST /api/auth/login-google
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	// Akun harus sudah terdaftar; login Google tidak membuat akun petugas baru.
	var user userModel.UserModel
	if err := h.DB.Where("google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Akun belum terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa akun")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// Simpan google_id saat pertama kali login via Google
	if user.GoogleID == nil {
		if err := h.DB.Model(&user).Update("google_id", claimSet.Sub).Error; err != nil {
			log.Printf("[WARN] gagal menyimpan google_id: %v", err)
		}
	}

	return h.issueToken(c, &user)
}

// ===================== LOGOUT =====================
// POST /api/auth/logout (lewat AuthMiddleware, token ada di Locals)
func (h *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("access_token").(string)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	// Ambil exp dari klaim supaya cleanup tahu kapan entri aman dibuang.
	expiredAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := h.DB.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate") && !strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	return helper.Success(c, "Berhasil logout", nil)
}

func (h *AuthController) issueToken(c *fiber.Ctx, user *userModel.UserModel) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"user_name": user.UserName,
		"jti":       uuid.New().String(),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		User: authDTO.UserLite{
			ID:       user.ID,
			UserName: user.UserName,
			Email:    user.Email,
		},
	})
}
