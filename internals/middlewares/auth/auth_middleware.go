package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
)

// AuthMiddleware memvalidasi Bearer token (atau cookie access_token) lalu
// menyimpan user_id dan role di Locals. Penerbitan token dilakukan oleh
// identity service terpisah; backend ini hanya memverifikasi klaim
// user_id / role / name.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if cookieToken := c.Cookies("access_token"); cookieToken != "" {
				authHeader = "Bearer " + cookieToken
			}
		}
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak ditemukan")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Format token tidak valid")
		}
		tokenString := tokenParts[1]

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Konfigurasi auth belum lengkap")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
		}

		// Validasi exp manual (toleransi clock skew 30 detik)
		if exp, ok := claims["exp"].(float64); ok {
			expTime := time.Unix(int64(exp), 0)
			if time.Now().After(expTime.Add(30 * time.Second)) {
				return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
			}
		}

		idStr, ok := claims["user_id"].(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak memiliki user_id")
		}
		if _, err := uuid.Parse(idStr); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "user_id token bukan UUID")
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)

		c.Locals("user_id", idStr)
		c.Locals("role", role)
		c.Locals("name", name)
		return c.Next()
	}
}
