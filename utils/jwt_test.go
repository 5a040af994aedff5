package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "role": c.Locals("role")})
	})
	app.Delete("/admin", AuthMiddleware, AdminOnly, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func signToken(t *testing.T, secret string, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    role,
		"exp":     exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	app := newGuardedApp()

	// No token.
	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d", resp.StatusCode)
	}

	// Wrong secret.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "operator", time.Now().Add(time.Hour)))
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad secret: status = %d", resp.StatusCode)
	}

	// Expired.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "operator", time.Now().Add(-time.Hour)))
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expired: status = %d", resp.StatusCode)
	}

	// Valid.
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "operator", time.Now().Add(time.Hour)))
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid: status = %d", resp.StatusCode)
	}
}

func TestAdminOnly(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	app := newGuardedApp()

	req := httptest.NewRequest("DELETE", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "operator", time.Now().Add(time.Hour)))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("operator on admin route: status = %d", resp.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "admin", time.Now().Add(time.Hour)))
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("admin on admin route: status = %d", resp.StatusCode)
	}
}
