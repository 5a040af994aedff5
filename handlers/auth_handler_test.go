package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zzzhht1/VehicleSystem/models"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	h := NewAuthHandler(db)
	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	app := newAuthApp(t)

	register := RegisterRequest{
		Username:   "operator1",
		Email:      "operator1@example.com",
		Password:   "password123",
		FullName:   "Operator One",
		Department: "Dispatch",
	}
	resp := postJSON(t, app, "/api/auth/register", register)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Same email again.
	resp = postJSON(t, app, "/api/auth/register", register)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Missing required fields.
	resp = postJSON(t, app, "/api/auth/register", RegisterRequest{Username: "x"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("incomplete register: status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, app, "/api/auth/login", LoginRequest{Email: register.Email, Password: "password123"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status = %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	resp.Body.Close()
	if body.Token == "" {
		t.Fatalf("expected token")
	}
	if body.User.Role != "operator" {
		t.Fatalf("role = %q", body.User.Role)
	}

	resp = postJSON(t, app, "/api/auth/login", LoginRequest{Email: register.Email, Password: "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password: status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}
