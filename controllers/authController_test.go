package controllers

import (
	"net/http"
	"testing"

	"caixa/config"
	"caixa/models"
	"caixa/utils"

	"github.com/gin-gonic/gin"
)

func TestLogin(t *testing.T) {
	utils.SetJWTKey("test-secret")

	hash, err := utils.HashPassword("segredo123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cfg := &config.Config{
		Operator: models.Operator{Login: "caixa", PasswordHash: hash, Role: "cashier"},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := &AuthController{Cfg: cfg}
	r.POST("/login", auth.Login)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"missing fields", `{"login":"caixa"}`, http.StatusBadRequest},
		{"wrong login", `{"login":"outro","password":"segredo123"}`, http.StatusUnauthorized},
		{"wrong password", `{"login":"caixa","password":"errado"}`, http.StatusUnauthorized},
		{"ok", `{"login":"caixa","password":"segredo123"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doJSON(t, r, http.MethodPost, "/login", tt.body)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d (body %v)", code, tt.wantCode, body)
			}
			if tt.wantCode == http.StatusOK {
				token, _ := body["token"].(string)
				if token == "" {
					t.Fatal("no token in response")
				}
				if _, err := utils.ValidateToken(token); err != nil {
					t.Fatalf("issued token does not validate: %v", err)
				}
			}
		})
	}
}
