package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"pizzaria-storefront/auth"
	"pizzaria-storefront/models"
)

// AuthController handles the admin login
type AuthController struct {
	authenticator *auth.Authenticator
}

// NewAuthController creates a new AuthController
func NewAuthController(authenticator *auth.Authenticator) *AuthController {
	return &AuthController{authenticator: authenticator}
}

// Login handles POST /admin/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Login: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	token, err := c.authenticator.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("⛔ Login: Invalid credentials for user=%s", req.Username)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("❌ Login: %v", err)
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Login: Issued admin token for user=%s", req.Username)
	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresIn: c.authenticator.Tokens().TokenDuration(),
	}, "Login")
}
