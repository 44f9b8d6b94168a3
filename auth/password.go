package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks the single owner account and issues tokens for it.
type Authenticator struct {
	username     string
	passwordHash string
	tokens       *JWTManager
}

// NewAuthenticator creates an Authenticator. An empty passwordHash disables login.
func NewAuthenticator(username, passwordHash string, tokens *JWTManager) *Authenticator {
	return &Authenticator{username: username, passwordHash: passwordHash, tokens: tokens}
}

// HashPassword generates a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Login verifies the credentials and returns a signed token.
func (a *Authenticator) Login(username, password string) (string, error) {
	if a.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return a.tokens.Generate(a.username)
}

// Tokens returns the manager used to sign and validate tokens.
func (a *Authenticator) Tokens() *JWTManager {
	return a.tokens
}
