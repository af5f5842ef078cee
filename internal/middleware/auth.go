package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "momoapi/internal/errors"
)

// Credentials is the single username/password pair accepted by BasicAuth.
// The password is only kept as a bcrypt hash.
type Credentials struct {
	Username     string
	PasswordHash []byte
	Realm        string
}

// NewCredentials builds Credentials from configuration. A non-empty bcrypt
// hash takes precedence over the plain password, which is otherwise hashed
// once at startup.
func NewCredentials(username, password, passwordHash, realm string) (Credentials, error) {
	if username == "" {
		return Credentials{}, fmt.Errorf("basic auth username is required")
	}

	creds := Credentials{Username: username, Realm: realm}
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return Credentials{}, fmt.Errorf("invalid bcrypt password hash: %w", err)
		}
		creds.PasswordHash = []byte(passwordHash)
		return creds, nil
	}

	if password == "" {
		return Credentials{}, fmt.Errorf("basic auth password or password hash is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to hash basic auth password: %w", err)
	}
	creds.PasswordHash = hash
	return creds, nil
}

// Verify reports whether username and password match the credentials.
func (c Credentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) == nil
	return userOK && passOK
}

// BasicAuth rejects requests without valid Basic credentials with a 401 and a
// WWW-Authenticate challenge before they reach any handler.
func BasicAuth(creds Credentials) gin.HandlerFunc {
	realm := creds.Realm
	if realm == "" {
		realm = "Transaction API"
	}
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !creds.Verify(username, password) {
			c.Header("WWW-Authenticate", challenge)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrUnauthorized.Code,
					"message": apperrors.ErrUnauthorized.Message,
				},
			})
			return
		}
		c.Set(authUserKey, username)
		c.Next()
	}
}
