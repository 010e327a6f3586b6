package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// BasicConfig configures HTTP Basic Authentication. PasswordHash is a bcrypt
// hash (as produced by HashPassword), never a plaintext password.
type BasicConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	Realm        string `mapstructure:"realm"`
}

// HashPassword bcrypt-hashes a plaintext password for storage in config.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// BasicAuth enforces HTTP Basic Authentication against cfg, comparing the
// supplied password against the stored bcrypt hash.
func BasicAuth(cfg BasicConfig, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	realm := cfg.Realm
	if realm == "" {
		realm = "alpacaserver"
	}

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || username != cfg.Username {
			c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
			unauthorized(c, "authentication required")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password)); err != nil {
			logger.Warn("basic auth failed", zap.String("username", username))
			c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
			unauthorized(c, "invalid credentials")
			return
		}

		c.Next()
	}
}
