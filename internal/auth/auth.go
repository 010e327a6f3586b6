// Package auth provides the HTTP-layer authentication gate for the Alpaca
// server: HTTP Basic (bcrypt-hashed) or bearer JWT, selected by config. Auth
// runs entirely in front of the dispatcher — it has no awareness of ASCOM
// device types, actions, or error codes.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Mode selects which authentication scheme the server enforces.
type Mode string

const (
	ModeNone  Mode = "none"
	ModeBasic Mode = "basic"
	ModeJWT   Mode = "jwt"
)

// Config is the top-level auth configuration, read from viper under the
// "auth" key.
type Config struct {
	Mode  Mode `mapstructure:"mode"`
	Basic BasicConfig `mapstructure:"basic"`
	JWT   JWTConfig   `mapstructure:"jwt"`
}

// Middleware builds the gin.HandlerFunc enforcing cfg.Mode. ModeNone returns
// a pass-through handler.
func Middleware(cfg Config, logger *zap.Logger) gin.HandlerFunc {
	switch cfg.Mode {
	case ModeBasic:
		return BasicAuth(cfg.Basic, logger)
	case ModeJWT:
		return JWTAuth(cfg.JWT, logger)
	default:
		return func(c *gin.Context) { c.Next() }
	}
}

// unauthorized rejects the request before it ever reaches the dispatcher,
// so the body carries a plain error message rather than an ASCOM envelope —
// the ASCOM error-code table only covers responses the dispatcher produced.
func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
