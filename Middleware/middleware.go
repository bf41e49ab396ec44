package Middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Utils"
	"github.com/nikisathe/Doctor-appointment-booking/Utils/Token"
)

// JwtAuthMiddleware rejects requests without a valid bearer token or whose
// server-side session has been revoked by logout.
func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Token.ExtractClaims(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		if !Utils.SessionActive(claims.ID) {
			c.String(http.StatusUnauthorized, "Unauthorized Session Revoked")
			c.Abort()
			return
		}
		c.Next()
	}
}
