package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/security"
	"factorygate.in/factorygate/web/common"
)

// SupervisorAuth guards the presence report and the unauthorized-attempt
// log. Clients present the token minted by the PIN endpoint as a Bearer
// header or the factorygate.Supervisor cookie.
func SupervisorAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie("factorygate.Supervisor")
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = parts[1]
		}

		claims, err := security.ParseSupervisorToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
