package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextUserID = "user_id"

// AdminAuth accepts HMAC-signed bearer tokens whose roles claim contains adminRole.
func AdminAuth(secret, adminRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			log.Printf("[auth][middleware] jwt secret not configured; rejecting admin request path=%s", c.FullPath())
			abort(c, pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Admin access is not configured", http.StatusServiceUnavailable))
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "No bearer token", http.StatusUnauthorized))
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized))
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid claims", http.StatusUnauthorized))
			return
		}

		if !hasRole(claims, adminRole) {
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access only", http.StatusForbidden))
			return
		}

		sub, _ := claims.GetSubject()
		c.Set(ContextUserID, sub)
		c.Next()
	}
}

// hasRole reads "roles" (list or string) and falls back to a single "role" claim.
func hasRole(claims jwt.MapClaims, role string) bool {
	match := func(s string) bool { return strings.EqualFold(s, role) }
	switch roles := claims["roles"].(type) {
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok && match(s) {
				return true
			}
		}
	case string:
		if match(roles) {
			return true
		}
	}
	if s, ok := claims["role"].(string); ok && match(s) {
		return true
	}
	return false
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
