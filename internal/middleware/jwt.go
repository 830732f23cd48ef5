package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	appErrors "github.com/noah-isme/classtime-scheduler/pkg/errors"
	"github.com/noah-isme/classtime-scheduler/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// StudentClaims is the payload of the bearer tokens that gate the
// schedule endpoints. Tokens are issued by an external identity service;
// this API only verifies and reads them, never mints them, so there is no
// login/refresh flow here.
type StudentClaims struct {
	StudentID string `json:"student_id"`
	jwt.RegisteredClaims
}

// JWT protects routes by requiring a valid, HS256-signed bearer token.
func JWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearer(c, secret)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// OptionalJWT attaches claims when present but never blocks the request.
func OptionalJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearer(c, secret); err == nil {
			c.Set(ContextUserKey, claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret string) (*StudentClaims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, appErrors.ErrUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}

	token, err := jwt.ParseWithClaims(parts[1], &StudentClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*StudentClaims)
	if !ok || !token.Valid || claims.StudentID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}
