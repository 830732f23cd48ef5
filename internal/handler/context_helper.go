package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/classtime-scheduler/internal/middleware"
)

func claimsFromContext(c *gin.Context) *middleware.StudentClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*middleware.StudentClaims)
	if !ok {
		return nil
	}
	return claims
}
