package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/middleware"
)

// CurrentEmployeeID extracts the authenticated employee id from context.
func CurrentEmployeeID(c *gin.Context) string {
	val, ok := c.Get(middleware.EmployeeIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// CurrentRole extracts the authenticated employee role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.RoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

// CurrentToken extracts the raw session token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

// pagination reads page/size query parameters with sane bounds.
func pagination(c *gin.Context, defaultSize int) (page, size int) {
	page = queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	size = queryInt(c, "size", defaultSize)
	if size < 1 || size > 200 {
		size = defaultSize
	}
	return page, size
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryInt64(c *gin.Context, name string) int64 {
	n, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return n
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
