package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/server/http/dto"
	"github.com/erpre/backoffice/internal/server/http/middleware"
)

// AuthHandler processes sign-in and sign-out.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	employee, token, err := h.facade.Login(c.Request.Context(), req.EmployeeID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid employee id or password"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Role:       string(employee.Role),
	})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := CurrentToken(c)
	if token == "" {
		token = middleware.ExtractToken(c)
	}

	if err := h.facade.Logout(c.Request.Context(), token); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.ClearAuthCookie(c)
	c.Status(http.StatusOK)
}
