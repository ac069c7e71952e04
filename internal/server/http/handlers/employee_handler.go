package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// EmployeeHandler manages employee account endpoints.
type EmployeeHandler struct {
	facade   EmployeeFacade
	pageSize int
}

// NewEmployeeHandler constructs EmployeeHandler.
func NewEmployeeHandler(facade EmployeeFacade, pageSize int) *EmployeeHandler {
	return &EmployeeHandler{facade: facade, pageSize: pageSize}
}

// Register handles POST /api/employee.
func (h *EmployeeHandler) Register(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	employee := &model.Employee{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Tel:   req.Tel,
		Role:  model.Role(req.Role),
	}

	created, err := h.facade.RegisterEmployee(c.Request.Context(), employee, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "employee id and password are required"})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "employee id already taken"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toEmployeeResponse(*created))
}

// Get handles GET /api/employee/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.facade.Employee(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(*employee))
}

// List handles GET /api/employee/all.
func (h *EmployeeHandler) List(c *gin.Context) {
	page, size := pagination(c, h.pageSize)
	employees, total, err := h.facade.Employees(c.Request.Context(), c.Query("search"), page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, toEmployeeResponse(e))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, page, size, total))
}

// Update handles PUT /api/employee/:id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	employee := &model.Employee{
		ID:    c.Param("id"),
		Name:  req.Name,
		Email: req.Email,
		Tel:   req.Tel,
		Role:  model.Role(req.Role),
	}

	if err := h.facade.UpdateEmployee(c.Request.Context(), employee, req.Password); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/employee/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func toEmployeeResponse(e model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Tel:       e.Tel,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Deleted:   e.Deleted,
		DeletedAt: e.DeletedAt,
	}
}
