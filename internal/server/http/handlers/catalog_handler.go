package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// CatalogHandler serves customer, product and category lookups.
type CatalogHandler struct {
	facade   CatalogFacade
	pageSize int
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade, pageSize int) *CatalogHandler {
	return &CatalogHandler{facade: facade, pageSize: pageSize}
}

// Customers handles GET /api/customer/all.
func (h *CatalogHandler) Customers(c *gin.Context) {
	page, size := pagination(c, h.pageSize)
	customers, total, err := h.facade.Customers(c.Request.Context(), c.Query("search"), page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		items = append(items, toCustomerResponse(cust))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, page, size, total))
}

// Customer handles GET /api/customer/:no.
func (h *CatalogHandler) Customer(c *gin.Context) {
	no, ok := paramInt64(c, "no")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer number"})
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), no)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// Products handles GET /api/products.
func (h *CatalogHandler) Products(c *gin.Context) {
	page, size := pagination(c, h.pageSize)
	products, total, err := h.facade.Products(c.Request.Context(), c.Query("search"), page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, page, size, total))
}

// SearchProducts handles GET /api/products/search.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	products, err := h.facade.SearchProducts(c.Request.Context(),
		c.Query("code"), c.Query("name"), queryInt64(c, "category"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	c.JSON(http.StatusOK, items)
}

// Product handles GET /api/products/:code.
func (h *CatalogHandler) Product(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("code"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Categories handles GET /api/category/all.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		items = append(items, dto.CategoryResponse{
			ID:       cat.ID,
			Name:     cat.Name,
			ParentID: cat.ParentID,
			Level:    cat.Level,
			Path:     cat.Path,
		})
	}
	c.JSON(http.StatusOK, items)
}

func toCustomerResponse(cust model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		No:                 cust.No,
		Name:               cust.Name,
		Tel:                cust.Tel,
		RepresentativeName: cust.RepresentativeName,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Code:         p.Code,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		CategoryPath: p.CategoryPath,
		Price:        p.Price,
	}
}
