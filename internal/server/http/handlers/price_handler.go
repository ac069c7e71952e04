package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// PriceHandler manages customer price endpoints.
type PriceHandler struct {
	facade   PriceFacade
	pageSize int
}

// NewPriceHandler constructs PriceHandler.
func NewPriceHandler(facade PriceFacade, pageSize int) *PriceHandler {
	return &PriceHandler{facade: facade, pageSize: pageSize}
}

// List handles GET /api/price/all.
func (h *PriceHandler) List(c *gin.Context) {
	filter := model.PriceFilter{
		CustomerNo:     queryInt64(c, "customer"),
		ProductCode:    c.Query("product"),
		CustomerSearch: c.Query("customerName"),
		ProductSearch:  c.Query("productName"),
		Status:         c.Query("status"),
	}
	filter.StartDate, _ = model.ParseDate(c.Query("startDate"))
	filter.EndDate, _ = model.ParseDate(c.Query("endDate"))
	filter.TargetDate, _ = model.ParseDate(c.Query("targetDate"))

	sort := model.PriceSort{
		Field: c.Query("sort"),
		Desc:  c.Query("order") == "desc",
	}

	page, size := pagination(c, h.pageSize)
	prices, total, err := h.facade.Prices(c.Request.Context(), filter, sort, page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.PriceResponse, 0, len(prices))
	for _, p := range prices {
		items = append(items, toPriceResponse(p))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, page, size, total))
}

// Insert handles POST /api/price/insert.
func (h *PriceHandler) Insert(c *gin.Context) {
	h.save(c, true)
}

// Update handles PUT /api/price/update.
func (h *PriceHandler) Update(c *gin.Context) {
	h.save(c, false)
}

func (h *PriceHandler) save(c *gin.Context, insert bool) {
	var reqs []dto.PriceRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty batch"})
		return
	}

	records := make([]model.PriceRecord, 0, len(reqs))
	for _, req := range reqs {
		rec := model.PriceRecord{
			No:          req.No,
			CustomerNo:  req.CustomerNo,
			ProductCode: req.ProductCode,
			Amount:      req.Amount,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		}
		if insert {
			rec.No = 0
		}
		records = append(records, rec)
	}

	saved, err := h.facade.SavePrices(c.Request.Context(), records)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
		case errors.Is(err, domainErrors.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "start date must not be after end date"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "price record not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	items := make([]dto.PriceResponse, 0, len(saved))
	for _, p := range saved {
		items = append(items, toPriceResponse(p))
	}
	status := http.StatusOK
	if insert {
		status = http.StatusCreated
	}
	c.JSON(status, items)
}

// CheckDuplicate handles POST /api/price/check-duplicate.
func (h *PriceHandler) CheckDuplicate(c *gin.Context) {
	var req dto.OverlapCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	overlapping, err := h.facade.CheckPriceOverlap(c.Request.Context(),
		req.CustomerNo, req.ProductCode, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "start date must not be after end date"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	items := make([]dto.PriceResponse, 0, len(overlapping))
	for _, p := range overlapping {
		items = append(items, toPriceResponse(p))
	}
	c.JSON(http.StatusOK, items)
}

// ForPair handles GET /api/price/customer-product.
func (h *PriceHandler) ForPair(c *gin.Context) {
	customerNo := queryInt64(c, "customer")
	productCode := c.Query("product")
	if customerNo <= 0 || productCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer and product are required"})
		return
	}

	prices, err := h.facade.PricesForPair(c.Request.Context(), customerNo, productCode)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.PriceResponse, 0, len(prices))
	for _, p := range prices {
		items = append(items, toPriceResponse(p))
	}
	c.JSON(http.StatusOK, items)
}

// UpdateDeleted handles PUT /api/price/updateDel.
func (h *PriceHandler) UpdateDeleted(c *gin.Context) {
	var req dto.PriceDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(req.Nos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty batch"})
		return
	}

	if err := h.facade.SetPricesDeleted(c.Request.Context(), req.Nos, req.Deleted); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "price record not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/price/delete/:id.
func (h *PriceHandler) Delete(c *gin.Context) {
	no, ok := paramInt64(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price number"})
		return
	}

	if err := h.facade.DeletePrice(c.Request.Context(), no); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "price record not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func toPriceResponse(p model.PriceRecord) dto.PriceResponse {
	return dto.PriceResponse{
		No:           p.No,
		CustomerNo:   p.CustomerNo,
		CustomerName: p.CustomerName,
		ProductCode:  p.ProductCode,
		ProductName:  p.ProductName,
		CategoryName: p.CategoryName,
		CategoryPath: p.CategoryPath,
		Amount:       p.Amount,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Deleted:      p.Deleted,
		DeletedAt:    p.DeletedAt,
	}
}
