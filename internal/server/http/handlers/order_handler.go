package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/erpre/backoffice/internal/domain/errors"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// OrderHandler manages sales order endpoints.
type OrderHandler struct {
	facade   OrderFacade
	pageSize int
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, pageSize int) *OrderHandler {
	return &OrderHandler{facade: facade, pageSize: pageSize}
}

// Create handles POST /api/order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	order := toOrderModel(req)
	order.EmployeeID = CurrentEmployeeID(c)

	created, err := h.facade.CreateOrder(c.Request.Context(), order)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*created))
}

// Get handles GET /api/order/:orderNo.
func (h *OrderHandler) Get(c *gin.Context) {
	no, ok := paramInt64(c, "orderNo")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order number"})
		return
	}

	order, err := h.facade.Order(c.Request.Context(), no)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /api/order/all.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		Status:       model.OrderStatus(c.Query("status")),
		CustomerName: c.Query("customer"),
		EmployeeID:   c.Query("employee"),
	}
	filter.OrderDate, _ = model.ParseDate(c.Query("date"))

	page, size := pagination(c, h.pageSize)
	orders, total, err := h.facade.Orders(c.Request.Context(), filter, page, size)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.NewPage(items, page, size, total))
}

// Update handles PUT /api/order/:orderNo.
func (h *OrderHandler) Update(c *gin.Context) {
	no, ok := paramInt64(c, "orderNo")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order number"})
		return
	}

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	updated, err := h.facade.UpdateOrder(c.Request.Context(), no, toOrderModel(req))
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*updated))
}

// UpdateStatus handles PATCH /api/order/:orderNo/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	no, ok := paramInt64(c, "orderNo")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order number"})
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	err := h.facade.DecideOrder(c.Request.Context(), no, model.OrderStatus(req.Status), CurrentRole(c))
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Report handles GET /api/order/report.
func (h *OrderHandler) Report(c *gin.Context) {
	year := queryInt(c, "year", time.Now().Year())
	rows, err := h.facade.MonthlyOrderReport(c.Request.Context(), year)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.MonthlyReportResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MonthlyReportResponse{
			Year:            r.Year,
			Month:           r.Month,
			Orders:          r.Orders,
			Amount:          r.Amount,
			FormattedAmount: r.FormattedAmount,
		})
	}
	c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "order needs at least one line"})
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than zero"})
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit price must be greater than zero"})
	case errors.Is(err, domainErrors.ErrOrderNotEditable):
		c.JSON(http.StatusConflict, gin.H{"error": "order is no longer editable"})
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "status change not allowed"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderModel(req dto.OrderRequest) *model.Order {
	lines := make([]model.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, model.OrderLine{
			ProductCode:         l.ProductCode,
			UnitPrice:           l.UnitPrice,
			Quantity:            l.Quantity,
			DeliveryRequestDate: l.DeliveryRequestDate,
		})
	}
	return &model.Order{CustomerNo: req.CustomerNo, Lines: lines}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductCode:         l.ProductCode,
			ProductName:         l.ProductName,
			UnitPrice:           l.UnitPrice,
			Quantity:            l.Quantity,
			Total:               l.Total(),
			DeliveryRequestDate: l.DeliveryRequestDate,
		})
	}
	return dto.OrderResponse{
		No:           order.No,
		CustomerNo:   order.CustomerNo,
		CustomerName: order.CustomerName,
		EmployeeID:   order.EmployeeID,
		EmployeeName: order.EmployeeName,
		Status:       string(order.Status),
		TotalAmount:  order.TotalAmount,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
		Lines:        lines,
	}
}
