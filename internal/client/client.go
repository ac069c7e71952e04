package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

// APIError carries the HTTP status and free-text message of a failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// API is the server surface consumed by the editors and list controllers.
type API interface {
	Login(ctx context.Context, employeeID, password string) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error

	Prices(ctx context.Context, query PriceQuery) (*dto.Page[dto.PriceResponse], error)
	InsertPrices(ctx context.Context, records []dto.PriceRequest) ([]dto.PriceResponse, error)
	UpdatePrices(ctx context.Context, records []dto.PriceRequest) ([]dto.PriceResponse, error)
	CheckOverlap(ctx context.Context, req dto.OverlapCheckRequest) ([]dto.PriceResponse, error)
	SetPricesDeleted(ctx context.Context, nos []int64, deleted bool) error
	DeletePrice(ctx context.Context, no int64) error

	CreateOrder(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error)
	Order(ctx context.Context, no int64) (*dto.OrderResponse, error)
	Orders(ctx context.Context, query OrderQuery) (*dto.Page[dto.OrderResponse], error)
	UpdateOrder(ctx context.Context, no int64, req dto.OrderRequest) (*dto.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, no int64, status string) error

	Customers(ctx context.Context, search string, page, size int) (*dto.Page[dto.CustomerResponse], error)
	Products(ctx context.Context, search string, page, size int) (*dto.Page[dto.ProductResponse], error)
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
	MonthlyReport(ctx context.Context, year int) ([]dto.MonthlyReportResponse, error)
}

// PriceQuery is the filter/sort/page state of the price list.
type PriceQuery struct {
	CustomerNo  int64
	ProductCode string
	StartDate   model.Date
	EndDate     model.Date
	TargetDate  model.Date
	Customer    string
	Product     string
	Status      string
	Sort        string
	Desc        bool
	Page        int
	Size        int
}

// OrderQuery is the filter/page state of the order list.
type OrderQuery struct {
	Status   string
	Customer string
	Employee string
	Date     model.Date
	Page     int
	Size     int
}

// HTTPClient implements API against the backoffice REST server. The
// session cookie set by login is kept in the jar, so one client holds
// one signed-in session.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an API client with a cookie jar and default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("base url must be absolute")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = endpoint.Path + path
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &errBody)
		c.logger.Debug("api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login signs in and stores the session cookie in the jar.
func (c *HTTPClient) Login(ctx context.Context, employeeID, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login",
		nil, dto.LoginRequest{EmployeeID: employeeID, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the current session.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil)
}

// Prices fetches one page of the price list.
func (c *HTTPClient) Prices(ctx context.Context, query PriceQuery) (*dto.Page[dto.PriceResponse], error) {
	q := url.Values{}
	if query.CustomerNo > 0 {
		q.Set("customer", fmt.Sprint(query.CustomerNo))
	}
	setNonEmpty(q, "product", query.ProductCode)
	setNonEmpty(q, "startDate", query.StartDate.String())
	setNonEmpty(q, "endDate", query.EndDate.String())
	setNonEmpty(q, "targetDate", query.TargetDate.String())
	setNonEmpty(q, "customerName", query.Customer)
	setNonEmpty(q, "productName", query.Product)
	setNonEmpty(q, "status", query.Status)
	setNonEmpty(q, "sort", query.Sort)
	if query.Desc {
		q.Set("order", "desc")
	}
	setPaging(q, query.Page, query.Size)

	var out dto.Page[dto.PriceResponse]
	if err := c.do(ctx, http.MethodGet, "/api/price/all", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InsertPrices creates a batch of price records.
func (c *HTTPClient) InsertPrices(ctx context.Context, records []dto.PriceRequest) ([]dto.PriceResponse, error) {
	var out []dto.PriceResponse
	if err := c.do(ctx, http.MethodPost, "/api/price/insert", nil, records, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdatePrices updates a batch of price records by number.
func (c *HTTPClient) UpdatePrices(ctx context.Context, records []dto.PriceRequest) ([]dto.PriceResponse, error) {
	var out []dto.PriceResponse
	if err := c.do(ctx, http.MethodPut, "/api/price/update", nil, records, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckOverlap returns the active records intersecting the candidate range.
func (c *HTTPClient) CheckOverlap(ctx context.Context, req dto.OverlapCheckRequest) ([]dto.PriceResponse, error) {
	var out []dto.PriceResponse
	if err := c.do(ctx, http.MethodPost, "/api/price/check-duplicate", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPricesDeleted soft deletes or restores a batch of records.
func (c *HTTPClient) SetPricesDeleted(ctx context.Context, nos []int64, deleted bool) error {
	return c.do(ctx, http.MethodPut, "/api/price/updateDel",
		nil, dto.PriceDeleteRequest{Nos: nos, Deleted: deleted}, nil)
}

// DeletePrice removes a record permanently.
func (c *HTTPClient) DeletePrice(ctx context.Context, no int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/price/delete/%d", no), nil, nil, nil)
}

// CreateOrder submits a new order.
func (c *HTTPClient) CreateOrder(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/order", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Order fetches one order with its lines.
func (c *HTTPClient) Order(ctx context.Context, no int64) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/order/%d", no), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders fetches one page of the order list.
func (c *HTTPClient) Orders(ctx context.Context, query OrderQuery) (*dto.Page[dto.OrderResponse], error) {
	q := url.Values{}
	setNonEmpty(q, "status", query.Status)
	setNonEmpty(q, "customer", query.Customer)
	setNonEmpty(q, "employee", query.Employee)
	setNonEmpty(q, "date", query.Date.String())
	setPaging(q, query.Page, query.Size)

	var out dto.Page[dto.OrderResponse]
	if err := c.do(ctx, http.MethodGet, "/api/order/all", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrder replaces the lines of an editable order.
func (c *HTTPClient) UpdateOrder(ctx context.Context, no int64, req dto.OrderRequest) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/order/%d", no), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus asks for an approval decision.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, no int64, status string) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/order/%d/status", no),
		nil, dto.OrderStatusRequest{Status: status}, nil)
}

// Customers fetches one page of the customer list.
func (c *HTTPClient) Customers(ctx context.Context, search string, page, size int) (*dto.Page[dto.CustomerResponse], error) {
	q := url.Values{}
	setNonEmpty(q, "search", search)
	setPaging(q, page, size)

	var out dto.Page[dto.CustomerResponse]
	if err := c.do(ctx, http.MethodGet, "/api/customer/all", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Products fetches one page of the product list.
func (c *HTTPClient) Products(ctx context.Context, search string, page, size int) (*dto.Page[dto.ProductResponse], error) {
	q := url.Values{}
	setNonEmpty(q, "search", search)
	setPaging(q, page, size)

	var out dto.Page[dto.ProductResponse]
	if err := c.do(ctx, http.MethodGet, "/api/products", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories fetches the full category tree.
func (c *HTTPClient) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/category/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyReport fetches the monthly approved order totals.
func (c *HTTPClient) MonthlyReport(ctx context.Context, year int) ([]dto.MonthlyReportResponse, error) {
	q := url.Values{}
	q.Set("year", fmt.Sprint(year))

	var out []dto.MonthlyReportResponse
	if err := c.do(ctx, http.MethodGet, "/api/order/report", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func setNonEmpty(q url.Values, name, value string) {
	if value != "" {
		q.Set(name, value)
	}
}

func setPaging(q url.Values, page, size int) {
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if size > 0 {
		q.Set("size", fmt.Sprint(size))
	}
}
