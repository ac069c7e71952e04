package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/erpre/backoffice/internal/config"
	"github.com/erpre/backoffice/internal/server/http/handlers"
	"github.com/erpre/backoffice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BackofficeFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(facade)
	employeeHandler := handlers.NewEmployeeHandler(facade, cfg.DefaultPageSize)
	catalogHandler := handlers.NewCatalogHandler(facade, cfg.DefaultPageSize)
	priceHandler := handlers.NewPriceHandler(facade, cfg.DefaultPageSize)
	orderHandler := handlers.NewOrderHandler(facade, cfg.DefaultPageSize)

	api := engine.Group("/api")
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/logout", authHandler.Logout)

	employee := authed.Group("/employee")
	employee.GET("/all", employeeHandler.List)
	employee.GET("/:id", employeeHandler.Get)
	employeeAdmin := employee.Group("")
	employeeAdmin.Use(middleware.AdminRequired())
	employeeAdmin.POST("", employeeHandler.Register)
	employeeAdmin.PUT("/:id", employeeHandler.Update)
	employeeAdmin.DELETE("/:id", employeeHandler.Delete)

	customer := authed.Group("/customer")
	customer.GET("/all", catalogHandler.Customers)
	customer.GET("/:no", catalogHandler.Customer)

	products := authed.Group("/products")
	products.GET("", catalogHandler.Products)
	products.GET("/search", catalogHandler.SearchProducts)
	products.GET("/:code", catalogHandler.Product)

	authed.GET("/category/all", catalogHandler.Categories)

	price := authed.Group("/price")
	price.GET("/all", priceHandler.List)
	price.POST("/insert", priceHandler.Insert)
	price.PUT("/update", priceHandler.Update)
	price.POST("/check-duplicate", priceHandler.CheckDuplicate)
	price.GET("/customer-product", priceHandler.ForPair)
	price.PUT("/updateDel", priceHandler.UpdateDeleted)
	price.DELETE("/delete/:id", priceHandler.Delete)

	order := authed.Group("/order")
	order.POST("", orderHandler.Create)
	order.GET("/all", orderHandler.List)
	order.GET("/report", orderHandler.Report)
	order.GET("/:orderNo", orderHandler.Get)
	order.PUT("/:orderNo", orderHandler.Update)
	orderAdmin := order.Group("")
	orderAdmin.Use(middleware.AdminRequired())
	orderAdmin.PATCH("/:orderNo/status", orderHandler.UpdateStatus)

	return engine
}
