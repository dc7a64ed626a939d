package main

import (
	"time"

	"go-pos-register/internal/catalog"
	"go-pos-register/internal/config"
	"go-pos-register/internal/handlers"
	"go-pos-register/internal/kv"
	"go-pos-register/internal/ledger"
	"go-pos-register/internal/logging"
	"go-pos-register/internal/middleware"
	"go-pos-register/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logging.Sync()
	log := logging.L()

	// Storage: embedded sqlite by default, pure in-memory when DB_PATH is
	// blanked out (demo mode).
	var store kv.Store
	if cfg.DBPath == "" {
		log.Warn("DB_PATH is empty, running on in-memory storage; state is lost on exit")
		store = kv.NewMemory()
	} else {
		db, err := kv.OpenDatabase(cfg.DBPath)
		if err != nil {
			log.Fatal("failed to open storage", zap.String("path", cfg.DBPath), zap.Error(err))
		}
		store = db
	}

	cat := catalog.New(store)
	if err := cat.Seed(); err != nil {
		log.Fatal("failed to seed catalog", zap.Error(err))
	}

	sessions := session.NewManager(store)
	if err := sessions.SeedAdmins(); err != nil {
		log.Fatal("failed to seed admin accounts", zap.Error(err))
	}

	led := ledger.New(store)

	h := handlers.New(cat, led, sessions)
	h.AllowAdminRegistration = cfg.AllowAdminRegistration

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.Observe())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register (cashier) auth
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/session", h.Session)

	// Back-office auth
	r.POST("/admin/login", h.AdminLogin)
	r.POST("/admin/logout", h.AdminLogout)
	r.GET("/admin/session", h.AdminSession)

	if cfg.AllowAdminRegistration {
		r.POST("/admin/register", h.AdminRegister)
		log.Warn("admin registration route is OPEN; disable this in production")
	} else {
		log.Info("admin registration route is disabled")
	}

	// --- CASHIER ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.RequireEmployee(sessions))
	{
		api.GET("/products", h.GetProducts)
		api.GET("/products/scan/:barcode", h.ScanProduct)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PATCH("/cart/items/:lineId", h.ChangeCartQty)
		api.DELETE("/cart/items/:lineId", h.RemoveCartItem)
		api.POST("/checkout", h.Checkout)

		api.GET("/sales", h.GetSales)
		api.GET("/sales/:id", h.GetSale)
	}

	// --- ADMIN ROUTES ---
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAdmin(sessions))
	{
		admin.GET("/products", h.GetAllProducts)
		admin.POST("/products", h.AddProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.PUT("/products/:id/status", h.SetProductStatus)
		admin.GET("/reports", h.GetSalesReport)
	}

	log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed to start", zap.Error(err))
	}
}
