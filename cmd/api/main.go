package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-stockroom/internal/handler"
	"go-stockroom/internal/middleware"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/wizard"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.User{}, &model.Privilege{}, &model.Role{},
		&model.Category{}, &model.Product{}, &model.Batch{},
		&model.Supplier{}, &model.Customer{},
		&model.PurchaseOrder{}, &model.PurchaseOrderItem{},
		&model.StockIn{}, &model.StockInItem{},
		&model.SalesOrder{}, &model.SalesOrderItem{},
		&model.RequestSlip{}, &model.RequestSlipItem{},
		&model.Shipping{}, &model.FinanceRecord{},
		&model.Notification{}, &model.ActivityLog{},
	)

	// 3. Seed default privileges, roles, and admin user
	seedPrivilegesRolesAndAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	batchRepo := repository.NewBatchRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	poRepo := repository.NewPurchaseOrderRepo(db)
	stockInRepo := repository.NewStockInRepo(db)
	soRepo := repository.NewSalesOrderRepo(db)
	slipRepo := repository.NewRequestSlipRepo(db)
	shippingRepo := repository.NewShippingRepo(db)
	financeRepo := repository.NewFinanceRepo(db)
	notifRepo := repository.NewNotificationRepo(db)
	activityRepo := repository.NewActivityLogRepo(db)
	reportRepo := repository.NewReportRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, privilegeRepo, roleRepo)
	invService := service.NewInventoryService(productRepo, categoryRepo, batchRepo, db)
	masterService := service.NewMasterDataService(categoryRepo, supplierRepo, customerRepo)
	poService := service.NewPurchaseOrderService(poRepo, productRepo, supplierRepo, db)
	stockInService := service.NewStockInService(stockInRepo, productRepo, poRepo, batchRepo, db, wsHub)
	soService := service.NewSalesOrderService(soRepo, productRepo, customerRepo, notifRepo, db, wsHub)
	fulfillService := service.NewFulfillmentService(slipRepo, shippingRepo, productRepo, soRepo, customerRepo, db)
	financeService := service.NewFinanceService(financeRepo, soRepo, poRepo)
	notifService := service.NewNotificationService(notifRepo)
	activityService := service.NewActivityLogService(activityRepo)
	dashService := service.NewDashboardService(reportRepo, financeRepo)

	wizardStore := wizard.NewStore(wizard.DefaultTTL)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	invHandler := handler.NewInventoryHandler(invService, activityService)
	masterHandler := handler.NewMasterDataHandler(masterService, activityService)
	poHandler := handler.NewPurchaseOrderHandler(poService, activityService)
	stockInHandler := handler.NewStockInHandler(stockInService, activityService)
	wizardHandler := handler.NewWizardHandler(wizardStore, poService, stockInService, activityService)
	soHandler := handler.NewSalesOrderHandler(soService, activityService)
	fulfillHandler := handler.NewFulfillmentHandler(fulfillService, activityService)
	financeHandler := handler.NewFinanceHandler(financeService, activityService)
	notifHandler := handler.NewNotificationHandler(notifService)
	activityHandler := handler.NewActivityLogHandler(activityService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Dashboard
	protected.Get("/dashboard/stats", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetStats)
	protected.Get("/dashboard/stock-movement", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetStockMovement)
	protected.Get("/dashboard/financial-summary", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetFinancialSummary)

	// Products and batches
	protected.Get("/products", middleware.RequirePrivilege("product:view"), invHandler.GetProducts)
	protected.Get("/products/options", middleware.RequirePrivilege("product:view"), invHandler.GetProductOptions)
	protected.Get("/products/:id", middleware.RequirePrivilege("product:view"), invHandler.GetProduct)
	protected.Post("/products", middleware.RequirePrivilege("product:create"), invHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequirePrivilege("product:update"), invHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePrivilege("product:delete"), invHandler.DeleteProduct)
	protected.Get("/batches", middleware.RequirePrivilege("product:view"), invHandler.GetBatches)
	protected.Post("/batches", middleware.RequirePrivilege("product:create"), invHandler.CreateBatch)

	// Master data
	protected.Get("/categories", masterHandler.GetCategories)
	protected.Post("/categories", middleware.RequirePrivilege("product:create"), masterHandler.CreateCategory)
	protected.Put("/categories/:id", middleware.RequirePrivilege("product:update"), masterHandler.UpdateCategory)
	protected.Delete("/categories/:id", middleware.RequirePrivilege("product:delete"), masterHandler.DeleteCategory)

	protected.Get("/suppliers", masterHandler.GetSuppliers)
	protected.Get("/suppliers/:id", masterHandler.GetSupplier)
	protected.Post("/suppliers", middleware.RequirePrivilege("supplier:manage"), masterHandler.CreateSupplier)
	protected.Put("/suppliers/:id", middleware.RequirePrivilege("supplier:manage"), masterHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", middleware.RequirePrivilege("supplier:manage"), masterHandler.DeleteSupplier)

	protected.Get("/customers", masterHandler.GetCustomers)
	protected.Get("/customers/:id", masterHandler.GetCustomer)
	protected.Post("/customers", middleware.RequirePrivilege("customer:manage"), masterHandler.CreateCustomer)
	protected.Put("/customers/:id", middleware.RequirePrivilege("customer:manage"), masterHandler.UpdateCustomer)
	protected.Delete("/customers/:id", middleware.RequirePrivilege("customer:manage"), masterHandler.DeleteCustomer)

	// Purchase orders
	protected.Get("/purchase-orders", middleware.RequirePrivilege("purchase_order:view"), poHandler.GetAll)
	protected.Get("/purchase-orders/open", middleware.RequirePrivilege("purchase_order:view"), poHandler.GetOpen)
	protected.Get("/purchase-orders/lookup", middleware.RequirePrivilege("purchase_order:view"), poHandler.GetByOrderNumber)
	protected.Get("/purchase-orders/:id", middleware.RequirePrivilege("purchase_order:view"), poHandler.GetByID)
	protected.Post("/purchase-orders", middleware.RequirePrivilege("purchase_order:create"), poHandler.Create)
	protected.Put("/purchase-orders/:id", middleware.RequirePrivilege("purchase_order:update"), poHandler.Update)
	protected.Delete("/purchase-orders/:id", middleware.RequirePrivilege("purchase_order:delete"), poHandler.Delete)

	// Receiving wizard (registered before /stock-ins/:id so the static
	// segment wins)
	wizardRoutes := protected.Group("/stock-ins/wizard", middleware.RequirePrivilege("stock_in:create"))
	wizardRoutes.Post("/", wizardHandler.Start)
	wizardRoutes.Get("/:id", wizardHandler.Get)
	wizardRoutes.Post("/:id/order", wizardHandler.AttachOrder)
	wizardRoutes.Post("/:id/next", wizardHandler.Next)
	wizardRoutes.Post("/:id/previous", wizardHandler.Previous)
	wizardRoutes.Put("/:id/lines/:index", wizardHandler.SetLine)
	wizardRoutes.Post("/:id/confirm", wizardHandler.Confirm)
	wizardRoutes.Post("/:id/submit", wizardHandler.Submit)
	wizardRoutes.Delete("/:id", wizardHandler.Abandon)

	// Stock in (direct receipts)
	protected.Get("/stock-ins", middleware.RequirePrivilege("stock_in:view"), stockInHandler.GetAll)
	protected.Get("/stock-ins/:id", middleware.RequirePrivilege("stock_in:view"), stockInHandler.GetByID)
	protected.Post("/stock-ins", middleware.RequirePrivilege("stock_in:create"), stockInHandler.Create)
	protected.Put("/stock-ins/:id", middleware.RequirePrivilege("stock_in:update"), stockInHandler.Update)
	protected.Delete("/stock-ins/:id", middleware.RequirePrivilege("stock_in:delete"), stockInHandler.Delete)

	// Sales orders
	protected.Get("/sales-orders", middleware.RequirePrivilege("sales_order:view"), soHandler.GetAll)
	protected.Get("/sales-orders/:id", middleware.RequirePrivilege("sales_order:view"), soHandler.GetByID)
	protected.Post("/sales-orders", middleware.RequirePrivilege("sales_order:create"), soHandler.Create)
	protected.Put("/sales-orders/:id", middleware.RequirePrivilege("sales_order:update"), soHandler.Update)
	protected.Delete("/sales-orders/:id", middleware.RequirePrivilege("sales_order:delete"), soHandler.Delete)

	// Request slips and shipping
	protected.Get("/request-slips", middleware.RequirePrivilege("request_slip:manage"), fulfillHandler.GetRequestSlips)
	protected.Get("/request-slips/:id", middleware.RequirePrivilege("request_slip:manage"), fulfillHandler.GetRequestSlip)
	protected.Post("/request-slips", middleware.RequirePrivilege("request_slip:manage"), fulfillHandler.CreateRequestSlip)
	protected.Put("/request-slips/:id/status", middleware.RequirePrivilege("request_slip:manage"), fulfillHandler.UpdateRequestSlipStatus)
	protected.Delete("/request-slips/:id", middleware.RequirePrivilege("request_slip:manage"), fulfillHandler.DeleteRequestSlip)

	protected.Get("/shippings", middleware.RequirePrivilege("shipping:manage"), fulfillHandler.GetShippings)
	protected.Get("/shippings/:id", middleware.RequirePrivilege("shipping:manage"), fulfillHandler.GetShipping)
	protected.Post("/shippings", middleware.RequirePrivilege("shipping:manage"), fulfillHandler.CreateShipping)
	protected.Put("/shippings/:id", middleware.RequirePrivilege("shipping:manage"), fulfillHandler.UpdateShipping)
	protected.Delete("/shippings/:id", middleware.RequirePrivilege("shipping:manage"), fulfillHandler.DeleteShipping)

	// Finance
	protected.Get("/finance-records", middleware.RequirePrivilege("finance:manage"), financeHandler.GetAll)
	protected.Get("/finance-records/:id", middleware.RequirePrivilege("finance:manage"), financeHandler.GetByID)
	protected.Post("/finance-records", middleware.RequirePrivilege("finance:manage"), financeHandler.Create)
	protected.Put("/finance-records/:id", middleware.RequirePrivilege("finance:manage"), financeHandler.Update)
	protected.Delete("/finance-records/:id", middleware.RequirePrivilege("finance:manage"), financeHandler.Delete)

	// Notifications and activity logs
	protected.Get("/notifications", notifHandler.GetAll)
	protected.Put("/notifications/:id/read", notifHandler.MarkRead)
	protected.Delete("/notifications/:id", notifHandler.Delete)
	protected.Get("/activity-logs", middleware.RequirePrivilege("activity_log:view"), activityHandler.GetAll)

	// User management
	protected.Get("/users", middleware.RequirePrivilege("user:view"), userHandler.GetAll)
	protected.Get("/users/:id", middleware.RequirePrivilege("user:view"), userHandler.GetByID)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.Create)
	protected.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.Update)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.Delete)
	protected.Put("/users/:id/privileges", middleware.RequirePrivilege("user:update"), userHandler.UpdatePrivileges)
	protected.Get("/roles", userHandler.GetRoles)

	// Privileges Route (list all available privileges)
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to fetch privileges"})
		}
		return c.JSON(fiber.Map{"success": true, "data": privileges})
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// MASTER_ADMIN gets ALL privileges
	masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin)
	if err == nil && len(masterRole.Privileges) == 0 {
		db.Model(&masterRole).Association("Privileges").Replace(allPrivileges)
		log.Println("MASTER_ADMIN role assigned all privileges")
	}

	// ADMIN gets everything except user management
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		adminPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if !strings.HasPrefix(p.Code, "user:") {
				adminPrivileges = append(adminPrivileges, p)
			}
		}
		db.Model(&adminRole).Association("Privileges").Replace(adminPrivileges)
		log.Println("ADMIN role assigned limited privileges")
	}

	// WAREHOUSE gets receiving and stock operations
	warehouseCodes := map[string]bool{
		"product:view":        true,
		"purchase_order:view": true,
		"stock_in:view":       true,
		"stock_in:create":     true,
		"stock_in:update":     true,
		"dashboard:view":      true,
	}
	warehouseRole, err := roleRepo.FindByCode(model.RoleWarehouse)
	if err == nil && len(warehouseRole.Privileges) == 0 {
		warehousePrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if warehouseCodes[p.Code] {
				warehousePrivileges = append(warehousePrivileges, p)
			}
		}
		db.Model(&warehouseRole).Association("Privileges").Replace(warehousePrivileges)
		log.Println("WAREHOUSE role assigned receiving privileges")
	}

	// Default admin user with MASTER_ADMIN role
	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		masterRole, _ := roleRepo.FindByCode(model.RoleMasterAdmin)

		admin := &model.User{
			Email:      "admin@example.com",
			FullName:   "Master Administrator",
			RoleID:     &masterRole.ID,
			IsActive:   true,
			Privileges: masterRole.Privileges,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin@example.com / admin123 (MASTER_ADMIN)")
		}
	}
}
