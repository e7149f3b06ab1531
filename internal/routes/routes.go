package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	"github.com/BruksfildServices01/salon-api/internal/config"
	"github.com/BruksfildServices01/salon-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-api/internal/infra/repository"
	"github.com/BruksfildServices01/salon-api/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-api/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/salon-api/internal/usecase/catalog"
	ucCustomer "github.com/BruksfildServices01/salon-api/internal/usecase/customer"
	ucLoyalty "github.com/BruksfildServices01/salon-api/internal/usecase/loyalty"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Audit  *audit.Dispatcher
	// Redis nil desliga o rate limit.
	Redis *redis.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", handlers.Health(d.DB))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(d.DB)
	categoryRepo := infraRepo.NewCategoryGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	ledger := ucLoyalty.NewLedger(loyaltyRepo, d.Config.Loyalty(), d.Audit)

	customerUC := handlers.CustomerUseCases{
		List:   ucCustomer.NewListCustomers(customerRepo),
		Get:    ucCustomer.NewGetCustomer(customerRepo),
		Create: ucCustomer.NewCreateCustomer(customerRepo, d.Audit),
		Update: ucCustomer.NewUpdateCustomer(customerRepo, d.Audit),
		Delete: ucCustomer.NewDeleteCustomer(customerRepo, d.Audit),
	}

	categories := ucCatalog.NewCategories(categoryRepo, d.Audit)
	services := ucCatalog.NewServices(serviceRepo, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	customerHandler := handlers.NewCustomerHandler(customerUC, ledger)
	categoryHandler := handlers.NewCategoryHandler(categories)
	serviceHandler := handlers.NewServiceHandler(services)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAppointments(appointmentRepo),
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	if d.Redis != nil {
		limiter := middleware.NewRateLimiter(d.Redis, d.Config.RateLimitPerMinute, time.Minute)
		api.Use(limiter.Middleware(d.Log))
	}
	api.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
	{
		// ------------------------------
		// CUSTOMERS + LOYALTY
		// ------------------------------
		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers/:id", customerHandler.Get)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		api.POST("/customers/:id/loyalty/visit", customerHandler.AddVisit)
		api.POST("/customers/:id/loyalty/referral", customerHandler.AddReferral)
		api.POST("/customers/:id/loyalty/spend", customerHandler.SpendPoints)
		api.GET("/customers/:id/loyalty/discount", customerHandler.Discount)

		// ------------------------------
		// SERVICE CATEGORIES
		// ------------------------------
		api.GET("/service-categories", categoryHandler.List)
		api.POST("/service-categories", categoryHandler.Create)
		api.GET("/service-categories/:id", categoryHandler.Get)
		api.PUT("/service-categories/:id", categoryHandler.Update)
		api.DELETE("/service-categories/:id", categoryHandler.Delete)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services/search", serviceHandler.Search)
		api.GET("/services/price-range", serviceHandler.PriceRange)
		api.GET("/services/promotions", serviceHandler.Promotions)
		api.GET("/services/category/:categoryId", serviceHandler.ByCategory)
		api.GET("/services/:id", serviceHandler.Get)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)
		api.PATCH("/services/:id/promotional-price", serviceHandler.SetPromotionalPrice)
		api.PATCH("/services/:id/activate", serviceHandler.Activate)
		api.PATCH("/services/:id/deactivate", serviceHandler.Deactivate)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
