package routes

import (
	"net"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/config"
	"github.com/nailnav/nailnav/internal/handlers"
	"github.com/nailnav/nailnav/internal/infra/cache"
	infraRepo "github.com/nailnav/nailnav/internal/infra/repository"
	"github.com/nailnav/nailnav/internal/middleware"
	"github.com/nailnav/nailnav/internal/migrations"
	ucVendor "github.com/nailnav/nailnav/internal/usecase/vendorapp"
)

// Infra holds the process-wide singletons built in main. Cache, Store and
// SMS are optional.
type Infra struct {
	Log   *zap.Logger
	Audit *audit.Dispatcher
	Cache *cache.Cache
	Store handlers.ObjectStore
	SMS   handlers.Notifier
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, inf Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))
	r.Use(middleware.Metrics())

	// ======================================================
	// REPOSITORIES
	// ======================================================
	salonRepo := infraRepo.NewSalonGormRepository(db)
	vendorRepo := infraRepo.NewVendorAppGormRepository(db)
	contentRepo := infraRepo.NewContentGormRepository(db)

	// ======================================================
	// USE CASES: VENDOR APPLICATIONS
	// ======================================================
	registerUC := ucVendor.NewRegister(vendorRepo, inf.Audit, inf.Log, net.DefaultResolver)
	loginUC := ucVendor.NewLogin(vendorRepo, inf.Log, cfg.JWTSecret)
	getOwnUC := ucVendor.NewGetOwn(vendorRepo)
	saveDraftUC := ucVendor.NewSaveDraft(vendorRepo, inf.Audit)
	submitUC := ucVendor.NewSubmit(vendorRepo, inf.Audit)
	listAppsUC := ucVendor.NewListApplications(vendorRepo)
	reviewUC := ucVendor.NewReview(vendorRepo, inf.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	salonHandler := handlers.NewSalonHandler(salonRepo, inf.Cache, inf.Log)
	contactHandler := handlers.NewContactHandler(salonRepo, inf.SMS, inf.Log)
	photoHandler := handlers.NewPhotoHandler(salonRepo, inf.Store, inf.Audit, inf.Log)
	vendorSetupHandler := handlers.NewVendorSetupHandler(
		migrations.NewVendorSetup(db, cfg.DBUrl, inf.Log),
		inf.Log,
	)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	vendorHandler := handlers.NewVendorHandler(getOwnUC, saveDraftUC, submitUC)
	adminHandler := handlers.NewAdminHandler(listAppsUC, reviewUC)
	blogHandler := handlers.NewBlogHandler(contentRepo, inf.Audit, inf.Log)
	catalogHandler := handlers.NewCatalogHandler(contentRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db))
	healthHandler := handlers.NewHealthHandler(cfg.Env)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// DIRECTORY
		// ------------------------------
		api.GET("/salons", salonHandler.List)
		api.POST("/salons", salonHandler.SearchByLocation)
		api.GET("/salons/featured", salonHandler.Featured)
		api.GET("/salons/:slug", salonHandler.Get)
		api.GET("/cities", salonHandler.Cities)
		api.POST("/contact", contactHandler.Submit)
		api.GET("/upload/photo", photoHandler.List)

		api.GET("/blog", blogHandler.List)
		api.GET("/blog/:slug", blogHandler.Get)
		api.GET("/services", catalogHandler.Services)

		api.GET("/vendor-setup", vendorSetupHandler.Check)
		api.POST("/vendor-setup", vendorSetupHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.POST("/upload/photo", photoHandler.Upload)
			secured.DELETE("/upload/photo/:photoId", photoHandler.Delete)

			secured.GET("/vendor/application", vendorHandler.Application)
			secured.PATCH("/vendor/application/draft", vendorHandler.SaveDraft)
			secured.POST("/vendor/application/submit", vendorHandler.Submit)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole("admin"))
		{
			admin.GET("/applications", adminHandler.Applications)
			admin.POST("/applications/:id/approve", adminHandler.Approve)
			admin.POST("/applications/:id/reject", adminHandler.Reject)

			admin.GET("/blog", blogHandler.AdminList)
			admin.POST("/blog", blogHandler.Create)
			admin.PUT("/blog/:id", blogHandler.Update)
			admin.DELETE("/blog/:id", blogHandler.Delete)
			admin.POST("/blog/:id/publish", blogHandler.TogglePublish)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
