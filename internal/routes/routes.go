package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/audit"
	"github.com/aladinbarber/booking-api/internal/config"
	"github.com/aladinbarber/booking-api/internal/handlers"
	infraRepo "github.com/aladinbarber/booking-api/internal/infra/repository"
	"github.com/aladinbarber/booking-api/internal/live"
	"github.com/aladinbarber/booking-api/internal/middleware"
	"github.com/aladinbarber/booking-api/internal/notify"
	ucAppointment "github.com/aladinbarber/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	broadcaster *live.Broadcaster,
	notifier notify.Notifier,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(scheduleRepo, auditDispatcher, notifier)
	cancelUC := ucAppointment.NewCancelAppointment(scheduleRepo, auditDispatcher)
	modifyUC := ucAppointment.NewModifyAppointment(scheduleRepo, auditDispatcher, notifier)
	statusUC := ucAppointment.NewUpdateStatus(scheduleRepo, auditDispatcher)
	lockUC := ucAppointment.NewLockSlot(scheduleRepo, auditDispatcher)
	unlockUC := ucAppointment.NewUnlockSlot(scheduleRepo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(scheduleRepo, auditDispatcher)
	markViewedUC := ucAppointment.NewMarkAdminViewed(scheduleRepo)
	availableUC := ucAppointment.NewGetAvailableSlots(scheduleRepo)
	revenueUC := ucAppointment.NewGetRevenueReport(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookUC,
		cancelUC,
		modifyUC,
		statusUC,
		lockUC,
		unlockUC,
		deleteUC,
		markViewedUC,
		availableUC,
		broadcaster,
	)

	revenueHandler := handlers.NewRevenueHandler(revenueUC)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(db, auditDispatcher)
	adminMessageHandler := handlers.NewAdminMessageHandler(db)
	pushHandler := handlers.NewPushHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)

		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/barbers/:id", catalogHandler.GetBarber)
		api.GET("/services", catalogHandler.ListServices)

		api.GET("/appointments/available/:barberId", appointmentHandler.Available)
		api.GET("/appointments/by-contact", appointmentHandler.ByContact)
		api.GET("/loyalty/by-contact", userHandler.LoyaltyByContact)

		// Guests book anonymously; a bearer token ties the booking to the
		// signed-in account.
		api.POST("/appointments", middleware.OptionalAuth(cfg), appointmentHandler.Book)
		api.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PUT("/appointments/:id/modify", appointmentHandler.Modify)
	}

	// ======================================================
	// AUTHENTICATED CLIENT ROUTES
	// ======================================================
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		auth.GET("/me", userHandler.Me)
		auth.GET("/me/loyalty", userHandler.Loyalty)
		auth.GET("/me/appointments", appointmentHandler.MyAppointments)

		auth.POST("/push/subscribe", pushHandler.Subscribe)
		auth.POST("/push/unsubscribe", pushHandler.Unsubscribe)
	}

	// ======================================================
	// ADMIN ROUTES
	// ======================================================
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	{
		admin.GET("/appointments", appointmentHandler.List)
		admin.GET("/appointments/filter", appointmentHandler.Filter)
		admin.GET("/appointments/new-count", appointmentHandler.NewCount)
		admin.GET("/appointments/stream", appointmentHandler.Stream)
		admin.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
		admin.PUT("/appointments/:id/viewed", appointmentHandler.MarkViewed)
		admin.DELETE("/appointments/:id", appointmentHandler.Delete)

		admin.POST("/slots/lock", appointmentHandler.Lock)
		admin.POST("/slots/unlock", appointmentHandler.Unlock)

		admin.GET("/blocked-slots", blockedSlotHandler.List)
		admin.POST("/blocked-slots", blockedSlotHandler.Create)
		admin.DELETE("/blocked-slots/:id", blockedSlotHandler.Delete)

		admin.GET("/revenue/:barberId", revenueHandler.Weekly)

		admin.GET("/clients", userHandler.ListClients)

		admin.GET("/messages", adminMessageHandler.List)
		admin.POST("/messages", adminMessageHandler.Post)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
