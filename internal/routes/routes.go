package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/audit"
	"github.com/BruksfildServices01/receptionist-api/internal/cache"
	"github.com/BruksfildServices01/receptionist-api/internal/calendar"
	"github.com/BruksfildServices01/receptionist-api/internal/config"
	"github.com/BruksfildServices01/receptionist-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/receptionist-api/internal/infra/repository"
	"github.com/BruksfildServices01/receptionist-api/internal/llm"
	"github.com/BruksfildServices01/receptionist-api/internal/middleware"
	"github.com/BruksfildServices01/receptionist-api/internal/notify"
	"github.com/BruksfildServices01/receptionist-api/internal/storage"
	ucAppointment "github.com/BruksfildServices01/receptionist-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	calendarClient := calendar.NewHTTPClient(cfg.CalendarSyncURL, cfg.CalendarSyncToken)
	calendarDispatcher := calendar.NewDispatcher(db, calendarClient)

	emailSender := notify.NewHTTPSender(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom)
	llmClient := llm.NewClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel)

	businessCache := cache.NewBusinessCache(rdb)
	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		calendarDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	dayOverviewUC := ucAppointment.NewGetDayOverview(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db, uploader, businessCache)
	receptionistHandler := handlers.NewReceptionistHandler(db)

	contactHandler := handlers.NewContactHandler(db)
	callHandler := handlers.NewCallHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		dayOverviewUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	webhookHandler := handlers.NewWebhookHandler(db, businessCache, emailSender, createAppointmentUC)
	assessmentHandler := handlers.NewAssessmentHandler(db, llmClient)

	// ======================================================
	// 📞 WEBHOOKS (telefonia + ferramentas da IA)
	// ======================================================
	webhooks := r.Group("/webhooks")
	webhooks.Use(middleware.RateLimitMiddleware(rdb, 120, time.Minute))
	{
		webhooks.POST("/voice", webhookHandler.Voice)
		webhooks.POST("/voice/status", webhookHandler.VoiceStatus)
		webhooks.POST("/tools/appointments", webhookHandler.ToolCreateAppointment)
		webhooks.POST("/assessment", assessmentHandler.Assess)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (console)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/business", businessHandler.GetMeBusiness)
			secured.PATCH("/me/business", businessHandler.UpdateMeBusiness)
			secured.POST("/me/business/logo", businessHandler.UploadLogo)

			secured.GET("/me/receptionist", receptionistHandler.Get)
			secured.PUT("/me/receptionist", receptionistHandler.Update)

			secured.GET("/me/contacts", contactHandler.List)
			secured.PATCH("/me/contacts/:id", contactHandler.Update)

			secured.GET("/me/calls", callHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/appointments/overview", appointmentHandler.DayOverview)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
