package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/observability/metrics"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucProfessional "github.com/BruksfildServices01/salon-scheduler/internal/usecase/professional"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

// Services are the process-wide collaborators built in main.
type Services struct {
	DB        *gorm.DB
	Config    *config.Config
	Logger    *logging.Logger
	Locker    domain.Locker
	Notifier  domain.Notifier
	Messenger handlers.AppointmentMessenger
	Audit     *audit.Dispatcher
	Metrics   *metrics.BookingMetrics

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

func RegisterRoutes(r *gin.Engine, s Services) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(s.Logger))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// REPOSITORIES
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(s.DB)
	professionalRepo := infraRepo.NewProfessionalGormRepository(s.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentDeps := ucAppointment.Deps{
		Repo:                    appointmentRepo,
		Locker:                  s.Locker,
		Notifier:                s.Notifier,
		Audit:                   s.Audit,
		Metrics:                 s.Metrics,
		Logger:                  s.Logger,
		CodeConflictRetries:     s.Config.CodeConflictRetries,
		StrictStatusTransitions: s.Config.StrictStatusTransitions,
	}

	upsertProfessionalUC := ucProfessional.NewUpsertProfessional(
		professionalRepo,
		s.Audit,
		s.Logger,
		s.Config.VerifyEmailDomains,
	)
	listProfessionalsUC := ucProfessional.NewListProfessionals(professionalRepo)
	removeProfessionalUC := ucProfessional.NewRemoveProfessional(professionalRepo, s.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(s.DB, s.Config, s.Logger)
	meHandler := handlers.NewMeHandler(s.DB)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentDeps, s.Messenger)
	professionalHandler := handlers.NewProfessionalHandler(
		upsertProfessionalUC,
		listProfessionalsUC,
		removeProfessionalUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(s.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(s.MetricsHandler))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(s.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PROFESSIONALS
			// ------------------------------
			secured.GET("/professionals", professionalHandler.List)
			secured.PUT("/professionals", professionalHandler.Upsert)
			secured.DELETE("/professionals/:id", professionalHandler.Remove)
			secured.GET("/professionals/:id/availability", appointmentHandler.Availability)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/reminder", appointmentHandler.SendReminder)
			secured.POST("/appointments/:id/resend-confirmation", appointmentHandler.ResendConfirmation)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
