package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/audit"
	"github.com/CarePulseLabs/clinic-scheduler/internal/cache"
	"github.com/CarePulseLabs/clinic-scheduler/internal/config"
	"github.com/CarePulseLabs/clinic-scheduler/internal/handlers"
	infraRepo "github.com/CarePulseLabs/clinic-scheduler/internal/infra/repository"
	"github.com/CarePulseLabs/clinic-scheduler/internal/logger"
	"github.com/CarePulseLabs/clinic-scheduler/internal/middleware"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/payments"
	"github.com/CarePulseLabs/clinic-scheduler/internal/storage"
	ucAppointment "github.com/CarePulseLabs/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityStore := cache.NewAvailabilityStore(rdb)
	uploader := storage.NewUploader(cfg)

	var gateway *payments.Gateway
	if cfg.MPAccessToken != "" {
		var err error
		gateway, err = payments.NewGateway(cfg.MPAccessToken)
		if err != nil {
			logger.Get().Warn("payment gateway disabled", zap.Error(err))
			gateway = nil
		}
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	eligibilityUC := ucAppointment.NewGetCancellationEligibility(
		appointmentRepo,
	)

	freeSlotsUC := ucAppointment.NewGetFreeSlots(
		appointmentRepo,
	)

	listForPatientUC := ucAppointment.NewListAppointmentsForPatient(
		appointmentRepo,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	hospitalHandler := handlers.NewHospitalHandler(db, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(db, availabilityStore, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db, uploader)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		auditDispatcher,
		bookUC,
		cancelUC,
		completeUC,
		eligibilityUC,
		freeSlotsUC,
		listForPatientUC,
		listByDateUC,
		listByMonthUC,
	)

	prescriptionHandler := handlers.NewPrescriptionHandler(db, auditDispatcher)
	inventoryHandler := handlers.NewInventoryHandler(db, auditDispatcher)
	billingHandler := handlers.NewBillingHandler(db, gateway, auditDispatcher)
	kycHandler := handlers.NewKycHandler(db, uploader, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, freeSlotsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetHospital)
			publicAPI.GET("/:slug/doctors", publicHandler.ListDoctors)
			publicAPI.GET("/:slug/doctors/:doctorId/free-slots", publicHandler.FreeSlots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register-hospital", authHandler.RegisterHospital)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			// ------------------------------
			// PATIENT
			// ------------------------------
			patient := secured.Group("/")
			patient.Use(middleware.RequireRoles(models.RolePatient))
			{
				patient.POST("/appointments", appointmentHandler.Book)
				patient.GET("/appointments", appointmentHandler.ListMine)
				patient.GET("/appointments/:id/cancellation-eligibility", appointmentHandler.CancellationEligibility)
				patient.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				patient.GET("/doctors/:doctorId/free-slots", appointmentHandler.FreeSlots)

				patient.GET("/me/prescriptions", prescriptionHandler.ListMine)

				patient.GET("/me/bills", billingHandler.ListMine)
				patient.POST("/me/bills/:id/pay", billingHandler.Pay)

				patient.POST("/me/kyc", kycHandler.Upload)
				patient.GET("/me/kyc", kycHandler.ListMine)
			}

			// ------------------------------
			// DOCTOR
			// ------------------------------
			doctor := secured.Group("/")
			doctor.Use(middleware.RequireRoles(models.RoleDoctor))
			{
				doctor.GET("/me/availability", availabilityHandler.Get)
				doctor.PUT("/me/availability", availabilityHandler.Put)
				doctor.GET("/me/availability/presets", availabilityHandler.Presets)
				doctor.POST("/me/availability/preset", availabilityHandler.ApplyPreset)
				doctor.POST("/me/availability/copy-weekdays", availabilityHandler.CopyToWeekdays)
				doctor.POST("/me/availability/clear", availabilityHandler.ClearAll)
				doctor.POST("/me/availability/undo", availabilityHandler.Undo)

				doctor.GET("/me/profile", profileHandler.Get)
				doctor.PUT("/me/profile", profileHandler.Upsert)
				doctor.POST("/me/profile/photo", profileHandler.UploadPhoto)

				doctor.GET("/me/appointments", appointmentHandler.ListByDate)
				doctor.GET("/me/appointments/month", appointmentHandler.ListByMonth)
				doctor.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
				doctor.PATCH("/me/appointments/:id/reject", appointmentHandler.Reject)
				doctor.PATCH("/me/appointments/:id/follow-up", appointmentHandler.MarkFollowUp)

				doctor.POST("/prescriptions", prescriptionHandler.Create)
			}

			// ------------------------------
			// PHARMACY
			// ------------------------------
			pharmacy := secured.Group("/pharmacy")
			pharmacy.Use(middleware.RequireRoles(models.RolePharmacist, models.RoleAdmin))
			{
				pharmacy.GET("/prescriptions", prescriptionHandler.ListPending)
				pharmacy.PATCH("/prescriptions/:id/fulfil", prescriptionHandler.Fulfil)

				pharmacy.GET("/inventory", inventoryHandler.List)
				pharmacy.GET("/inventory/low-stock", inventoryHandler.LowStock)
				pharmacy.POST("/inventory", inventoryHandler.Create)
				pharmacy.PUT("/inventory/:id", inventoryHandler.Update)
				pharmacy.DELETE("/inventory/:id", inventoryHandler.Delete)
			}

			// ------------------------------
			// BILLING (STAFF)
			// ------------------------------
			billing := secured.Group("/billing")
			billing.Use(middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin))
			{
				billing.POST("/bills", billingHandler.Create)
				billing.PATCH("/bills/:id/cancel", billingHandler.Cancel)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("/hospital", hospitalHandler.GetSettings)
				admin.PATCH("/hospital", hospitalHandler.UpdateSettings)
				admin.POST("/staff", hospitalHandler.CreateStaff)

				admin.GET("/kyc/pending", kycHandler.ListPending)
				admin.PATCH("/kyc/:id/review", kycHandler.Review)

				admin.POST("/payments/confirm", billingHandler.ConfirmPayment)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
