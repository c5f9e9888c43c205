package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CarePulseLabs/clinic-scheduler/internal/config"
	"github.com/CarePulseLabs/clinic-scheduler/internal/logger"
	"github.com/CarePulseLabs/clinic-scheduler/internal/models"
	"github.com/CarePulseLabs/clinic-scheduler/internal/timezone"
)

func NewDB(cfg *config.Config) *gorm.DB {
	log := logger.Get()

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Hospital{},
		&models.User{},
		&models.DoctorProfile{},
		&models.AvailabilityDay{},
		&models.Appointment{},
		&models.Prescription{},
		&models.PrescriptionMedicine{},
		&models.Bill{},
		&models.BillItem{},
		&models.Payment{},
		&models.InventoryItem{},
		&models.KycDocument{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	db.Exec(
		"UPDATE hospitals SET timezone = ? WHERE timezone IS NULL OR timezone = ''",
		timezone.DefaultTimezone,
	)

	return db
}
