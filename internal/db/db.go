package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AgendaServicos01/agenda-api/internal/config"
	"github.com/AgendaServicos01/agenda-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Status{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedStatuses(db)

	return db
}

// O catálogo de status é dado de referência fixo: 1=Pendente, 2=Finalizado,
// 3=Cancelado. As cores são dicas de exibição.
func seedStatuses(db *gorm.DB) {
	statuses := []models.Status{
		{ID: 1, Name: "Pendente", Color: "#ffc107"},
		{ID: 2, Name: "Finalizado", Color: "#28a745"},
		{ID: 3, Name: "Cancelado", Color: "#dc3545"},
	}

	for _, st := range statuses {
		db.Where(models.Status{ID: st.ID}).FirstOrCreate(&st)
	}
}
