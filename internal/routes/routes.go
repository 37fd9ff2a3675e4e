package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	"github.com/AgendaServicos01/agenda-api/internal/config"
	"github.com/AgendaServicos01/agenda-api/internal/handlers"
	infraRepo "github.com/AgendaServicos01/agenda-api/internal/infra/repository"
	"github.com/AgendaServicos01/agenda-api/internal/middleware"
	"github.com/AgendaServicos01/agenda-api/internal/refdata"
	ucAgenda "github.com/AgendaServicos01/agenda-api/internal/usecase/agenda"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// Catálogos carregados uma vez, antes de qualquer rota atender:
	// as duas cargas correm em paralelo e o Warm é a barreira.
	refdataCache := refdata.New(agendaRepo, rdb)
	if err := refdataCache.Warm(context.Background()); err != nil {
		log.Fatalf("failed to warm reference data: %v", err)
	}

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	createUC := ucAgenda.NewCreateAppointment(agendaRepo, auditDispatcher, cfg.Timezone)
	updateUC := ucAgenda.NewUpdateAppointment(agendaRepo, auditDispatcher, cfg.Timezone)
	finalizeUC := ucAgenda.NewFinalizeAppointment(agendaRepo, auditDispatcher, cfg.Timezone)
	cancelUC := ucAgenda.NewCancelAppointment(agendaRepo, auditDispatcher, cfg.Timezone)
	deleteUC := ucAgenda.NewDeleteAppointment(agendaRepo, auditDispatcher)

	listTodayUC := ucAgenda.NewListToday(agendaRepo, cfg.Timezone)
	listHistoryUC := ucAgenda.NewListHistory(agendaRepo, cfg.Timezone)
	listFutureUC := ucAgenda.NewListFuture(agendaRepo, cfg.Timezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db, refdataCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		finalizeUC,
		cancelUC,
		deleteUC,
		listTodayUC,
		listHistoryUC,
		listFutureUC,
		refdataCache,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 CATÁLOGOS (públicos)
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/statuses", catalogHandler.ListStatuses)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/me/services", catalogHandler.CreateService)
			secured.PATCH("/me/services/:id", catalogHandler.UpdateService)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/me/appointments/:id/finalize", appointmentHandler.Finalize)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/appointments/today", appointmentHandler.ListToday)
			secured.GET("/me/appointments/history", appointmentHandler.ListHistory)
			secured.GET("/me/appointments/future", appointmentHandler.ListFuture)
		}
	}
}
