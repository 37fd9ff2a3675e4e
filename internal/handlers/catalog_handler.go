package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	"github.com/AgendaServicos01/agenda-api/internal/httperr"
	"github.com/AgendaServicos01/agenda-api/internal/httpresp"
	"github.com/AgendaServicos01/agenda-api/internal/middleware"
	"github.com/AgendaServicos01/agenda-api/internal/models"
	"github.com/AgendaServicos01/agenda-api/internal/refdata"
)

// CatalogHandler serve os dados de referência (serviços e status). As
// listagens saem do cache da sessão; escritas de serviço vão direto ao
// banco e só aparecem nas listagens no próximo boot.
type CatalogHandler struct {
	db      *gorm.DB
	refdata *refdata.Cache
	audit   *audit.Logger
}

func NewCatalogHandler(db *gorm.DB, rd *refdata.Cache) *CatalogHandler {
	return &CatalogHandler{
		db:      db,
		refdata: rd,
		audit:   audit.New(db),
	}
}

// ======================================================
// LISTS
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.refdata.Services())
}

func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	httpresp.List(c, h.refdata.Statuses())
}

// ======================================================
// SERVICES (admin)
// ======================================================

type CreateServiceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

type UpdateServiceRequest struct {
	Name   *string  `json:"name"`
	Price  *float64 `json:"price"`
	Active *bool    `json:"active"`
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	service := models.Service{
		Name:   req.Name,
		Price:  req.Price,
		Active: true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Log(
		&userID,
		"service_created",
		"service",
		strconv.FormatUint(uint64(service.ID), 10),
		nil,
	)

	httpresp.Created(c, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
			return
		}
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Log(
		&userID,
		"service_updated",
		"service",
		strconv.FormatUint(uint64(service.ID), 10),
		nil,
	)

	httpresp.OK(c, service)
}
