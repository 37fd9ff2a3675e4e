package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AgendaServicos01/agenda-api/internal/httpresp"
	"github.com/AgendaServicos01/agenda-api/internal/middleware"
	"github.com/AgendaServicos01/agenda-api/internal/refdata"
	ucAgenda "github.com/AgendaServicos01/agenda-api/internal/usecase/agenda"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC      *ucAgenda.CreateAppointment
	updateUC      *ucAgenda.UpdateAppointment
	finalizeUC    *ucAgenda.FinalizeAppointment
	cancelUC      *ucAgenda.CancelAppointment
	deleteUC      *ucAgenda.DeleteAppointment
	listTodayUC   *ucAgenda.ListToday
	listHistoryUC *ucAgenda.ListHistory
	listFutureUC  *ucAgenda.ListFuture

	refdata *refdata.Cache
}

func NewAppointmentHandler(
	createUC *ucAgenda.CreateAppointment,
	updateUC *ucAgenda.UpdateAppointment,
	finalizeUC *ucAgenda.FinalizeAppointment,
	cancelUC *ucAgenda.CancelAppointment,
	deleteUC *ucAgenda.DeleteAppointment,
	listTodayUC *ucAgenda.ListToday,
	listHistoryUC *ucAgenda.ListHistory,
	listFutureUC *ucAgenda.ListFuture,
	refdata *refdata.Cache,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		finalizeUC:    finalizeUC,
		cancelUC:      cancelUC,
		deleteUC:      deleteUC,
		listTodayUC:   listTodayUC,
		listHistoryUC: listHistoryUC,
		listFutureUC:  listFutureUC,
		refdata:       refdata,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Client    string `json:"client" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Client    string `json:"client" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	StatusID  uint   `json:"status_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAgenda.CreateAppointmentInput{
		UserID:    userID,
		Client:    req.Client,
		Phone:     req.Phone,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.Created(c, h.toDTO(ap))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidRequest(c)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAgenda.UpdateAppointmentInput{
		UserID:        userID,
		AppointmentID: id,
		Client:        req.Client,
		Phone:         req.Phone,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		StatusID:      req.StatusID,
	})
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

// ======================================================
// FINALIZE / CANCEL
// ======================================================

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	ap, err := h.finalizeUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), userID, id); err != nil {
		writeAgendaError(c, err)
		return
	}

	c.Status(204)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListToday(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	res, err := h.listTodayUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.OK(c, h.toListDTO(res))
}

func (h *AppointmentHandler) ListHistory(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	res, err := h.listHistoryUC.Execute(c.Request.Context(), ucAgenda.ListHistoryInput{
		UserID: userID,
		Start:  c.Query("start"),
		End:    c.Query("end"),
	})
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.OK(c, h.toListDTO(res))
}

func (h *AppointmentHandler) ListFuture(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	res, err := h.listFutureUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	httpresp.OK(c, h.toListDTO(res))
}
