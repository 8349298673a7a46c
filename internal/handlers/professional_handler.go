package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucProfessional "github.com/BruksfildServices01/salon-scheduler/internal/usecase/professional"
)

type ProfessionalHandler struct {
	upsert *ucProfessional.UpsertProfessional
	list   *ucProfessional.ListProfessionals
	remove *ucProfessional.RemoveProfessional
}

func NewProfessionalHandler(
	upsert *ucProfessional.UpsertProfessional,
	list *ucProfessional.ListProfessionals,
	remove *ucProfessional.RemoveProfessional,
) *ProfessionalHandler {
	return &ProfessionalHandler{upsert: upsert, list: list, remove: remove}
}

type UpsertProfessionalRequest struct {
	ClientID string                       `json:"client_id"`
	UserID   string                       `json:"user_id"`
	User     *ucProfessional.NewUserInput `json:"user"`
	Services []models.ServiceAssignment   `json:"services"`
	Schedule []models.ScheduleEntry       `json:"schedule"`
}

func (h *ProfessionalHandler) Upsert(c *gin.Context) {
	var req UpsertProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	p, err := h.upsert.Execute(c.Request.Context(), ucProfessional.UpsertInput{
		Caller:   middleware.CallerFrom(c),
		ClientID: req.ClientID,
		UserID:   req.UserID,
		User:     req.User,
		Services: req.Services,
		Schedule: req.Schedule,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	ps, err := h.list.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Query("client_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, ps)
}

func (h *ProfessionalHandler) Remove(c *gin.Context) {
	err := h.remove.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Query("client_id"), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
