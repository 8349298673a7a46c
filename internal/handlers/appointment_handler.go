package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// AppointmentMessenger resends customer messages on demand.
type AppointmentMessenger interface {
	SendReminder(ctx context.Context, caller identity.Caller, appointmentID string) error
	ResendConfirmation(ctx context.Context, caller identity.Caller, appointmentID string) error
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	cancel       *ucAppointment.CancelAppointment
	get          *ucAppointment.GetAppointment
	list         *ucAppointment.ListAppointments
	availability *ucAppointment.GetAvailability
	messenger    AppointmentMessenger
}

func NewAppointmentHandler(deps ucAppointment.Deps, messenger AppointmentMessenger) *AppointmentHandler {
	return &AppointmentHandler{
		create:       ucAppointment.NewCreateAppointment(deps),
		update:       ucAppointment.NewUpdateAppointment(deps),
		cancel:       ucAppointment.NewCancelAppointment(deps),
		get:          ucAppointment.NewGetAppointment(deps),
		list:         ucAppointment.NewListAppointments(deps),
		availability: ucAppointment.NewGetAvailability(deps),
		messenger:    messenger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       string                       `json:"client_id"`
	ProfessionalID string                       `json:"professional_id"`
	UserID         string                       `json:"user_id"`
	StartDate      timestamp                    `json:"start_date"`
	Slots          int                          `json:"slots"`
	Services       []ucAppointment.ServiceInput `json:"services"`
	Status         string                       `json:"status"`
	Place          models.Place                 `json:"place"`
	Notes          string                       `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ProfessionalID *string                       `json:"professional_id"`
	UserID         *string                       `json:"user_id"`
	StartDate      *timestamp                    `json:"start_date"`
	Slots          *int                          `json:"slots"`
	Services       *[]ucAppointment.ServiceInput `json:"services"`
	Status         *string                       `json:"status"`
	Place          *models.Place                 `json:"place"`
	Notes          *string                       `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	view, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Caller:         middleware.CallerFrom(c),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		UserID:         req.UserID,
		StartDate:      req.StartDate.Time,
		Slots:          req.Slots,
		Services:       req.Services,
		Status:         req.Status,
		Place:          req.Place,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, view)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	in := ucAppointment.ListAppointmentsInput{
		Caller:         middleware.CallerFrom(c),
		ClientID:       c.Query("client_id"),
		ProfessionalID: c.Query("professional_id"),
		UserID:         c.Query("user_id"),
		Status:         c.Query("status"),
	}

	var err error
	if in.From, err = parseBound(c.Query("from"), false); err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_date"))
		return
	}
	if in.To, err = parseBound(c.Query("to"), true); err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_date"))
		return
	}

	views, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		Caller:         middleware.CallerFrom(c),
		ID:             c.Param("id"),
		ProfessionalID: req.ProfessionalID,
		UserID:         req.UserID,
		Slots:          req.Slots,
		Services:       req.Services,
		Status:         req.Status,
		Place:          req.Place,
		Notes:          req.Notes,
	}
	if req.StartDate != nil {
		start := req.StartDate.Time
		in.StartDate = &start
	}

	view, err := h.update.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	view, err := h.cancel.Execute(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.Respond(c, httperr.ErrValidation("invalid_date"))
		return
	}
	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_date"))
		return
	}

	slots := 0
	if s := c.Query("slots"); s != "" {
		if slots, err = strconv.Atoi(s); err != nil {
			httperr.Respond(c, httperr.ErrValidation("invalid_slot_count"))
			return
		}
	}

	times, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		Caller:         middleware.CallerFrom(c),
		ProfessionalID: c.Param("id"),
		Date:           date,
		ServiceID:      c.Query("service_id"),
		Slots:          slots,
		AppointmentID:  c.Query("appointment_id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format(timezone.DateLayout),
		"times": out,
	})
}

// ======================================================
// MESSAGES
// ======================================================

func (h *AppointmentHandler) SendReminder(c *gin.Context) {
	if err := h.messenger.SendReminder(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Accepted(c)
}

func (h *AppointmentHandler) ResendConfirmation(c *gin.Context) {
	if err := h.messenger.ResendConfirmation(c.Request.Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Accepted(c)
}
