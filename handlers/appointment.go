package handlers

import (
	"net/http"

	"petshop/middleware"
	"petshop/models"
	"petshop/services/booking"
	"petshop/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the availability, quoting and appointment endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Users  user.UserService
	Logger *zap.Logger
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(svc booking.BookingService, users user.UserService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Users: users, Logger: logger}
}

// GetSlotsHandler returns the availability grid for a date and service.
// GET /api/availability?date=YYYY-MM-DD&serviceId=basic
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("serviceId")
	if date == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and serviceId query parameters are required"})
		return
	}
	slots, err := h.Svc.ComputeSlots(date, serviceID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "serviceId": serviceID, "slots": slots})
}

// CheckSlotHandler evaluates one candidate start time.
// GET /api/availability/check?date=...&time=...&serviceId=...
func (h *BookingHandler) CheckSlotHandler(c *gin.Context) {
	date := c.Query("date")
	timeLabel := c.Query("time")
	serviceID := c.Query("serviceId")
	if date == "" || timeLabel == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, time and serviceId query parameters are required"})
		return
	}
	slot, err := h.Svc.CheckSlot(date, timeLabel, serviceID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// QuoteHandler computes a price breakdown without booking anything.
// POST /api/quote
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		ServiceID string                   `json:"serviceId"`
		DayCare   *models.DayCareSelection `json:"dayCare,omitempty"`
		Email     string                   `json:"email,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ident := middleware.CallerIdentity(c)
	isMember := ident.Authenticated
	if !isMember && input.Email != "" && h.Users != nil {
		exists, err := h.Users.ExistsByEmail(input.Email)
		if err != nil {
			h.Logger.Warn("membership probe failed", zap.Error(err))
		}
		isMember = exists
	}

	quote, err := h.Svc.Quote(input.ServiceID, input.DayCare, isMember)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateAppointmentHandler books an appointment for a member or guest.
// POST /api/appointments
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt, err := h.Svc.CreateAppointment(req, middleware.CallerIdentity(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetAppointmentHandler fetches one of the caller's appointments.
// GET /api/appointments/:id
func (h *BookingHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Param("id"), middleware.CallerIdentity(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// ListMyAppointmentsHandler lists the caller's appointments.
// GET /api/appointments
func (h *BookingHandler) ListMyAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListUserAppointments(middleware.CallerIdentity(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentHandler edits an appointment.
// PATCH /api/appointments/:id
func (h *BookingHandler) UpdateAppointmentHandler(c *gin.Context) {
	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt, err := h.Svc.UpdateAppointment(c.Param("id"), upd, middleware.CallerIdentity(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler cancels an appointment and frees its slot window.
// DELETE /api/appointments/:id
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	if err := h.Svc.CancelAppointment(c.Param("id"), middleware.CallerIdentity(c)); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// ListByDateHandler lists every appointment on a date (back-office).
// GET /api/admin/appointments?date=YYYY-MM-DD
func (h *BookingHandler) ListByDateHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	appts, err := h.Svc.ListAppointmentsByDate(date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appts})
}
