package handlers

import (
	"errors"
	"net/http"

	"amora/middleware"
	"amora/models"
	"amora/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking construction and the wizard session flow.
type BookingHandler struct {
	BookingSvc booking.BookingService
	SessionSvc booking.WizardSessionService
	Checkout   *booking.CheckoutService
	Logger     *zap.Logger
}

func NewBookingHandler(bookingSvc booking.BookingService, sessionSvc booking.WizardSessionService, checkout *booking.CheckoutService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		BookingSvc: bookingSvc,
		SessionSvc: sessionSvc,
		Checkout:   checkout,
		Logger:     logger,
	}
}

// GetPackages handles GET /api/booking/packages.
func (h *BookingHandler) GetPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages":  h.BookingSvc.PackageDeals(),
		"timeSlots": h.BookingSvc.AvailableTimeSlots(),
	})
}

// CreateBooking handles POST /api/booking. It is the direct, wizard-less
// construction path.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	set, err := h.BookingSvc.CreateBooking(c.Request.Context(), req, middleware.RequesterID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Booking created successfully",
		"booking":           set.Primary,
		"recurringBookings": set.Recurring,
	})
}

// GetBooking handles GET /api/booking/id/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	record, err := h.BookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListMyBookings handles GET /api/booking/mine.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	records, err := h.BookingSvc.ListForRequester(c.Request.Context(), middleware.RequesterID(c))
	if err != nil {
		h.Logger.Error("ListMyBookings: failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// CreatePaymentIntent handles POST /api/booking/payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	clientSecret, err := h.Checkout.CreatePaymentIntent(c.Request.Context(), body.BookingID)
	if err != nil {
		h.Logger.Error("CreatePaymentIntent failed", zap.String("bookingID", body.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// respondError maps booking core errors to HTTP responses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var tErr *booking.TransitionError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"field":   vErr.Field,
			"message": vErr.Message,
		})
	case errors.As(err, &tErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "invalid wizard transition",
			"message": tErr.Message,
		})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrSessionNotFound.Error()})
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
	}
}
