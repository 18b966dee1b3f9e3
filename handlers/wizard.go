package handlers

import (
	"net/http"

	"amora/middleware"
	"amora/services/booking"

	"github.com/gin-gonic/gin"
)

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		CompanionID string `json:"companionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID, wizard, err := h.SessionSvc.StartSession(input.CompanionID, middleware.RequesterID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"wizard":    wizard,
		"packages":  h.BookingSvc.PackageDeals(),
		"timeSlots": h.BookingSvc.AvailableTimeSlots(),
	})
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	wizard, err := h.SessionSvc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// SelectPackage handles POST /api/booking/session/:sessionID/select-package.
func (h *BookingHandler) SelectPackage(c *gin.Context) {
	var input struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	wizard, err := h.SessionSvc.SelectPackage(c.Param("sessionID"), input.PackageID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// SelectSchedule handles POST /api/booking/session/:sessionID/schedule.
func (h *BookingHandler) SelectSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	wizard, err := h.SessionSvc.SelectSchedule(c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// SetDetails handles POST /api/booking/session/:sessionID/details.
func (h *BookingHandler) SetDetails(c *gin.Context) {
	var details booking.WizardDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	wizard, err := h.SessionSvc.SetDetails(c.Param("sessionID"), details)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// AdvanceSession handles POST /api/booking/session/:sessionID/advance.
func (h *BookingHandler) AdvanceSession(c *gin.Context) {
	wizard, err := h.SessionSvc.Advance(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// RetreatSession handles POST /api/booking/session/:sessionID/retreat.
func (h *BookingHandler) RetreatSession(c *gin.Context) {
	wizard, err := h.SessionSvc.Retreat(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// SubmitSession handles POST /api/booking/session/:sessionID/submit.
func (h *BookingHandler) SubmitSession(c *gin.Context) {
	set, err := h.SessionSvc.SubmitSession(c.Request.Context(), c.Param("sessionID"))
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

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.SessionSvc.CancelSession(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
