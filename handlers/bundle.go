package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the wired handler funcs for route registration.
type HandlerBundle struct {
	// Catalog and booking endpoints.
	GetPackages         gin.HandlerFunc
	CreateBooking       gin.HandlerFunc
	GetBooking          gin.HandlerFunc
	ListMyBookings      gin.HandlerFunc
	CreatePaymentIntent gin.HandlerFunc

	// Wizard session endpoints.
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	SelectPackage  gin.HandlerFunc
	SelectSchedule gin.HandlerFunc
	SetDetails     gin.HandlerFunc
	AdvanceSession gin.HandlerFunc
	RetreatSession gin.HandlerFunc
	SubmitSession  gin.HandlerFunc
	CancelSession  gin.HandlerFunc

	// Companion directory endpoints.
	GetCompanionByID        gin.HandlerFunc
	ListCompanions          gin.HandlerFunc
	RegisterCompanion       gin.HandlerFunc
	UpdateCompanionFCMToken gin.HandlerFunc
}
