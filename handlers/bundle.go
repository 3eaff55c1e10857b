package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle gathers every endpoint handler plus the compliance guard so
// route registration has a single wiring point.
type HandlerBundle struct {
	// Booking negotiation endpoints.
	CreateBooking  gin.HandlerFunc
	ListBookings   gin.HandlerFunc
	ApproveBooking gin.HandlerFunc
	DeclineBooking gin.HandlerFunc
	CounterBooking gin.HandlerFunc
	CancelBooking  gin.HandlerFunc

	// Transaction endpoints.
	SendLoad         gin.HandlerFunc
	RequestLoad      gin.HandlerFunc
	SwapFunds        gin.HandlerFunc
	ClaimInvite      gin.HandlerFunc
	ListTransactions gin.HandlerFunc

	// Profile collaborator endpoints.
	CreateProfile gin.HandlerFunc
	GetProfile    gin.HandlerFunc
	ListProfiles  gin.HandlerFunc

	// Compliance is the explicit financial-request guard; the router mounts
	// it in front of the transaction endpoints.
	Compliance gin.HandlerFunc
}
