package booking

import (
	"context"

	"laundr/models"
)

// BookingService drives a booking through the negotiation state machine.
type BookingService interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	Approve(ctx context.Context, id string) (*models.Booking, error)
	Decline(ctx context.Context, id string) (*models.Booking, error)
	Counter(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
}
