// Package booking implements the negotiation state machine that takes a
// booking from proposal through counter-offers to an approved, funded state.
package booking

import (
	"context"
	"fmt"
	"time"

	"laundr/models"
	"laundr/services/loads"
	"laundr/services/reservation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DepositFraction is the share of the agreed price collected up front when a
// booking is approved.
const DepositFraction = 0.2

// DefaultBookingService is the production booking negotiation service.
type DefaultBookingService struct {
	Slots          reservation.SlotStore
	Loads          loads.LoadService
	Store          *BookingStore
	ReservationTTL time.Duration
	Logger         *zap.Logger

	locks *lockTable
}

// NewBookingService wires the negotiation service.
func NewBookingService(slots reservation.SlotStore, loadSvc loads.LoadService, ttl time.Duration, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Slots:          slots,
		Loads:          loadSvc,
		Store:          NewBookingStore(),
		ReservationTTL: ttl,
		Logger:         logger,
		locks:          newLockTable(),
	}
}

// Create reserves the freelancer's time slot and, only if the reservation
// succeeds, creates the booking in pending. If persistence fails the
// reservation is released so the slot is not stranded until TTL expiry.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	key := reservation.SlotKey(input.FreelancerID, input.StartTime, input.EndTime)
	if !s.Slots.TryReserve(ctx, key, input.ClientID, s.ReservationTTL) {
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	booking := models.Booking{
		ID:           uuid.New().String(),
		ClientID:     input.ClientID,
		FreelancerID: input.FreelancerID,
		ServiceName:  input.ServiceName,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Price:        input.Price,
		Status:       models.BookingPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Insert(booking); err != nil {
		s.Slots.Release(ctx, key, input.ClientID)
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("client_id", booking.ClientID),
		zap.String("freelancer_id", booking.FreelancerID),
		zap.Float64("price", booking.Price))
	return &booking, nil
}

// Approve transitions a booking to approved and collects the deposit. The
// deposit is initiated strictly before the transition commits: if it fails,
// the booking stays in its prior state.
func (s *DefaultBookingService) Approve(ctx context.Context, id string) (*models.Booking, error) {
	unlock := s.locks.acquire(id)
	defer unlock()

	b, ok := s.Store.Get(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !CanTransition(b.Status, models.BookingApproved) {
		return nil, &InvalidTransitionError{From: b.Status, To: models.BookingApproved}
	}

	deposit := models.LoadRequest{
		SenderID:    b.ClientID,
		RecipientID: b.FreelancerID,
		Amount:      b.Price * DepositFraction,
	}
	if _, err := s.Loads.Send(ctx, deposit); err != nil {
		return nil, fmt.Errorf("deposit failed: %w", err)
	}

	b.Status = models.BookingApproved
	b.UpdatedAt = time.Now()
	s.Store.Save(b)

	s.Logger.Info("booking approved",
		zap.String("booking_id", b.ID),
		zap.Float64("deposit", deposit.Amount))
	return &b, nil
}

// Decline transitions a booking to declined. No financial side effect.
func (s *DefaultBookingService) Decline(ctx context.Context, id string) (*models.Booking, error) {
	return s.transition(id, models.BookingDeclined, nil)
}

// Counter revises any subset of start time, end time and price, and
// transitions the booking to countered. Unspecified fields are unchanged.
func (s *DefaultBookingService) Counter(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	return s.transition(id, models.BookingCountered, func(b *models.Booking) {
		if update.StartTime != nil {
			b.StartTime = *update.StartTime
		}
		if update.EndTime != nil {
			b.EndTime = *update.EndTime
		}
		if update.Price != nil {
			b.Price = *update.Price
		}
	})
}

// Cancel transitions a booking to cancelled from any non-terminal state.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	return s.transition(id, models.BookingCancelled, nil)
}

// Get returns the booking with the given id.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := s.Store.Get(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

// List returns every booking record.
func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Store.All(), nil
}

// transition applies a state change (and optional term mutation) under the
// booking's lock.
func (s *DefaultBookingService) transition(id string, to models.BookingStatus, mutate func(*models.Booking)) (*models.Booking, error) {
	unlock := s.locks.acquire(id)
	defer unlock()

	b, ok := s.Store.Get(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !CanTransition(b.Status, to) {
		return nil, &InvalidTransitionError{From: b.Status, To: to}
	}

	if mutate != nil {
		mutate(&b)
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	s.Store.Save(b)

	s.Logger.Info("booking transitioned",
		zap.String("booking_id", b.ID),
		zap.String("status", string(to)))
	return &b, nil
}
