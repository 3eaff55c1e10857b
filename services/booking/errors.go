package booking

import (
	"errors"
	"fmt"

	"laundr/models"
)

var (
	// ErrBookingNotFound is returned when no booking exists for an id.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrSlotUnavailable is returned when the requested time slot is
	// already reserved.
	ErrSlotUnavailable = errors.New("time slot is currently reserved")
)

// InvalidTransitionError is returned when a transition is attempted from a
// state that does not permit it.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}
