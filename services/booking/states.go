package booking

import "laundr/models"

// transitions is the negotiation state machine. Terminal states have no
// entry: once approved, declined or cancelled, a booking never moves again.
// Re-countering from countered is deliberate; negotiation rounds are
// unbounded and the slot reservation TTL bounds how long an unfinished
// negotiation can pin a slot.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending: {
		models.BookingApproved,
		models.BookingDeclined,
		models.BookingCountered,
		models.BookingCancelled,
	},
	models.BookingCountered: {
		models.BookingApproved,
		models.BookingDeclined,
		models.BookingCountered,
		models.BookingCancelled,
	},
}

// CanTransition reports whether the state machine permits moving a booking
// from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
