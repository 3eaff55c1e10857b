package loads

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates the settlement provider could not be
// reached or failed mid-call. Callers may retry.
var ErrProviderUnavailable = errors.New("payment provider unavailable")

// CounterpartyNotFoundError is returned when a party to a transaction cannot
// be resolved on-platform.
type CounterpartyNotFoundError struct {
	Role     string // sender, recipient, source or destination
	LaundrID string
}

func (e *CounterpartyNotFoundError) Error() string {
	return fmt.Sprintf("%s with laundr_id %s not found", e.Role, e.LaundrID)
}

// IsCounterpartyNotFound reports whether err is a CounterpartyNotFoundError.
func IsCounterpartyNotFound(err error) bool {
	var target *CounterpartyNotFoundError
	return errors.As(err, &target)
}
