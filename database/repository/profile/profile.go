// File: database/repository/profile/profile.go
package profileRepo

import (
	"context"
	"errors"

	"laundr/models"
)

// ErrProfileNotFound is returned when no profile exists for a laundr ID.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository resolves marketplace identities. The compliance gate and
// the transaction router depend on Resolve; Create and GetAll exist so the
// surrounding glue can seed and list profiles.
type ProfileRepository interface {
	Resolve(ctx context.Context, laundrID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	GetAll(ctx context.Context) ([]models.Profile, error)
}
