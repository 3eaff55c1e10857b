// File: database/repository/profile/profile_memory.go
package profileRepo

import (
	"context"
	"sync"
	"time"

	"laundr/models"
)

// MemoryProfileRepo keeps profiles in a process-local map. It is the default
// backend when no database is configured and the backend used by tests.
type MemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
}

// NewMemoryProfileRepo returns an empty in-memory profile repository.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[string]models.Profile)}
}

func (r *MemoryProfileRepo) Resolve(_ context.Context, laundrID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[laundrID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

func (r *MemoryProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	r.profiles[profile.LaundrID] = *profile
	return nil
}

func (r *MemoryProfileRepo) GetAll(_ context.Context) ([]models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		all = append(all, p)
	}
	return all, nil
}
