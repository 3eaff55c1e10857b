package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"laundr/models"
	"laundr/services/reservation"

	"go.uber.org/zap"
)

type stubLoads struct {
	mu       sync.Mutex
	err      error
	deposits []models.LoadRequest
}

func (s *stubLoads) Send(_ context.Context, req models.LoadRequest) (*models.LoadResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.deposits = append(s.deposits, req)
	return &models.LoadResponse{TransactionID: "rt_dep", Status: "pending"}, nil
}

func (s *stubLoads) Request(context.Context, models.LoadRequest) (*models.LoadResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubLoads) Swap(context.Context, models.SwapRequest) (*models.LoadResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubLoads) VerifyInvite(string) (string, error) {
	return "", errors.New("not implemented")
}

func newTestBookingService(loadStub *stubLoads) *DefaultBookingService {
	return NewBookingService(reservation.NewMemorySlotStore(), loadStub, 10*time.Minute, zap.NewNop())
}

func testInput() models.BookingInput {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	return models.BookingInput{
		ClientID:     "client-1",
		FreelancerID: "freelancer-1",
		ServiceName:  "wash-and-fold",
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Price:        100.00,
	}
}

func TestCreateReservesSlot(t *testing.T) {
	svc := newTestBookingService(&stubLoads{})
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("Create unexpected error: %v", err)
	}
	if created.Status != models.BookingPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
	if created.ID == "" {
		t.Error("booking has no id")
	}

	// Same freelancer, same window: slot is taken.
	_, err = svc.Create(ctx, testInput())
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("second Create error = %v, want ErrSlotUnavailable", err)
	}

	// A different window is independent.
	other := testInput()
	other.StartTime = other.StartTime.Add(4 * time.Hour)
	other.EndTime = other.EndTime.Add(4 * time.Hour)
	if _, err := svc.Create(ctx, other); err != nil {
		t.Errorf("Create on free window error = %v, want nil", err)
	}
}

func TestCounterUpdatesTermsPartially(t *testing.T) {
	svc := newTestBookingService(&stubLoads{})
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("Create unexpected error: %v", err)
	}

	newPrice := 120.00
	countered, err := svc.Counter(ctx, created.ID, models.BookingUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("Counter unexpected error: %v", err)
	}
	if countered.Status != models.BookingCountered {
		t.Errorf("Status = %q, want countered", countered.Status)
	}
	if countered.Price != 120.00 {
		t.Errorf("Price = %v, want 120", countered.Price)
	}
	if !countered.StartTime.Equal(created.StartTime) || !countered.EndTime.Equal(created.EndTime) {
		t.Error("unspecified time fields changed on partial counter")
	}

	// Re-countering stays permitted.
	if _, err := svc.Counter(ctx, created.ID, models.BookingUpdate{}); err != nil {
		t.Errorf("re-counter error = %v, want nil", err)
	}
}

func TestApproveCollectsTwentyPercentDeposit(t *testing.T) {
	loadStub := &stubLoads{}
	svc := newTestBookingService(loadStub)
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("Create unexpected error: %v", err)
	}
	newPrice := 120.00
	if _, err := svc.Counter(ctx, created.ID, models.BookingUpdate{Price: &newPrice}); err != nil {
		t.Fatalf("Counter unexpected error: %v", err)
	}

	approved, err := svc.Approve(ctx, created.ID)
	if err != nil {
		t.Fatalf("Approve unexpected error: %v", err)
	}
	if approved.Status != models.BookingApproved {
		t.Errorf("Status = %q, want approved", approved.Status)
	}

	if len(loadStub.deposits) != 1 {
		t.Fatalf("deposits = %d, want 1", len(loadStub.deposits))
	}
	dep := loadStub.deposits[0]
	if dep.Amount != 24.0 {
		t.Errorf("deposit amount = %v, want 24.0 (20%% of countered price)", dep.Amount)
	}
	if dep.SenderID != "client-1" || dep.RecipientID != "freelancer-1" {
		t.Errorf("deposit parties = %s -> %s, want client-1 -> freelancer-1", dep.SenderID, dep.RecipientID)
	}
}

func TestApproveDepositFailureLeavesStateUnchanged(t *testing.T) {
	loadStub := &stubLoads{err: errors.New("settlement down")}
	svc := newTestBookingService(loadStub)
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("Create unexpected error: %v", err)
	}

	if _, err := svc.Approve(ctx, created.ID); err == nil {
		t.Fatal("Approve succeeded despite deposit failure")
	}

	current, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get unexpected error: %v", err)
	}
	if current.Status != models.BookingPending {
		t.Errorf("Status after failed deposit = %q, want pending", current.Status)
	}
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	svc := newTestBookingService(&stubLoads{})
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("Create unexpected error: %v", err)
	}
	if _, err := svc.Decline(ctx, created.ID); err != nil {
		t.Fatalf("Decline unexpected error: %v", err)
	}

	if _, err := svc.Approve(ctx, created.ID); !IsInvalidTransition(err) {
		t.Errorf("Approve on declined error = %v, want InvalidTransitionError", err)
	}
	newPrice := 50.0
	if _, err := svc.Counter(ctx, created.ID, models.BookingUpdate{Price: &newPrice}); !IsInvalidTransition(err) {
		t.Errorf("Counter on declined error = %v, want InvalidTransitionError", err)
	}
	if _, err := svc.Cancel(ctx, created.ID); !IsInvalidTransition(err) {
		t.Errorf("Cancel on declined error = %v, want InvalidTransitionError", err)
	}

	current, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get unexpected error: %v", err)
	}
	if current.Status != models.BookingDeclined {
		t.Errorf("Status = %q, want declined (unchanged)", current.Status)
	}
	if current.Price != 100.00 {
		t.Errorf("Price = %v, want 100 (terminal record must not mutate)", current.Price)
	}
}

func TestConcurrentApproveAndDeclineSerialized(t *testing.T) {
	for i := 0; i < 20; i++ {
		svc := newTestBookingService(&stubLoads{})
		ctx := context.Background()

		created, err := svc.Create(ctx, testInput())
		if err != nil {
			t.Fatalf("Create unexpected error: %v", err)
		}

		var wg sync.WaitGroup
		results := make(chan error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Approve(ctx, created.ID)
			results <- err
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Decline(ctx, created.ID)
			results <- err
		}()
		wg.Wait()
		close(results)

		var successes int
		for err := range results {
			if err == nil {
				successes++
			} else if !IsInvalidTransition(err) {
				t.Fatalf("unexpected error kind: %v", err)
			}
		}
		if successes != 1 {
			t.Fatalf("concurrent approve/decline successes = %d, want exactly 1", successes)
		}
	}
}

func TestCancelFromNonTerminalStates(t *testing.T) {
	svc := newTestBookingService(&stubLoads{})
	ctx := context.Background()

	created, err := svc.Create(ctx, testInput())
	if err != nil {
		t.Fatalf("Create unexpected error: %v", err)
	}
	newPrice := 90.0
	if _, err := svc.Counter(ctx, created.ID, models.BookingUpdate{Price: &newPrice}); err != nil {
		t.Fatalf("Counter unexpected error: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, created.ID)
	if err != nil {
		t.Fatalf("Cancel unexpected error: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Errorf("Status = %q, want cancelled", cancelled.Status)
	}
}

func TestTransitionsOnUnknownBooking(t *testing.T) {
	svc := newTestBookingService(&stubLoads{})
	ctx := context.Background()

	if _, err := svc.Approve(ctx, "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Approve error = %v, want ErrBookingNotFound", err)
	}
	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Get error = %v, want ErrBookingNotFound", err)
	}
}
