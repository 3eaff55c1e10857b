package loads

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	profileRepo "laundr/database/repository/profile"
	"laundr/models"
	"laundr/services/fees"

	"go.uber.org/zap"
)

type stubSettlement struct {
	err      error
	lastType string
	lastAmt  float64
	calls    int
}

func (s *stubSettlement) CreateRoutine(_ context.Context, routineType string, amount float64, _, _ string) (*models.AstraRoutine, error) {
	s.calls++
	s.lastType = routineType
	s.lastAmt = amount
	if s.err != nil {
		return nil, s.err
	}
	return &models.AstraRoutine{ID: "rt_test", Status: "pending"}, nil
}

func newTestService(t *testing.T, settlement SettlementClient, members ...string) *DefaultLoadService {
	t.Helper()
	repo := profileRepo.NewMemoryProfileRepo()
	for _, id := range members {
		err := repo.Create(context.Background(), &models.Profile{LaundrID: id, KYCStatus: models.KYCVerified})
		if err != nil {
			t.Fatalf("seeding profile %s: %v", id, err)
		}
	}
	return &DefaultLoadService{
		Profiles:     repo,
		Settlement:   settlement,
		Log:          NewTransactionLog(),
		InviteMaxAge: 30 * time.Minute,
		Logger:       zap.NewNop(),
	}
}

func TestSendComputesFeesAndNet(t *testing.T) {
	settlement := &stubSettlement{}
	svc := newTestService(t, settlement, "alice", "bob")

	resp, err := svc.Send(context.Background(), models.LoadRequest{
		SenderID: "alice", RecipientID: "bob", Amount: 100.00,
	})
	if err != nil {
		t.Fatalf("Send unexpected error: %v", err)
	}
	if resp.TotalFee != 3.74 || resp.SenderFee != 1.87 || resp.RecipientFee != 1.87 {
		t.Errorf("fees = (%v, %v, %v), want (3.74, 1.87, 1.87)", resp.TotalFee, resp.SenderFee, resp.RecipientFee)
	}
	if math.Abs(resp.NetAmount-96.26) > 1e-9 {
		t.Errorf("NetAmount = %v, want 96.26", resp.NetAmount)
	}
	if resp.InviteToken != "" {
		t.Error("InviteToken set for an on-platform recipient")
	}
	if settlement.lastType != "send" || settlement.lastAmt != 100.00 {
		t.Errorf("settlement called with (%s, %v), want (send, 100)", settlement.lastType, settlement.lastAmt)
	}
}

func TestSendValidatesAmountBeforeResolution(t *testing.T) {
	settlement := &stubSettlement{}
	svc := newTestService(t, settlement) // no profiles at all

	_, err := svc.Send(context.Background(), models.LoadRequest{
		SenderID: "ghost", RecipientID: "ghost2", Amount: 4.99,
	})
	if !errors.Is(err, fees.ErrInvalidAmount) {
		t.Errorf("Send error = %v, want ErrInvalidAmount", err)
	}
	if settlement.calls != 0 {
		t.Error("settlement reached despite invalid amount")
	}
}

func TestSendUnknownSenderFails(t *testing.T) {
	svc := newTestService(t, &stubSettlement{}, "bob")

	_, err := svc.Send(context.Background(), models.LoadRequest{
		SenderID: "ghost", RecipientID: "bob", Amount: 50,
	})
	if !IsCounterpartyNotFound(err) {
		t.Errorf("Send error = %v, want CounterpartyNotFoundError", err)
	}
}

func TestSendOffPlatformRecipientGetsInviteToken(t *testing.T) {
	svc := newTestService(t, &stubSettlement{}, "alice")

	resp, err := svc.Send(context.Background(), models.LoadRequest{
		SenderID: "alice", RecipientID: "newcomer", Amount: 50,
	})
	if err != nil {
		t.Fatalf("Send unexpected error: %v", err)
	}
	if resp.InviteToken == "" {
		t.Fatal("InviteToken empty for off-platform recipient")
	}

	recipientID, err := svc.VerifyInvite(resp.InviteToken)
	if err != nil {
		t.Fatalf("VerifyInvite unexpected error: %v", err)
	}
	if recipientID != "newcomer" {
		t.Errorf("VerifyInvite recipient = %q, want %q", recipientID, "newcomer")
	}
}

func TestRequestRequiresBothParties(t *testing.T) {
	svc := newTestService(t, &stubSettlement{}, "alice")

	_, err := svc.Request(context.Background(), models.LoadRequest{
		SenderID: "alice", RecipientID: "ghost", Amount: 50,
	})
	if !IsCounterpartyNotFound(err) {
		t.Errorf("Request error = %v, want CounterpartyNotFoundError", err)
	}
}

func TestSwapRequiresBothParties(t *testing.T) {
	svc := newTestService(t, &stubSettlement{}, "dest")

	_, err := svc.Swap(context.Background(), models.SwapRequest{
		SourceID: "ghost", DestinationID: "dest", Amount: 50,
	})
	if !IsCounterpartyNotFound(err) {
		t.Errorf("Swap error = %v, want CounterpartyNotFoundError", err)
	}
}

func TestSwapRecordsIntent(t *testing.T) {
	svc := newTestService(t, &stubSettlement{}, "a", "b")

	_, err := svc.Swap(context.Background(), models.SwapRequest{
		SourceID: "a", DestinationID: "b", Amount: 80,
	})
	if err != nil {
		t.Fatalf("Swap unexpected error: %v", err)
	}

	intents := svc.Log.All()
	if len(intents) != 1 {
		t.Fatalf("recorded intents = %d, want 1", len(intents))
	}
	got := intents[0]
	if got.Type != "swap" || got.SourceID != "a" || got.DestinationID != "b" || got.Status != "pending" {
		t.Errorf("intent = %+v, want swap a->b pending", got)
	}
}

func TestSettlementFailureStillRecordsIntent(t *testing.T) {
	settlement := &stubSettlement{err: ErrProviderUnavailable}
	svc := newTestService(t, settlement, "a", "b")

	_, err := svc.Send(context.Background(), models.LoadRequest{
		SenderID: "a", RecipientID: "b", Amount: 50,
	})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("Send error = %v, want ErrProviderUnavailable", err)
	}

	intents := svc.Log.All()
	if len(intents) != 1 {
		t.Fatalf("recorded intents = %d, want 1", len(intents))
	}
	if intents[0].Status != "failed" {
		t.Errorf("intent.Status = %q, want failed", intents[0].Status)
	}
}
