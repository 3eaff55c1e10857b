// Package loads implements the transaction router: send, request and swap
// money movements with fee computation, settlement and audit logging.
package loads

import (
	"context"
	"errors"
	"fmt"
	"time"

	profileRepo "laundr/database/repository/profile"
	"laundr/models"
	"laundr/services/fees"
	"laundr/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoadService executes money-movement requests after fee computation.
type LoadService interface {
	Send(ctx context.Context, req models.LoadRequest) (*models.LoadResponse, error)
	Request(ctx context.Context, req models.LoadRequest) (*models.LoadResponse, error)
	Swap(ctx context.Context, req models.SwapRequest) (*models.LoadResponse, error)
	VerifyInvite(token string) (string, error)
}

// DefaultLoadService is the production transaction router.
type DefaultLoadService struct {
	Profiles     profileRepo.ProfileRepository
	Settlement   SettlementClient
	Log          *TransactionLog
	InviteMaxAge time.Duration
	Logger       *zap.Logger
}

// Send moves funds from sender to recipient. An off-platform recipient does
// not fail the transfer: a signed invite token is issued instead, which the
// recipient can later present to claim the funds.
func (s *DefaultLoadService) Send(ctx context.Context, req models.LoadRequest) (*models.LoadResponse, error) {
	breakdown, err := fees.Calculate(req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.resolveParty(ctx, "sender", req.SenderID); err != nil {
		return nil, err
	}

	message := "Load sent successfully to on-platform user."
	inviteToken := ""
	err = s.resolveParty(ctx, "recipient", req.RecipientID)
	if err != nil {
		if !IsCounterpartyNotFound(err) {
			return nil, err
		}
		inviteToken, err = utils.GenerateInviteToken(req.RecipientID, req.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to issue invite token: %w", err)
		}
		message = "Load sent to an off-platform user. They will be invited to join."
	}

	resp, err := s.execute(ctx, "send", req.Amount, req.SenderID, req.RecipientID, breakdown)
	if err != nil {
		return nil, err
	}
	resp.Message = message
	resp.InviteToken = inviteToken
	return resp, nil
}

// Request creates a load request from recipient to sender. Both parties must
// already be on-platform.
func (s *DefaultLoadService) Request(ctx context.Context, req models.LoadRequest) (*models.LoadResponse, error) {
	breakdown, err := fees.Calculate(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.resolveParty(ctx, "sender", req.SenderID); err != nil {
		return nil, err
	}
	if err := s.resolveParty(ctx, "recipient", req.RecipientID); err != nil {
		return nil, err
	}

	resp, err := s.execute(ctx, "request", req.Amount, req.SenderID, req.RecipientID, breakdown)
	if err != nil {
		return nil, err
	}
	resp.Message = "Load request created successfully. The sender has been notified."
	return resp, nil
}

// Swap exchanges funds between two on-platform accounts.
func (s *DefaultLoadService) Swap(ctx context.Context, req models.SwapRequest) (*models.LoadResponse, error) {
	breakdown, err := fees.Calculate(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.resolveParty(ctx, "source", req.SourceID); err != nil {
		return nil, err
	}
	if err := s.resolveParty(ctx, "destination", req.DestinationID); err != nil {
		return nil, err
	}

	resp, err := s.execute(ctx, "swap", req.Amount, req.SourceID, req.DestinationID, breakdown)
	if err != nil {
		return nil, err
	}
	resp.Message = "Funds swapped successfully."
	return resp, nil
}

// VerifyInvite validates an invite token and returns the recipient identity
// it encodes.
func (s *DefaultLoadService) VerifyInvite(token string) (string, error) {
	return utils.VerifyInviteToken(token, s.InviteMaxAge)
}

func (s *DefaultLoadService) resolveParty(ctx context.Context, role, laundrID string) error {
	_, err := s.Profiles.Resolve(ctx, laundrID)
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		return &CounterpartyNotFoundError{Role: role, LaundrID: laundrID}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return nil
}

// execute delegates settlement to the provider and records the transaction
// intent for audit, whether or not settlement succeeded.
func (s *DefaultLoadService) execute(ctx context.Context, loadType string, amount float64, sourceID, destinationID string, breakdown models.FeeBreakdown) (*models.LoadResponse, error) {
	intent := models.TransactionIntent{
		ID:            uuid.New().String(),
		Type:          loadType,
		Amount:        amount,
		SourceID:      sourceID,
		DestinationID: destinationID,
		Fees:          breakdown,
		CreatedAt:     time.Now(),
	}

	routine, err := s.Settlement.CreateRoutine(ctx, loadType, amount, sourceID, destinationID)
	if err != nil {
		intent.Status = "failed"
		s.Log.Record(intent)
		s.Logger.Error("settlement failed",
			zap.String("intent_id", intent.ID),
			zap.String("type", loadType),
			zap.Error(err))
		return nil, err
	}

	intent.Status = routine.Status
	s.Log.Record(intent)
	s.Logger.Info("load executed",
		zap.String("intent_id", intent.ID),
		zap.String("routine_id", routine.ID),
		zap.String("type", loadType),
		zap.Float64("amount", amount),
		zap.Float64("fee", breakdown.Total))

	return &models.LoadResponse{
		TransactionID: routine.ID,
		Status:        routine.Status,
		SenderFee:     breakdown.Payer,
		RecipientFee:  breakdown.Payee,
		TotalFee:      breakdown.Total,
		NetAmount:     amount - breakdown.Total,
	}, nil
}
