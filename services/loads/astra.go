package loads

import (
	"context"
	"fmt"
	"math"
	"time"

	"laundr/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// settlementTimeout bounds every provider call so a hung provider cannot
// stall the state machine.
const settlementTimeout = 10 * time.Second

// SettlementClient is the external payment-provider collaborator. Its result
// is authoritative and recorded verbatim on the transaction intent.
type SettlementClient interface {
	CreateRoutine(ctx context.Context, routineType string, amount float64, sourceID, destinationID string) (*models.AstraRoutine, error)
}

// AstraClient talks to the Astra payment network. When a Stripe key is
// configured, card settlement runs through a Stripe PaymentIntent; otherwise
// routines are acknowledged locally in sandbox mode.
type AstraClient struct {
	logger *zap.Logger
}

// NewAstraClient returns the default settlement client.
func NewAstraClient(logger *zap.Logger) *AstraClient {
	return &AstraClient{logger: logger}
}

// CreateRoutine registers a money-movement routine with the provider.
func (c *AstraClient) CreateRoutine(ctx context.Context, routineType string, amount float64, sourceID, destinationID string) (*models.AstraRoutine, error) {
	ctx, cancel := context.WithTimeout(ctx, settlementTimeout)
	defer cancel()

	if stripe.Key != "" {
		return c.createStripeRoutine(ctx, routineType, amount, sourceID, destinationID)
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, ctx.Err())
	default:
	}

	routine := &models.AstraRoutine{
		ID:     "rt_" + uuid.New().String(),
		Status: "pending",
	}
	c.logger.Info("astra routine created (sandbox)",
		zap.String("routine_id", routine.ID),
		zap.String("type", routineType),
		zap.Float64("amount", amount),
		zap.String("source", sourceID),
		zap.String("destination", destinationID))
	return routine, nil
}

func (c *AstraClient) createStripeRoutine(ctx context.Context, routineType string, amount float64, sourceID, destinationID string) (*models.AstraRoutine, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String(fmt.Sprintf("laundr %s: %s -> %s", routineType, sourceID, destinationID)),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		c.logger.Error("stripe settlement failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return &models.AstraRoutine{ID: pi.ID, Status: string(pi.Status)}, nil
}
