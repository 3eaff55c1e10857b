// Package compliance implements the gate that screens every mutating
// financial request (KYC, risk score, velocity) before business logic runs.
package compliance

import (
	"context"
	"errors"
	"fmt"

	profileRepo "laundr/database/repository/profile"
	"laundr/models"

	"go.uber.org/zap"
)

// ExtractSubjectID resolves the acting identity from a transaction payload.
// Endpoints name the field sender_id or source_id depending on the operation;
// the alias resolution lives here so it happens once, centrally.
func ExtractSubjectID(payload map[string]interface{}) string {
	if id, ok := payload["sender_id"].(string); ok && id != "" {
		return id
	}
	if id, ok := payload["source_id"].(string); ok && id != "" {
		return id
	}
	return ""
}

// Gate runs the compliance checks in a fixed order: identity resolution, KYC,
// risk score, velocity. Any rejection short-circuits.
type Gate struct {
	Profiles      profileRepo.ProfileRepository
	Risk          RiskScorer
	Velocity      VelocityChecker
	RiskThreshold float64
	Logger        *zap.Logger
}

// NewGate assembles a gate with the default scorer and a limiter-backed
// velocity checker.
func NewGate(profiles profileRepo.ProfileRepository, riskThreshold float64, perMinute, burst int, logger *zap.Logger) *Gate {
	return &Gate{
		Profiles:      profiles,
		Risk:          DefaultRiskScorer{},
		Velocity:      NewLimiterVelocityChecker(perMinute, burst),
		RiskThreshold: riskThreshold,
		Logger:        logger,
	}
}

// Evaluate computes the verdict for one request. An unresolvable subject
// passes through with an allowing verdict: the gate blocks known-bad actors,
// it does not perform existence validation. A non-nil error means the
// profile collaborator itself failed and the caller should surface a
// retryable error.
func (g *Gate) Evaluate(ctx context.Context, subjectID string, payload map[string]interface{}) (models.Verdict, error) {
	profile, err := g.Profiles.Resolve(ctx, subjectID)
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		// Defer the not-found decision to the underlying handler.
		return models.Verdict{KYCOK: true}, nil
	}
	if err != nil {
		return models.Verdict{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if profile.KYCStatus != models.KYCVerified {
		g.Logger.Warn("compliance rejection",
			zap.String("subject", subjectID),
			zap.String("reason", models.ReasonKYCUnverified))
		return models.Verdict{Reason: models.ReasonKYCUnverified}, nil
	}

	score := g.Risk.Score(payload)
	if score > g.RiskThreshold {
		g.Logger.Warn("compliance rejection",
			zap.String("subject", subjectID),
			zap.Float64("risk_score", score),
			zap.String("reason", models.ReasonRiskTooHigh))
		return models.Verdict{KYCOK: true, RiskScore: score, Reason: models.ReasonRiskTooHigh}, nil
	}

	if g.Velocity.Check(subjectID, payload) {
		g.Logger.Warn("compliance rejection",
			zap.String("subject", subjectID),
			zap.String("reason", models.ReasonVelocityExceeded))
		return models.Verdict{KYCOK: true, RiskScore: score, VelocityExceeded: true, Reason: models.ReasonVelocityExceeded}, nil
	}

	return models.Verdict{KYCOK: true, RiskScore: score}, nil
}
