package models

// Compliance denial reason codes. Rejections always name the check that
// failed, never a generic forbidden.
const (
	ReasonKYCUnverified    = "kyc_unverified"
	ReasonRiskTooHigh      = "risk_too_high"
	ReasonVelocityExceeded = "velocity_exceeded"
)

// Verdict is the transient outcome of one compliance evaluation. It is never
// persisted; it exists only to allow or deny the request it was computed for.
type Verdict struct {
	KYCOK            bool    `json:"kyc_ok"`
	RiskScore        float64 `json:"risk_score"`
	VelocityExceeded bool    `json:"velocity_exceeded"`
	Reason           string  `json:"reason,omitempty"`
}

// Allowed reports whether the request may proceed to the underlying handler.
func (v Verdict) Allowed() bool {
	return v.Reason == ""
}
